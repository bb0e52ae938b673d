// Package xconf 加载 macvendor 的配置文件，基于 koanf。
//
// 支持 YAML（.yaml/.yml）与 JSON（.json），按扩展名识别格式。
// 文件中缺省的字段保留 [Default] 的值，路径为空时直接返回默认配置：
//
//	cfg, err := xconf.Load(path)
//	if err != nil {
//		return err
//	}
//	cfg.Cache.Path = override
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//
// 命令行参数覆盖文件值后再调用 Validate。
package xconf
