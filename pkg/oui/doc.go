// Package oui 提供 IEEE OUI 厂商表相关的子包。
//
// 子包列表：
//   - xsource: 远程注册表（CSV）下载与解析
//   - xstore: 厂商表的 JSON 文件缓存
//   - xtable: 内存厂商表，组合数据源与缓存，按 OUI 或 MAC 查询
//
// 依赖方向：xtable → xsource, xstore → xmac。
package oui
