package xconf

import (
	"fmt"
	"time"
)

// 默认值
const (
	DefaultRegistryURL = "http://standards-oui.ieee.org/oui/oui.csv"
	DefaultCachePath   = "oui.json"
	DefaultTimeout     = 60 * time.Second
	DefaultAttempts    = 1
	DefaultRetryDelay  = time.Second
)

// Config macvendor 配置
type Config struct {
	Registry Registry `koanf:"registry"`
	Cache    Cache    `koanf:"cache"`
	Log      Log      `koanf:"log"`
}

// Registry 远程注册表
type Registry struct {
	URL        string        `koanf:"url"`
	Timeout    time.Duration `koanf:"timeout"`
	Attempts   uint          `koanf:"attempts"`
	RetryDelay time.Duration `koanf:"retry_delay"`
}

// Cache 本地缓存文件
type Cache struct {
	Path string `koanf:"path"`
}

// Log 日志输出。File 为空时写 stderr。
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// Default 返回默认配置
func Default() Config {
	return Config{
		Registry: Registry{
			URL:        DefaultRegistryURL,
			Timeout:    DefaultTimeout,
			Attempts:   DefaultAttempts,
			RetryDelay: DefaultRetryDelay,
		},
		Cache: Cache{Path: DefaultCachePath},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// Validate 检查必填项与取值范围
func (c Config) Validate() error {
	switch {
	case c.Registry.URL == "":
		return fmt.Errorf("%w: registry.url is empty", ErrInvalidConfig)
	case c.Registry.Timeout <= 0:
		return fmt.Errorf("%w: registry.timeout must be positive, got %s", ErrInvalidConfig, c.Registry.Timeout)
	case c.Registry.Attempts < 1:
		return fmt.Errorf("%w: registry.attempts must be at least 1", ErrInvalidConfig)
	case c.Registry.RetryDelay < 0:
		return fmt.Errorf("%w: registry.retry_delay is negative", ErrInvalidConfig)
	case c.Cache.Path == "":
		return fmt.Errorf("%w: cache.path is empty", ErrInvalidConfig)
	}
	return nil
}
