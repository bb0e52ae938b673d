package xlog

import (
	"log/slog"
	"time"
)

// 标准字段名，所有组件共用
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyOUI       = "oui"
	KeyMAC       = "mac"
	KeyVendor    = "vendor"
	KeyPath      = "path"
	KeyURL       = "url"
	KeyAttempt   = "attempt"
	KeyStatus    = "status_code"
	KeySize      = "size"
	KeyDigest    = "digest"
)

// Err 错误属性。err 为 nil 时返回空属性，slog 会忽略它。
//
//	if err != nil {
//	    logger.Error(ctx, "refresh failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 耗时属性，人类可读格式（如 "1.2s"）
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 组件名，如 "xsource"、"xstore"
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 操作名，如 "update"、"lookup"
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// OUI 规范形式的 OUI 键
func OUI(oui string) slog.Attr {
	return slog.String(KeyOUI, oui)
}

// MAC 用户输入的 MAC 地址，原样记录
func MAC(mac string) slog.Attr {
	return slog.String(KeyMAC, mac)
}

// Vendor 厂商名称
func Vendor(name string) slog.Attr {
	return slog.String(KeyVendor, name)
}

// Path 文件路径
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// URL 远程地址
func URL(u string) slog.Attr {
	return slog.String(KeyURL, u)
}

// Attempt 第几次尝试，从 1 开始
func Attempt(n uint) slog.Attr {
	return slog.Uint64(KeyAttempt, uint64(n))
}

// StatusCode HTTP 状态码
func StatusCode(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// Size 字节数
func Size(n int64) slog.Attr {
	return slog.Int64(KeySize, n)
}

// Digest 内容摘要，十六进制
func Digest(d string) slog.Attr {
	return slog.String(KeyDigest, d)
}
