package xsource

import "errors"

var (
	// ErrSourceUnavailable 注册表不可达或返回失败状态
	ErrSourceUnavailable = errors.New("xsource: source unavailable")

	// ErrMalformedResponse 响应内容不符合预期格式
	ErrMalformedResponse = errors.New("xsource: malformed response")
)
