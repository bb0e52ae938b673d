package xmetrics

import "errors"

var (
	// ErrCreateCounter 创建计数器失败
	ErrCreateCounter = errors.New("xmetrics: create counter failed")
	// ErrCreateHistogram 创建直方图失败
	ErrCreateHistogram = errors.New("xmetrics: create histogram failed")
)
