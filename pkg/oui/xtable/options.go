package xtable

import (
	"github.com/omeyang/macvendor/pkg/observability/xlog"
	"github.com/omeyang/macvendor/pkg/observability/xmetrics"
)

// Option Table 选项
type Option func(*Table)

// WithLogger 设置日志
func WithLogger(logger xlog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithObserver 设置观测器，Update 与查询各记一个跨度
func WithObserver(observer xmetrics.Observer) Option {
	return func(t *Table) {
		if observer != nil {
			t.observer = observer
		}
	}
}
