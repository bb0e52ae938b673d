package xtable

import "errors"

var (
	// ErrNilSource 未提供数据源
	ErrNilSource = errors.New("xtable: nil source")

	// ErrNilStore 未提供缓存存储
	ErrNilStore = errors.New("xtable: nil store")
)
