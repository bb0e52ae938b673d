package xstore

import "errors"

// ErrPersistence 缓存文件写入失败
var ErrPersistence = errors.New("xstore: persistence failed")
