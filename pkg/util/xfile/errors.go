package xfile

import "errors"

var (
	// ErrEmptyPath 路径为空
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 路径格式无效，例如以分隔符结尾的目录路径
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrPathTraversal 相对路径中出现 ".." 段
	ErrPathTraversal = errors.New("xfile: path traversal detected")

	// ErrNullByte 路径包含空字节，内核会在此截断
	ErrNullByte = errors.New("xfile: path contains null byte")
)
