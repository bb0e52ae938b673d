package xfile

import (
	"os"
	"path/filepath"
)

// DefaultDirPerm 新建目录的权限
const DefaultDirPerm = 0o750

// EnsureDir 确保 filename 的父目录存在，已存在时不做任何事。
func EnsureDir(filename string) error {
	if filename == "" {
		return ErrEmptyPath
	}
	dir := filepath.Dir(filename)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, DefaultDirPerm)
}
