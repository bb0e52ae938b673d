package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizePath 规范化文件路径。
//
// 只做格式净化：绝对路径中的 ".." 由 filepath.Clean 正常消解，
// 相对路径规范化后仍含 ".." 段则拒绝。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if strings.ContainsRune(filename, 0) {
		return "", fmt.Errorf("%w: %q", ErrNullByte, filename)
	}
	// Clean 会去掉尾部分隔符，必须先检查
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, filename)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, filename)
	}
	if base := filepath.Base(cleaned); base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidPath, filename)
	}
	return cleaned, nil
}

// Resolve 将路径转为绝对路径后再 SanitizePath。
//
// 用户在命令行给出的 "../cache/oui.json" 是合法输入，转成绝对路径后不再含 ".."。
func Resolve(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, filename)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return SanitizePath(abs)
}

// hasDotDotSegment 按路径段精确匹配 ".."，"app..log" 不算穿越。
func hasDotDotSegment(path string) bool {
	for seg := range strings.FieldsFuncSeq(path, isSeparator) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
