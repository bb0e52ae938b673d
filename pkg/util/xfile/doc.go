// Package xfile 提供缓存文件与日志文件用到的路径工具。
//
//   - [SanitizePath]: 规范化并拒绝空路径、空字节、目录路径和相对路径穿越
//   - [Resolve]: 先转为绝对路径再做 SanitizePath，用于命令行传入的路径
//   - [EnsureDir]: 创建文件的父目录
//
// 所有错误都可用 [errors.Is] 匹配包内哨兵错误。
package xfile
