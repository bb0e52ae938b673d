// Package xrotate 为日志文件提供按大小轮转的 io.WriteCloser。
//
// 当前唯一实现 [NewLumberjack] 基于 lumberjack v2。macvendor 在配置了
// log.file 时通过 xlog.Builder.SetRotation 使用它，缓存刷新日志不会无限增长。
package xrotate
