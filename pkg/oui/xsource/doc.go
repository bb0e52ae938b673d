// Package xsource 从远程注册表拉取 OUI 分配数据。
//
// [HTTPSource] 对注册表地址发起一次 GET，读完整个响应体后交给 [ParseCSV]。
// 结果是原始分配号（如 "00D0EF"）到组织名的映射，键不做规范化，由调用方处理。
//
// 包内不做缓存与重试。ctx 是调用方控制超时和取消的唯一手段。
//
// # 错误
//
//   - [ErrSourceUnavailable]：传输失败、非 2xx 状态码、读响应体失败
//   - [ErrMalformedResponse]：CSV 语法错误、字段数不对、缺少表头、响应体超限
package xsource
