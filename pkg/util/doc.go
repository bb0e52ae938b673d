// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件路径校验与目录创建
//   - xmac: MAC 地址与 OUI 工具库，多格式解析、验证、序列化
//
// 设计原则：
//   - 安全处理路径遍历
//   - 值类型，无共享状态
package util
