// Package xmac 提供 MAC 地址与 OUI 标识符的解析、校验和规范化。
//
// 两种值类型共享同一条解析路径（[ParseOctets]），区别只在期望的字节数：
//
//   - [Octets]：1~6 个字节的有序序列，OUI（3 字节）和厂商自定义段都用它表示
//   - [Addr]：48 位 MAC 地址（EUI-48），可派生 [Addr.OUI] 与 [Addr.VendorSpecific]
//
// # 支持的输入格式
//
// 大小写不敏感，首尾空白会被去除：
//
//	00:D0:EF:FF:FF:FF   冒号分隔
//	00-D0-EF-FF-FF-FF   短线分隔
//	00D0.EFFF.FFFF      点分隔（Cisco 风格）
//	00D0EFFFFFFF        无分隔符
//
// 分隔符只能使用一种。每个分组按两个字符切分为字节，因此点分隔的四字符分组
// 与冒号分隔的两字符分组走同一套规则。
//
// # 规范形式
//
// [Octets.String] 和 [Addr.String] 输出大写、冒号连接的规范形式（如 "00:D0:EF"），
// 这是唯一的序列化与相等性表面：不同写法解析出的相同字节序列互相等价（可直接 ==）。
//
// # 错误处理
//
// 解析失败只返回两类错误，均可用 errors.Is 判断：
//
//	_, err := xmac.Parse("00:D0:EF")
//	errors.Is(err, xmac.ErrWrongOctetCount) // true：字节数不对
//
//	_, err = xmac.Parse("00:D0:EF:FF:FF:XY")
//	errors.Is(err, xmac.ErrMalformedOctet)  // true：某个分组不是两位十六进制
//
// 先校验每个字节，再校验字节数，所以 "00:D0:EF:FF:FF:FFF" 报告的是 [ErrMalformedOctet]。
//
// # 零值
//
// [Octets] 零值长度为 0，表示"未解析"，String 返回空字符串。
// [Addr] 零值就是 00:00:00:00:00:00，是合法地址：OUI 查询需要原样处理全零地址。
//
// 仅支持 EUI-48，不支持 EUI-64。
package xmac
