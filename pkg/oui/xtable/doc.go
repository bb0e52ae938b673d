// Package xtable 维护内存中的 OUI → 厂商表，并负责它的刷新与持久化。
//
// 生命周期只有两个状态：
//
//	New ──Load──▶ StateLoaded ──Update──▶ StateRefreshed ──Update──▶ …
//
// [New] 从 [xstore.Store] 载入缓存（缓存缺失时为空表）。[Table.Update] 从
// [xsource.Source] 拉取完整注册表，用 xmac.ParseOUI 规范化每个键，整体替换内存表，
// 然后写回缓存。
//
// # 失败语义
//
//   - 拉取失败或任一键无法解析：内存表与缓存都不变
//   - 替换后写缓存失败：内存表已经是新数据，返回包装了 xstore.ErrPersistence 的错误
//
// # 查询
//
// [Table.LookupByOUI] 与 [Table.LookupByMAC] 先解析输入，解析错误原样返回
// （可用 errors.Is 匹配 xmac.ErrMalformedOctet / xmac.ErrWrongOctetCount）；
// 未命中不是错误，found 为 false。
//
// Table 不加锁，只供单个 goroutine 使用。
package xtable
