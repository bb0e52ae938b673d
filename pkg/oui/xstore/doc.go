// Package xstore 把 OUI 表持久化为本地 JSON 文件。
//
// 文件内容是一个 JSON 对象，键为规范形式的 OUI（"00:D0:EF"），值为厂商名。
//
// [JSONStore.Load] 从不失败：文件不存在返回空表；文件无法读取或内容损坏时
// 记一条 warn 日志，同样返回空表。[JSONStore.Dump] 先写临时文件再 rename，
// 失败时旧文件保持原样，错误包装为 [ErrPersistence]。
//
// 文件系统通过 afero 注入，测试使用 afero.NewMemMapFs。
package xstore
