package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrMalformedOctet 表示某个分组不是恰好两位的十六进制数，
	// 也包括首尾多余分隔符、连续分隔符和混用分隔符。
	ErrMalformedOctet = errors.New("xmac: malformed octet")

	// ErrWrongOctetCount 表示字节数与期望不符（MAC 为 6，OUI 为 3）。
	ErrWrongOctetCount = errors.New("xmac: wrong octet count")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
