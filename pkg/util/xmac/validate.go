package xmac

// Broadcast 返回广播地址 FF:FF:FF:FF:FF:FF。
func Broadcast() Addr {
	return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
}

// IsUnicast 报告 a 是否为单播地址（第一字节 bit 0 为 0）。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播地址（第一字节 bit 0 为 1）。
// 广播地址也是多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 1
}

// IsBroadcast 报告 a 是否为广播地址。
func (a Addr) IsBroadcast() bool {
	return a == Broadcast()
}

// IsZero 报告 a 是否为全零地址。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA，第一字节 bit 1 为 1）。
// 本地管理地址的前 3 字节不是 IEEE 分配的 OUI，查不到厂商是正常结果。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA，第一字节 bit 1 为 0）。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&0x02 == 0
}
