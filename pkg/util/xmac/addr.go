package xmac

import (
	"fmt"
	"net"
)

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 零值即 00:00:00:00:00:00，同样是合法地址
//
// 使用 [Parse] 或 [MustParse] 创建：
//
//	addr, err := xmac.Parse("00d0.efff.ffff")
//	addr.OUI().String() // "00:D0:EF"
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != AddrLen {
		return Addr{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrWrongOctetCount, AddrLen, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes([]byte(hw))
}

// Bytes 返回 MAC 地址的字节表示。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// OUI 返回前 3 字节（组织唯一标识符，由 IEEE 分配给厂商）。
func (a Addr) OUI() Octets {
	return subOctets(a.bytes, 0, OUILen)
}

// VendorSpecific 返回后 3 字节（由厂商自行分配）。
func (a Addr) VendorSpecific() Octets {
	return subOctets(a.bytes, OUILen, OUILen)
}

// Octets 将地址视为 6 字节的 [Octets]。
func (a Addr) Octets() Octets {
	return subOctets(a.bytes, 0, AddrLen)
}

// Compare 按网络字节序比较两个 MAC 地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（副本）。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, AddrLen)
	copy(hw, a.bytes[:])
	return hw
}
