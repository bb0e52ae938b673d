package xmac

// Octets 表示 1~6 个字节的有序序列，OUI 和厂商自定义段都使用它。
//
// Octets 是不可变值类型：
//   - 可直接比较（==），相同字节、相同长度即相等，与原始写法无关
//   - 零值长度为 0，IsValid() 返回 false
//
// 使用 [ParseOctets]、[ParseOUI] 创建，或从 [Addr.OUI]、[Addr.VendorSpecific] 派生。
type Octets struct {
	bytes [maxOctets]byte
	n     uint8
}

// Len 返回字节数。
func (o Octets) Len() int {
	return int(o.n)
}

// IsValid 报告 o 是否由解析或派生得到（长度非 0）。
func (o Octets) IsValid() bool {
	return o.n > 0
}

// Bytes 返回字节副本，修改不影响原值。
func (o Octets) Bytes() []byte {
	out := make([]byte, o.n)
	copy(out, o.bytes[:o.n])
	return out
}

// String 返回规范形式：大写十六进制，冒号连接，如 "00:D0:EF"。
// 零值返回空字符串。
func (o Octets) String() string {
	if o.n == 0 {
		return ""
	}
	// 每字节 2 个字符 + 分隔符，最多 17 字节
	var buf [maxOctets*3 - 1]byte
	w := 0
	for i := 0; i < int(o.n); i++ {
		if i > 0 {
			buf[w] = ':'
			w++
		}
		buf[w] = hexUpper[o.bytes[i]>>4]
		buf[w+1] = hexUpper[o.bytes[i]&0x0f]
		w += 2
	}
	return string(buf[:w])
}

// Bare 返回无分隔符的大写形式，如 "00D0EF"。
// IEEE 注册表的 Assignment 列就是这种写法。
func (o Octets) Bare() string {
	var buf [maxOctets * 2]byte
	for i := 0; i < int(o.n); i++ {
		buf[i*2] = hexUpper[o.bytes[i]>>4]
		buf[i*2+1] = hexUpper[o.bytes[i]&0x0f]
	}
	return string(buf[:int(o.n)*2])
}

// subOctets 从 6 字节数组中截取 [from, from+n) 构造 Octets，不做二次校验。
func subOctets(b [maxOctets]byte, from, n int) Octets {
	var o Octets
	copy(o.bytes[:], b[from:from+n])
	o.n = uint8(n)
	return o
}
