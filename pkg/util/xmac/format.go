package xmac

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatColonUpper 冒号分隔，大写：AA:BB:CC:DD:EE:FF（规范形式）
	FormatColonUpper Format = iota
	// FormatColon 冒号分隔，小写：aa:bb:cc:dd:ee:ff
	FormatColon
	// FormatDash 短线分隔，小写：aa-bb-cc-dd-ee-ff
	FormatDash
	// FormatDashUpper 短线分隔，大写：AA-BB-CC-DD-EE-FF
	FormatDashUpper
	// FormatDot 点分隔（Cisco 风格），小写：aabb.ccdd.eeff
	FormatDot
	// FormatDotUpper 点分隔，大写：AABB.CCDD.EEFF
	FormatDotUpper
	// FormatBare 无分隔符，小写：aabbccddeeff
	FormatBare
	// FormatBareUpper 无分隔符，大写：AABBCCDDEEFF
	FormatBareUpper
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回规范形式（大写冒号）。
func (a Addr) String() string {
	return formatWithSep(a.bytes, ':', hexUpper)
}

// FormatString 按指定格式返回 MAC 地址字符串。
// 未知格式按规范形式输出。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatColon:
		return formatWithSep(a.bytes, ':', hexLower)
	case FormatDash:
		return formatWithSep(a.bytes, '-', hexLower)
	case FormatDashUpper:
		return formatWithSep(a.bytes, '-', hexUpper)
	case FormatDot:
		return formatDot(a.bytes, hexLower)
	case FormatDotUpper:
		return formatDot(a.bytes, hexUpper)
	case FormatBare:
		return formatBare(a.bytes, hexLower)
	case FormatBareUpper:
		return formatBare(a.bytes, hexUpper)
	default:
		return formatWithSep(a.bytes, ':', hexUpper)
	}
}

// formatWithSep 使用指定分隔符格式化（xx:xx:xx:xx:xx:xx 或 xx-xx-xx-xx-xx-xx）。
func formatWithSep(b [6]byte, sep byte, hex string) string {
	// 6*2 + 5 = 17 字节
	var buf [17]byte
	for i := range 6 {
		if i > 0 {
			buf[i*3-1] = sep
		}
		buf[i*3] = hex[b[i]>>4]
		buf[i*3+1] = hex[b[i]&0x0f]
	}
	return string(buf[:])
}

// formatDot 格式化为点分隔格式（xxxx.xxxx.xxxx）。
func formatDot(b [6]byte, hex string) string {
	// 4+1+4+1+4 = 14 字节
	var buf [14]byte
	w := 0
	for i := range 6 {
		if i == 2 || i == 4 {
			buf[w] = '.'
			w++
		}
		buf[w] = hex[b[i]>>4]
		buf[w+1] = hex[b[i]&0x0f]
		w += 2
	}
	return string(buf[:])
}

// formatBare 格式化为无分隔符格式（xxxxxxxxxxxx）。
func formatBare(b [6]byte, hex string) string {
	var buf [12]byte
	for i := range 6 {
		buf[i*2] = hex[b[i]>>4]
		buf[i*2+1] = hex[b[i]&0x0f]
	}
	return string(buf[:])
}
