package xmac

import (
	"fmt"
	"strings"
)

// 字节数常量。
const (
	// AddrLen MAC 地址的字节数。
	AddrLen = 6
	// OUILen OUI 的字节数，也是厂商自定义段的字节数。
	OUILen = 3

	maxOctets = AddrLen
)

// ParseOctets 将 s 解析为恰好 n 个字节的序列。
//
// n 的取值范围为 1~6，超出范围返回 [ErrWrongOctetCount]。
// 格式规则见包文档；任一分组不是两位十六进制时返回 [ErrMalformedOctet]，
// 全部字节合法但数量不等于 n 时返回 [ErrWrongOctetCount]。
func ParseOctets(s string, n int) (Octets, error) {
	b, err := parseOctets(s, n)
	if err != nil {
		return Octets{}, err
	}
	return Octets{bytes: b, n: uint8(n)}, nil
}

// ParseOUI 解析 3 字节的 OUI，例如 "00:D0:EF"、"00-d0-ef" 或 "00D0EF"。
func ParseOUI(s string) (Octets, error) {
	return ParseOctets(s, OUILen)
}

// Parse 解析 MAC 地址字符串。
//
// 支持的格式：
//   - 冒号分隔：00:d0:ef:ff:ff:ff
//   - 短线分隔：00-D0-EF-FF-FF-FF
//   - 点分隔：00d0.efff.ffff
//   - 无分隔：00D0EFFFFFFF
//
// 错误原样返回 [ErrMalformedOctet] 或 [ErrWrongOctetCount]，不额外包装。
func Parse(s string) (Addr, error) {
	b, err := parseOctets(s, AddrLen)
	if err != nil {
		return Addr{}, err
	}
	return Addr{bytes: b}, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// parseOctets 是 [Octets] 与 [Addr] 共用的解析路径。
// 先逐个校验字节，再校验数量，失败时不返回部分结果。
func parseOctets(s string, n int) ([maxOctets]byte, error) {
	var out [maxOctets]byte
	if n < 1 || n > maxOctets {
		return out, fmt.Errorf("%w: unsupported length %d", ErrWrongOctetCount, n)
	}

	s = strings.TrimSpace(s)
	sep, err := detectDelimiter(s)
	if err != nil {
		return out, err
	}

	count := 0
	if s != "" {
		count, err = scanGroups(s, sep, &out)
		if err != nil {
			return [maxOctets]byte{}, err
		}
	}

	if count != n {
		return [maxOctets]byte{}, fmt.Errorf("%w: expected %d, got %d", ErrWrongOctetCount, n, count)
	}
	return out, nil
}

// scanGroups 按分隔符遍历分组，每个分组再按两个字符切分为字节。
// sep 为 0 表示没有分隔符，整个输入视为一个分组。
// 超过 maxOctets 的字节只计数不写入，数量校验交给调用方。
func scanGroups(s string, sep byte, dst *[maxOctets]byte) (int, error) {
	count := 0
	start := 0
	for start <= len(s) {
		end := len(s)
		if sep != 0 {
			if i := strings.IndexByte(s[start:], sep); i >= 0 {
				end = start + i
			}
		}

		group := s[start:end]
		if group == "" {
			return 0, fmt.Errorf("%w: empty group at position %d", ErrMalformedOctet, start)
		}
		for i := 0; i < len(group); i += 2 {
			if i+2 > len(group) {
				return 0, fmt.Errorf("%w: %q is not two hex digits", ErrMalformedOctet, group[i:])
			}
			b, ok := parseHexByte(group[i], group[i+1])
			if !ok {
				return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedOctet, group[i:i+2])
			}
			if count < maxOctets {
				dst[count] = b
			}
			count++
		}

		if sep == 0 {
			break
		}
		start = end + 1
	}
	return count, nil
}

// detectDelimiter 返回输入中使用的分隔符，没有分隔符时返回 0。
// 出现两种不同分隔符时返回 [ErrMalformedOctet]。
func detectDelimiter(s string) (byte, error) {
	var sep byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != ':' && c != '-' && c != '.' {
			continue
		}
		if sep == 0 {
			sep = c
			continue
		}
		if c != sep {
			return 0, fmt.Errorf("%w: mixed delimiters %q and %q", ErrMalformedOctet, sep, c)
		}
	}
	return sep, nil
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
