package xmac

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范形式。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式，空输入设置为零值。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范形式。
//
// 规范形式只包含 [0-9A-F:]，无需 JSON 转义，直接拼接引号。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 和空字符串设置为零值。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedOctet, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalText 实现 [encoding.TextMarshaler]，输出规范形式。
// 因此 Octets 可以直接作为 JSON 对象的 key。
func (o Octets) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
