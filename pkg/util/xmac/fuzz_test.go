package xmac

import (
	"errors"
	"testing"
)

// FuzzParse 验证任意输入下 Parse 要么成功且可往返，要么返回两类错误之一。
func FuzzParse(f *testing.F) {
	seeds := []string{
		"00:D0:EF:FF:FF:FF",
		"00-d0-ef-ff-ff-ff",
		"00D0.EFFF.FFFF",
		"00D0EFFFFFFF",
		"FF:FF:F",
		"FF:FF:XY",
		"FF:FF:FF:",
		"00:D0-EF:FF:FF:FF",
		"",
		"::::::",
		"\x00\x01",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			if !errors.Is(err, ErrMalformedOctet) && !errors.Is(err, ErrWrongOctetCount) {
				t.Fatalf("Parse(%q) returned unexpected error kind: %v", s, err)
			}
			if addr != (Addr{}) {
				t.Fatalf("Parse(%q) returned partial value %v", s, addr)
			}
			return
		}

		canonical := addr.String()
		again, err := Parse(canonical)
		if err != nil {
			t.Fatalf("Parse(%q) of canonical form failed: %v", canonical, err)
		}
		if again != addr {
			t.Fatalf("round trip mismatch: %q -> %v -> %v", s, addr, again)
		}

		oui := addr.OUI()
		vs := addr.VendorSpecific()
		b := addr.Bytes()
		ob, vb := oui.Bytes(), vs.Bytes()
		if ob[0] != b[0] || ob[2] != b[2] || vb[0] != b[3] || vb[2] != b[5] {
			t.Fatalf("OUI/VendorSpecific do not cover %v", addr)
		}
	})
}

// FuzzParseOctets 验证 Octets 规范形式的幂等性。
func FuzzParseOctets(f *testing.F) {
	f.Add("00:D0:EF", 3)
	f.Add("00d0ef", 3)
	f.Add("7f", 1)
	f.Add("FF:FF:FF:", 3)

	f.Fuzz(func(t *testing.T, s string, n int) {
		o, err := ParseOctets(s, n)
		if err != nil {
			return
		}
		if o.Len() != n {
			t.Fatalf("ParseOctets(%q, %d).Len() = %d", s, n, o.Len())
		}
		again, err := ParseOctets(o.String(), n)
		if err != nil || again != o {
			t.Fatalf("canonical form %q does not round trip: %v", o.String(), err)
		}
	})
}
