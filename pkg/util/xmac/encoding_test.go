package xmac

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAddr_TextRoundTrip(t *testing.T) {
	addr := MustParse("00d0.efff.ffff")
	text, err := addr.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "00:D0:EF:FF:FF:FF" {
		t.Errorf("MarshalText() = %q", text)
	}

	var got Addr
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if got != addr {
		t.Errorf("UnmarshalText() = %v, want %v", got, addr)
	}
}

func TestAddr_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		{"empty", "", Addr{}, nil},
		{"dash", "00-D0-EF-FF-FF-FF", MustParse("00D0EFFFFFFF"), nil},
		{"malformed", "00-D0-EF-FF-FF-XY", Addr{}, ErrMalformedOctet},
		{"short", "00-D0-EF", Addr{}, ErrWrongOctetCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Addr
			err := got.UnmarshalText([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddr_JSON(t *testing.T) {
	type device struct {
		MAC Addr `json:"mac"`
	}

	data, err := json.Marshal(device{MAC: MustParse("00:d0:ef:ff:ff:ff")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"mac":"00:D0:EF:FF:FF:FF"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var d device
	if err := json.Unmarshal([]byte(`{"mac":"00d0.efff.ffff"}`), &d); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if d.MAC.String() != "00:D0:EF:FF:FF:FF" {
		t.Errorf("json.Unmarshal() MAC = %v", d.MAC)
	}

	if err := json.Unmarshal([]byte(`{"mac":null}`), &d); err != nil {
		t.Fatalf("json.Unmarshal(null) error = %v", err)
	}
	if !d.MAC.IsZero() {
		t.Errorf("null should decode to zero address, got %v", d.MAC)
	}

	if err := json.Unmarshal([]byte(`{"mac":42}`), &d); !errors.Is(err, ErrMalformedOctet) {
		t.Errorf("json.Unmarshal(number) error = %v, want ErrMalformedOctet", err)
	}
}

func TestAddr_NilReceiver(t *testing.T) {
	var a *Addr
	if err := a.UnmarshalText([]byte("00:D0:EF:FF:FF:FF")); !errors.Is(err, ErrNilReceiver) {
		t.Errorf("UnmarshalText() on nil error = %v", err)
	}
	if err := a.UnmarshalJSON([]byte(`"00:D0:EF:FF:FF:FF"`)); !errors.Is(err, ErrNilReceiver) {
		t.Errorf("UnmarshalJSON() on nil error = %v", err)
	}
}

func TestOctets_MarshalTextAsMapKey(t *testing.T) {
	oui, err := ParseOUI("00d0ef")
	if err != nil {
		t.Fatalf("ParseOUI() error = %v", err)
	}
	data, err := json.Marshal(map[Octets]string{oui: "IGT"})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"00:D0:EF":"IGT"}` {
		t.Errorf("json.Marshal() = %s", data)
	}
}
