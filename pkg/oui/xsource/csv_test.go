package xsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registryCSV 与 IEEE 文件同结构，行首带缩进
const registryCSV = `
    Registry,Assignment,Organization Name,Organization Address
    MA-L,002272,American Micro-Fuel Device Corp.,2181 Buchanan Loop Ferndale WA US 98248
    MA-L,00D0EF,IGT,9295 PROTOTYPE DRIVE RENO NV US 89511
`

var registryVendors = map[string]string{
	"002272": "American Micro-Fuel Device Corp.",
	"00D0EF": "IGT",
}

func TestParseCSV(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(registryCSV))
	require.NoError(t, err)
	assert.Equal(t, registryVendors, got)
}

func TestParseCSV_QuotedFields(t *testing.T) {
	data := "Registry,Assignment,Organization Name,Organization Address\r\n" +
		`MA-L,08EA40,"SHENZHEN BILIAN ELECTRONIC CO.,LTD","NO.268, Fuqian Rd, Jutang community, Guanlan town"` + "\r\n"
	got, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"08EA40": "SHENZHEN BILIAN ELECTRONIC CO.,LTD"}, got)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("Registry,Assignment,Organization Name,Organization Address\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestParseCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n  \n"},
		{"short header", "Registry,Assignment\n"},
		{"short row", "Registry,Assignment,Organization Name,Organization Address\nMA-L,00D0EF,IGT\n"},
		{"long row", "Registry,Assignment,Organization Name,Organization Address\nMA-L,00D0EF,IGT,RENO,extra\n"},
		{"bare quote", "Registry,Assignment,Organization Name,Organization Address\nMA-L,00D0EF,I\"GT,RENO\n"},
		{"unterminated quote", "Registry,Assignment,Organization Name,Organization Address\nMA-L,00D0EF,\"IGT,RENO\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Nil(t, got)
		})
	}
}

func FuzzParseCSV(f *testing.F) {
	f.Add(registryCSV)
	f.Add("a,b,c,d\n1,2,3,4\n")
	f.Add("")
	f.Fuzz(func(t *testing.T, data string) {
		got, err := ParseCSV(strings.NewReader(data))
		if err != nil {
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Nil(t, got)
			return
		}
		assert.NotNil(t, got)
	})
}
