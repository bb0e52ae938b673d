package xsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// 注册表 CSV 列：Registry,Assignment,Organization Name,Organization Address
const (
	csvFields       = 4
	colAssignment   = 1
	colOrganization = 2
)

// ParseCSV 解析注册表 CSV，跳过表头，返回分配号到组织名的映射。
//
// 空行被忽略，字段前导空白被去掉。任何一行字段数不是 4 都视为整体无效。
func ParseCSV(r io.Reader) (map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = csvFields
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrMalformedResponse)
		}
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedResponse, err)
	}

	vendors := make(map[string]string)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return vendors, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		vendors[record[colAssignment]] = record[colOrganization]
	}
}
