package model

import (
	"encoding/json"
	"testing"
)

func TestFlexID_UnmarshalJSON_NumberAndString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want FlexID
	}{
		{"整数", `42`, "42"},
		{"字符串", `"42"`, "42"},
		{"带空白字符串", `"  p-17 "`, "p-17"},
		{"大整数不丢精度", `9007199254740993`, "9007199254740993"},
		{"null 归零", `null`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id FlexID
			if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
				t.Fatalf("反序列化失败: %v", err)
			}
			if id != tc.want {
				t.Errorf("期望 %q，实际 %q", tc.want, id)
			}
		})
	}
}

func TestFlexID_NumberStringSameKey(t *testing.T) {
	// 同一 id 的数字形态与字符串形态必须归一到同一键
	var fromNumber, fromString FlexID
	json.Unmarshal([]byte(`17`), &fromNumber)
	json.Unmarshal([]byte(`"17"`), &fromString)
	if fromNumber.String() != fromString.String() {
		t.Errorf("数字/字符串来源应同键：%q vs %q", fromNumber, fromString)
	}
}

func TestFlexID_MarshalJSON_AlwaysString(t *testing.T) {
	b, err := json.Marshal(FlexID("42"))
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if string(b) != `"42"` {
		t.Errorf("应序列化为字符串，实际 %s", b)
	}
}

func TestFlexID_Scan(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
		want FlexID
	}{
		{"文本", "p1", "p1"},
		{"字节", []byte(" p1 "), "p1"},
		{"整数", int64(42), "42"},
		{"浮点整值", float64(42), "42"},
		{"nil 归零", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id FlexID
			if err := id.Scan(tc.src); err != nil {
				t.Fatalf("Scan 失败: %v", err)
			}
			if id != tc.want {
				t.Errorf("期望 %q，实际 %q", tc.want, id)
			}
		})
	}

	var id FlexID
	if err := id.Scan(struct{}{}); err == nil {
		t.Error("不支持的类型应报错")
	}
}

func TestFlexID_IsZero(t *testing.T) {
	if !FlexID("").IsZero() {
		t.Error("空串应视为缺失")
	}
	if FlexID("0").IsZero() {
		t.Error(`"0" 是合法 id，不应视为缺失`)
	}
}
