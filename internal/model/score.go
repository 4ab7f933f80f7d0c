package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// 分数刻度（满分 20）
const (
	MinScore = 0.0
	MaxScore = 20.0
)

// Score 单项成绩：Present(v) | Absent。
// 对应 grades 表中可空的 NUMERIC 列；Absent 在汇总时按 0 分计算。
type Score struct {
	value   float64
	present bool
}

// Present 构造一个已录入的分数
func Present(v float64) Score {
	return Score{value: v, present: true}
}

// Absent 构造一个未录入的分数
func Absent() Score {
	return Score{}
}

// IsPresent 是否已录入
func (s Score) IsPresent() bool { return s.present }

// Raw 返回原始录入值；未录入时 ok=false
func (s Score) Raw() (v float64, ok bool) {
	return s.value, s.present
}

// Points 汇总用分值：未录入记 0，已录入截断到 [0, 20]
func (s Score) Points() float64 {
	if !s.present {
		return 0
	}
	return clampScore(s.value)
}

func (s Score) String() string {
	if !s.present {
		return "-"
	}
	return strconv.FormatFloat(s.value, 'f', 2, 64)
}

func clampScore(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// Scan 将 PostgreSQL NUMERIC（可能为 NULL）解析为 Score。
func (s *Score) Scan(src interface{}) error {
	if src == nil {
		*s = Absent()
		return nil
	}
	var raw string
	switch v := src.(type) {
	case float64:
		*s = Present(v)
		return nil
	case int64:
		*s = Present(float64(v))
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("Score.Scan: unsupported type %T", src)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*s = Absent()
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("Score.Scan: invalid value %q: %w", raw, err)
	}
	*s = Present(f)
	return nil
}

// Value 未录入写 NULL
func (s Score) Value() (driver.Value, error) {
	if !s.present {
		return nil, nil
	}
	return s.value, nil
}

// MarshalJSON 未录入输出 null
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON null 解析为 Absent
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Absent()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("Score.UnmarshalJSON: %w", err)
	}
	*s = Present(v)
	return nil
}
