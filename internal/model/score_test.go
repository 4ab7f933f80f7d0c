package model

import (
	"encoding/json"
	"testing"
)

func TestScore_Points(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		want  float64
	}{
		{"未录入记0分", Absent(), 0},
		{"正常分数", Present(13.5), 13.5},
		{"超过满分截断", Present(24), 20},
		{"负数截断", Present(-3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Points(); got != tt.want {
				t.Errorf("期望 %v，实际 %v", tt.want, got)
			}
		})
	}
}

func TestScore_Scan(t *testing.T) {
	var s Score
	if err := s.Scan(nil); err != nil || s.IsPresent() {
		t.Fatalf("NULL 应解析为 Absent，err=%v", err)
	}
	if err := s.Scan([]byte("12.50")); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if v, ok := s.Raw(); !ok || v != 12.5 {
		t.Errorf("期望 12.5，实际 %v (present=%v)", v, ok)
	}
	if err := s.Scan(float64(7)); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if v, _ := s.Raw(); v != 7 {
		t.Errorf("期望 7，实际 %v", v)
	}
	if err := s.Scan("abc"); err == nil {
		t.Error("非法数值应返回错误")
	}
	if err := s.Scan(true); err == nil {
		t.Error("不支持的类型应返回错误")
	}
}

func TestScore_Value(t *testing.T) {
	v, err := Absent().Value()
	if err != nil || v != nil {
		t.Errorf("Absent 应写入 NULL，实际 %v, err=%v", v, err)
	}
	v, err = Present(15).Value()
	if err != nil || v != 15.0 {
		t.Errorf("期望 15，实际 %v, err=%v", v, err)
	}
}

func TestScore_JSON(t *testing.T) {
	type payload struct {
		Interro Score `json:"interro"`
		Compo   Score `json:"compo"`
	}
	b, err := json.Marshal(payload{Interro: Present(11), Compo: Absent()})
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	if string(b) != `{"interro":11,"compo":null}` {
		t.Errorf("序列化结果不符: %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"interro":null,"compo":14.25}`), &p); err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if p.Interro.IsPresent() {
		t.Error("null 应解析为 Absent")
	}
	if v, ok := p.Compo.Raw(); !ok || v != 14.25 {
		t.Errorf("期望 14.25，实际 %v", v)
	}
}
