package dto

// ── 成绩配置模块 DTO ──

// UpdateGradingConfigRequest 更新学校成绩配置请求
// 未提供的权重保持原值；三项权重同时提供时总和必须大于 0（见 handler 注册的结构体校验）
type UpdateGradingConfigRequest struct {
	Interro       *float64 `json:"interro"        binding:"omitempty,min=0,max=100"`
	Devoir        *float64 `json:"devoir"         binding:"omitempty,min=0,max=100"`
	Compo         *float64 `json:"compo"          binding:"omitempty,min=0,max=100"`
	CategoryOrder []string `json:"category_order" binding:"omitempty,max=30,dive,required,max=100"`
}

// GradingConfigResponse 学校成绩配置响应（缺省项已填充默认值）
type GradingConfigResponse struct {
	Interro       float64  `json:"interro"`
	Devoir        float64  `json:"devoir"`
	Compo         float64  `json:"compo"`
	Divisor       float64  `json:"divisor"`
	CategoryOrder []string `json:"category_order"`
	UpdatedAt     string   `json:"updated_at"`
}
