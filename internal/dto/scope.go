package dto

// ── 学年范围模块 DTO ──

// AcademicYearResponse 学年信息
type AcademicYearResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	IsActive bool   `json:"is_active"`
	IsLocked bool   `json:"is_locked"`
}

// PeriodResponse 学段信息
type PeriodResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// ScopeResponse 学校当前有效学年（GET /scope）
type ScopeResponse struct {
	EstablishmentID   string               `json:"establishment_id"`
	EstablishmentName string               `json:"establishment_name"`
	PeriodType        string               `json:"period_type"`
	AcademicYear      AcademicYearResponse `json:"academic_year"`
	Selected          bool                 `json:"selected"` // true 表示由手动选择的学年覆盖激活学年
	Periods           []PeriodResponse     `json:"periods"`
}
