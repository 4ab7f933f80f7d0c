package model

import "gorm.io/datatypes"

// 学段划分方式
const (
	PeriodTypeTrimestre = "TRIMESTRE"
	PeriodTypeSemestre  = "SEMESTRE"
)

// GradingConfig 学校级成绩配置（JSON 列 grading_config）
// 权重缺省的分项使用默认权重；CategoryOrder 为成绩单分组的展示顺序
type GradingConfig struct {
	Interro       *float64 `json:"interro,omitempty"`
	Devoir        *float64 `json:"devoir,omitempty"`
	Compo         *float64 `json:"compo,omitempty"`
	CategoryOrder []string `json:"category_order,omitempty"`
}

// Establishment 学校表，对应 establishments
type Establishment struct {
	EstablishmentID        string                            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"establishment_id"`
	Name                   string                            `gorm:"type:varchar(200);not null"                     json:"name"`
	GradingConfig          datatypes.JSONType[GradingConfig] `gorm:"type:jsonb;not null;default:'{}'"               json:"grading_config"`
	PeriodType             string                            `gorm:"type:varchar(20);not null;default:'TRIMESTRE'"  json:"period_type"` // TRIMESTRE | SEMESTRE
	SelectedAcademicYearID *string                           `gorm:"type:uuid"                                      json:"selected_academic_year_id,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (Establishment) TableName() string { return "establishments" }
