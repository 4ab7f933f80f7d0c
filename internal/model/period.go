package model

// Period 学期/学段表，对应 periods
// Order 从 1 开始，决定学年内的时间先后
type Period struct {
	PeriodID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"period_id"`
	AcademicYearID string `gorm:"type:uuid;not null;index"                       json:"academic_year_id"`
	Name           string `gorm:"type:varchar(50);not null"                      json:"name"` // 1er Trimestre
	Order          int    `gorm:"column:period_order;not null"                   json:"order"`
	IsActive       bool   `gorm:"not null;default:false"                         json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Period) TableName() string { return "periods" }
