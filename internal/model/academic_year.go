package model

// AcademicYear 学年表，对应 academic_years
// 每个学校至多一个 is_active 学年；is_locked 时成绩不可修改（由录分流程保证）
type AcademicYear struct {
	AcademicYearID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_year_id"`
	EstablishmentID string `gorm:"type:uuid;not null;index"                       json:"establishment_id"`
	Label           string `gorm:"type:varchar(50);not null"                      json:"label"` // 2025-2026
	IsActive        bool   `gorm:"not null;default:false"                         json:"is_active"`
	IsLocked        bool   `gorm:"not null;default:false"                         json:"is_locked"`
	SoftDeleteModel
}

// TableName 指定表名
func (AcademicYear) TableName() string { return "academic_years" }
