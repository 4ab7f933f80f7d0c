package model

// SchoolClass 班级表，对应 school_classes
type SchoolClass struct {
	ClassID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	EstablishmentID string `gorm:"type:uuid;not null;index"                       json:"establishment_id"`
	Name            string `gorm:"type:varchar(50);not null"                      json:"name"` // 6eme A
	Level           string `gorm:"type:varchar(50);not null;default:''"           json:"level"`
	SoftDeleteModel
}

// TableName 指定表名
func (SchoolClass) TableName() string { return "school_classes" }
