package model

// Subject 科目表，对应 subjects
type Subject struct {
	SubjectID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	EstablishmentID string `gorm:"type:uuid;not null;index"                       json:"establishment_id"`
	Name            string `gorm:"type:varchar(100);not null"                     json:"name"`
	Category        string `gorm:"type:varchar(100);not null;default:''"          json:"category"` // MATIERES SCIENTIFIQUES
	Coefficient     *int   `gorm:""                                               json:"coefficient,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
