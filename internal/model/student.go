package model

import "time"

// Student 学生表，对应 students
type Student struct {
	StudentID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	EstablishmentID string     `gorm:"type:uuid;not null;index"                       json:"establishment_id"`
	Matricule       string     `gorm:"type:varchar(30);not null"                      json:"matricule"`
	FirstName       string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName        string     `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Gender          string     `gorm:"type:varchar(1);not null;default:''"            json:"gender"` // M | F
	BirthDate       *time.Time `gorm:"type:date"                                      json:"birth_date,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// FullName 姓 + 名
func (s Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	return s.LastName + " " + s.FirstName
}
