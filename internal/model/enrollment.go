package model

// Enrollment 注册表，对应 enrollments
// (student_id, academic_year_id) 唯一：每个学生每学年只属于一个班级
type Enrollment struct {
	EnrollmentID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	StudentID      string `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_student_year" json:"student_id"`
	ClassID        string `gorm:"type:uuid;not null;index"                                  json:"class_id"`
	AcademicYearID string `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_student_year" json:"academic_year_id"`
	BaseModel

	// 关联
	Student *Student     `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Class   *SchoolClass `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }
