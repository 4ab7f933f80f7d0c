package model

// Grade 成绩表，对应 grades
// (student_id, subject_id, period_id) 唯一，录分流程以 upsert 写入
type Grade struct {
	GradeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	StudentID  string `gorm:"type:uuid;not null;uniqueIndex:uq_grade_student_subject_period" json:"student_id"`
	SubjectID  string `gorm:"type:uuid;not null;uniqueIndex:uq_grade_student_subject_period" json:"subject_id"`
	PeriodID   string `gorm:"type:uuid;not null;uniqueIndex:uq_grade_student_subject_period;index" json:"period_id"`
	InterroAvg Score  `gorm:"type:numeric(5,2)" json:"interro_avg"`
	DevoirAvg  Score  `gorm:"type:numeric(5,2)" json:"devoir_avg"`
	CompoGrade Score  `gorm:"type:numeric(5,2)" json:"compo_grade"`
	BaseModel

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName 指定表名
func (Grade) TableName() string { return "grades" }
