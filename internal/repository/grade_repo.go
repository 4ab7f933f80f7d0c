package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// GradeRepository 成绩数据访问接口（只读，录分由成绩录入模块负责）
type GradeRepository interface {
	// ListByPeriodsAndStudents 批量读取多个学段、多个学生的成绩。
	// 结果预加载 Subject，按科目创建顺序排列，即成绩单组内科目的展示顺序。
	ListByPeriodsAndStudents(ctx context.Context, periodIDs, studentIDs []string) ([]model.Grade, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo 创建 GradeRepository 实例
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) ListByPeriodsAndStudents(ctx context.Context, periodIDs, studentIDs []string) ([]model.Grade, error) {
	if len(periodIDs) == 0 || len(studentIDs) == 0 {
		return nil, nil
	}
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Joins("Subject").
		Where("grades.period_id IN ? AND grades.student_id IN ?", periodIDs, studentIDs).
		Order(`"Subject".created_at ASC, grades.subject_id ASC`).
		Find(&grades).Error
	return grades, err
}
