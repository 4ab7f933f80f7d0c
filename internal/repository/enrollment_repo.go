package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// EnrollmentRepository 注册数据访问接口
type EnrollmentRepository interface {
	GetByStudentAndYear(ctx context.Context, studentID, academicYearID string) (*model.Enrollment, error)
	// ListByClassAndYear 班级名册（预加载学生），按注册先后排序
	ListByClassAndYear(ctx context.Context, classID, academicYearID string) ([]model.Enrollment, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) GetByStudentAndYear(ctx context.Context, studentID, academicYearID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND academic_year_id = ?", studentID, academicYearID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) ListByClassAndYear(ctx context.Context, classID, academicYearID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("class_id = ? AND academic_year_id = ?", classID, academicYearID).
		Order("created_at ASC, enrollment_id ASC").
		Find(&enrollments).Error
	return enrollments, err
}
