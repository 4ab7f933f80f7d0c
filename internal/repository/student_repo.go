package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// StudentRepository 学生数据访问接口（只读，学生维护由学籍模块负责）
type StudentRepository interface {
	GetByID(ctx context.Context, establishmentID, id string) (*model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) GetByID(ctx context.Context, establishmentID, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND establishment_id = ?", id, establishmentID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}
