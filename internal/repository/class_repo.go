package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	GetByID(ctx context.Context, establishmentID, id string) (*model.SchoolClass, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) GetByID(ctx context.Context, establishmentID, id string) (*model.SchoolClass, error) {
	var class model.SchoolClass
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND establishment_id = ?", id, establishmentID).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}
