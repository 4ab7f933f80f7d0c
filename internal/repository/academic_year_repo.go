package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// AcademicYearRepository 学年数据访问接口
type AcademicYearRepository interface {
	GetByID(ctx context.Context, establishmentID, id string) (*model.AcademicYear, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]model.AcademicYear, error)
	Update(ctx context.Context, year *model.AcademicYear) error
	ClearActive(ctx context.Context, establishmentID string) error
}

type academicYearRepo struct {
	db *gorm.DB
}

// NewAcademicYearRepo 创建 AcademicYearRepository 实例
func NewAcademicYearRepo(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepo{db: db}
}

func (r *academicYearRepo) GetByID(ctx context.Context, establishmentID, id string) (*model.AcademicYear, error) {
	var year model.AcademicYear
	err := r.db.WithContext(ctx).
		Where("academic_year_id = ? AND establishment_id = ?", id, establishmentID).
		First(&year).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Order("label DESC").
		Find(&years).Error
	return years, err
}

func (r *academicYearRepo) Update(ctx context.Context, year *model.AcademicYear) error {
	return r.db.WithContext(ctx).Save(year).Error
}

// ClearActive 将学校所有学年的 is_active 设为 false
func (r *academicYearRepo) ClearActive(ctx context.Context, establishmentID string) error {
	return r.db.WithContext(ctx).
		Model(&model.AcademicYear{}).
		Where("establishment_id = ? AND is_active = ?", establishmentID, true).
		Update("is_active", false).Error
}
