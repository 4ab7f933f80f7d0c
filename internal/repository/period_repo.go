package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// PeriodRepository 学段数据访问接口
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*model.Period, error)
	// ListByAcademicYear 按 order 升序
	ListByAcademicYear(ctx context.Context, academicYearID string) ([]model.Period, error)
}

type periodRepo struct {
	db *gorm.DB
}

// NewPeriodRepo 创建 PeriodRepository 实例
func NewPeriodRepo(db *gorm.DB) PeriodRepository {
	return &periodRepo{db: db}
}

func (r *periodRepo) GetByID(ctx context.Context, id string) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).
		Where("period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) ListByAcademicYear(ctx context.Context, academicYearID string) ([]model.Period, error) {
	var periods []model.Period
	err := r.db.WithContext(ctx).
		Where("academic_year_id = ?", academicYearID).
		Order("period_order ASC").
		Find(&periods).Error
	return periods, err
}
