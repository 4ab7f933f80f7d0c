package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// EstablishmentRepository 学校数据访问接口
type EstablishmentRepository interface {
	GetByID(ctx context.Context, id string) (*model.Establishment, error)
	UpdateSelectedYear(ctx context.Context, id string, yearID *string, updatedBy string) error
	UpdateGradingConfig(ctx context.Context, id string, cfg model.GradingConfig, updatedBy string) error
}

type establishmentRepo struct {
	db *gorm.DB
}

// NewEstablishmentRepo 创建 EstablishmentRepository 实例
func NewEstablishmentRepo(db *gorm.DB) EstablishmentRepository {
	return &establishmentRepo{db: db}
}

func (r *establishmentRepo) GetByID(ctx context.Context, id string) (*model.Establishment, error) {
	var est model.Establishment
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", id).
		First(&est).Error
	if err != nil {
		return nil, err
	}
	return &est, nil
}

// UpdateSelectedYear 设置（yearID 非空）或清除（nil）学校的查看学年
func (r *establishmentRepo) UpdateSelectedYear(ctx context.Context, id string, yearID *string, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Establishment{}).
		Where("establishment_id = ?", id).
		Updates(map[string]interface{}{
			"selected_academic_year_id": yearID,
			"updated_by":                updatedBy,
			"updated_at":                gorm.Expr("NOW()"),
		}).Error
}

func (r *establishmentRepo) UpdateGradingConfig(ctx context.Context, id string, cfg model.GradingConfig, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Establishment{}).
		Where("establishment_id = ?", id).
		Updates(map[string]interface{}{
			"grading_config": datatypes.NewJSONType(cfg),
			"updated_by":     updatedBy,
			"updated_at":     gorm.Expr("NOW()"),
		}).Error
}
