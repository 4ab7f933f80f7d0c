package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/bulletin"
	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
	"github.com/wilfreed8/EtuManager-sub001/internal/model"
	"github.com/wilfreed8/EtuManager-sub001/internal/repository"
)

// GradingConfigService 学校成绩配置业务接口
type GradingConfigService interface {
	Get(ctx context.Context, establishmentID string) (*dto.GradingConfigResponse, error)
	Update(ctx context.Context, establishmentID string, req *dto.UpdateGradingConfigRequest, callerID string) (*dto.GradingConfigResponse, error)
}

type gradingConfigService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradingConfigService 创建 GradingConfigService 实例
func NewGradingConfigService(repo *repository.Repository, logger *zap.Logger) GradingConfigService {
	return &gradingConfigService{repo: repo, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *gradingConfigService) Get(ctx context.Context, establishmentID string) (*dto.GradingConfigResponse, error) {
	est, err := s.getEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	return toGradingConfigResponse(est.GradingConfig.Data(), est)
}

// ────────────────────── Update ──────────────────────

func (s *gradingConfigService) Update(ctx context.Context, establishmentID string, req *dto.UpdateGradingConfigRequest, callerID string) (*dto.GradingConfigResponse, error) {
	est, err := s.getEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	cfg := est.GradingConfig.Data()
	if req.Interro != nil {
		cfg.Interro = req.Interro
	}
	if req.Devoir != nil {
		cfg.Devoir = req.Devoir
	}
	if req.Compo != nil {
		cfg.Compo = req.Compo
	}
	if req.CategoryOrder != nil {
		cfg.CategoryOrder = bulletin.NormalizeCategoryOrder(req.CategoryOrder)
	}

	// 合并后的权重必须可用，否则后续所有成绩单都无法计算
	if _, err := bulletin.WeightsFromConfig(cfg); err != nil {
		return nil, err
	}

	if err := s.repo.Establishment.UpdateGradingConfig(ctx, establishmentID, cfg, callerID); err != nil {
		s.logger.Error("更新成绩配置失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("成绩配置已更新",
		zap.String("establishment_id", establishmentID),
		zap.String("caller_id", callerID))

	return s.Get(ctx, establishmentID)
}

// ── 内部辅助方法 ──

func (s *gradingConfigService) getEstablishment(ctx context.Context, establishmentID string) (*model.Establishment, error) {
	est, err := s.repo.Establishment.GetByID(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEstablishmentNotFound
		}
		s.logger.Error("查询学校失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return nil, err
	}
	return est, nil
}

func toGradingConfigResponse(cfg model.GradingConfig, est *model.Establishment) (*dto.GradingConfigResponse, error) {
	w, err := bulletin.WeightsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	order := bulletin.NormalizeCategoryOrder(cfg.CategoryOrder)
	return &dto.GradingConfigResponse{
		Interro:       w.Interro,
		Devoir:        w.Devoir,
		Compo:         w.Compo,
		Divisor:       w.Divisor(),
		CategoryOrder: []string(order),
		UpdatedAt:     est.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}
