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

// ── 学年范围模块业务错误 ──

var (
	ErrEstablishmentNotFound = errors.New("学校不存在")
	ErrAcademicYearNotFound  = errors.New("学年不存在")
	ErrPeriodNotFound        = errors.New("学段不存在")
	ErrAcademicYearLocked    = errors.New("学年已锁定，不能激活")
)

// ScopeService 学年范围业务接口
//
// 有效学年 = 学校手动选择的学年 ?? 激活学年。
// 选择学年只影响查看范围，激活学年决定新数据写入的学年。
type ScopeService interface {
	// Resolve 解析学校的有效学年
	Resolve(ctx context.Context, establishmentID string) (bulletin.Scope, error)
	// ResolvePeriod 查询学段并校验其属于有效学年
	ResolvePeriod(ctx context.Context, scope bulletin.Scope, periodID string) (*model.Period, error)
	Current(ctx context.Context, establishmentID string) (*dto.ScopeResponse, error)
	SelectYear(ctx context.Context, establishmentID, yearID, callerID string) (*dto.ScopeResponse, error)
	ClearSelection(ctx context.Context, establishmentID, callerID string) (*dto.ScopeResponse, error)
	ActivateYear(ctx context.Context, establishmentID, yearID, callerID string) error
}

type scopeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScopeService 创建 ScopeService 实例
func NewScopeService(repo *repository.Repository, logger *zap.Logger) ScopeService {
	return &scopeService{repo: repo, logger: logger}
}

// ────────────────────── Resolve ──────────────────────

func (s *scopeService) Resolve(ctx context.Context, establishmentID string) (bulletin.Scope, error) {
	_, scope, err := resolveScope(ctx, s.repo, s.logger, establishmentID)
	return scope, err
}

func (s *scopeService) ResolvePeriod(ctx context.Context, scope bulletin.Scope, periodID string) (*model.Period, error) {
	return resolvePeriod(ctx, s.repo, s.logger, scope, periodID)
}

// ────────────────────── Current ──────────────────────

func (s *scopeService) Current(ctx context.Context, establishmentID string) (*dto.ScopeResponse, error) {
	est, scope, err := resolveScope(ctx, s.repo, s.logger, establishmentID)
	if err != nil {
		return nil, err
	}

	periods, err := s.repo.Period.ListByAcademicYear(ctx, scope.YearID())
	if err != nil {
		s.logger.Error("查询学段列表失败", zap.String("academic_year_id", scope.YearID()), zap.Error(err))
		return nil, err
	}

	resp := &dto.ScopeResponse{
		EstablishmentID:   est.EstablishmentID,
		EstablishmentName: est.Name,
		PeriodType:        scope.PeriodType,
		AcademicYear:      toAcademicYearResponse(&scope.Year),
		Selected:          est.SelectedAcademicYearID != nil,
		Periods:           make([]dto.PeriodResponse, 0, len(periods)),
	}
	for i := range periods {
		resp.Periods = append(resp.Periods, toPeriodResponse(&periods[i]))
	}
	return resp, nil
}

// ────────────────────── SelectYear ──────────────────────

func (s *scopeService) SelectYear(ctx context.Context, establishmentID, yearID, callerID string) (*dto.ScopeResponse, error) {
	if _, err := s.getYear(ctx, establishmentID, yearID); err != nil {
		return nil, err
	}

	if err := s.repo.Establishment.UpdateSelectedYear(ctx, establishmentID, &yearID, callerID); err != nil {
		s.logger.Error("设置查看学年失败",
			zap.String("establishment_id", establishmentID),
			zap.String("academic_year_id", yearID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("切换查看学年",
		zap.String("establishment_id", establishmentID),
		zap.String("academic_year_id", yearID),
		zap.String("caller_id", callerID))

	return s.Current(ctx, establishmentID)
}

// ────────────────────── ClearSelection ──────────────────────

func (s *scopeService) ClearSelection(ctx context.Context, establishmentID, callerID string) (*dto.ScopeResponse, error) {
	if err := s.repo.Establishment.UpdateSelectedYear(ctx, establishmentID, nil, callerID); err != nil {
		s.logger.Error("清除查看学年失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return nil, err
	}
	return s.Current(ctx, establishmentID)
}

// ────────────────────── ActivateYear ──────────────────────

func (s *scopeService) ActivateYear(ctx context.Context, establishmentID, yearID, callerID string) error {
	year, err := s.getYear(ctx, establishmentID, yearID)
	if err != nil {
		return err
	}
	if year.IsLocked {
		return ErrAcademicYearLocked
	}

	// 使用事务保证 ClearActive + Update 的原子性，避免出现两个激活学年
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.AcademicYear.ClearActive(ctx, establishmentID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("清除激活学年失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return err
	}

	year.IsActive = true
	year.UpdatedBy = &callerID

	if err := txRepo.AcademicYear.Update(ctx, year); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("激活学年失败", zap.String("academic_year_id", yearID), zap.Error(err))
		return err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return err
		}
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *scopeService) getYear(ctx context.Context, establishmentID, yearID string) (*model.AcademicYear, error) {
	year, err := s.repo.AcademicYear.GetByID(ctx, establishmentID, yearID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAcademicYearNotFound
		}
		s.logger.Error("查询学年失败", zap.String("academic_year_id", yearID), zap.Error(err))
		return nil, err
	}
	return year, nil
}

// resolveScope 读取学校及其全部学年并解析有效学年。
// repo 可以是绑定到快照事务的 Repository。
func resolveScope(ctx context.Context, repo *repository.Repository, logger *zap.Logger, establishmentID string) (*model.Establishment, bulletin.Scope, error) {
	est, err := repo.Establishment.GetByID(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bulletin.Scope{}, ErrEstablishmentNotFound
		}
		logger.Error("查询学校失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return nil, bulletin.Scope{}, err
	}

	years, err := repo.AcademicYear.ListByEstablishment(ctx, establishmentID)
	if err != nil {
		logger.Error("查询学年列表失败", zap.String("establishment_id", establishmentID), zap.Error(err))
		return nil, bulletin.Scope{}, err
	}

	scope, err := bulletin.ResolveScope(*est, years)
	if err != nil {
		return nil, bulletin.Scope{}, err
	}
	return est, scope, nil
}

// resolvePeriod 查询学段并校验其属于有效学年
func resolvePeriod(ctx context.Context, repo *repository.Repository, logger *zap.Logger, scope bulletin.Scope, periodID string) (*model.Period, error) {
	period, err := repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		logger.Error("查询学段失败", zap.String("period_id", periodID), zap.Error(err))
		return nil, err
	}
	if err := scope.ValidatePeriod(*period); err != nil {
		return nil, err
	}
	return period, nil
}

func toAcademicYearResponse(y *model.AcademicYear) dto.AcademicYearResponse {
	return dto.AcademicYearResponse{
		ID:       y.AcademicYearID,
		Label:    y.Label,
		IsActive: y.IsActive,
		IsLocked: y.IsLocked,
	}
}

func toPeriodResponse(p *model.Period) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:       p.PeriodID,
		Name:     p.Name,
		Order:    p.Order,
		IsActive: p.IsActive,
	}
}
