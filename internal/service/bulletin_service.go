package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/bulletin"
	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
	"github.com/wilfreed8/EtuManager-sub001/internal/model"
	"github.com/wilfreed8/EtuManager-sub001/internal/repository"
)

// ── 成绩单模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrClassNotFound   = errors.New("班级不存在")
)

// BulletinService 成绩单业务接口
//
// 设计说明：
//   - 每次请求在一个只读 REPEATABLE READ 快照内读取全部输入
//   - 单个学生的成绩单也需要整班数据（名次与班级统计）
//   - 班级内各学生的汇总并行计算，排名是唯一的汇合点
type BulletinService interface {
	StudentBulletin(ctx context.Context, establishmentID, studentID, periodID string) (*dto.BulletinResponse, error)
	ClassBulletins(ctx context.Context, establishmentID, classID, periodID string) (*dto.ClassBulletinsResponse, error)
	ClassRanking(ctx context.Context, establishmentID, classID, periodID string) (*dto.RankingResponse, error)
}

type bulletinService struct {
	loader *batchLoader
	logger *zap.Logger
}

// NewBulletinService 创建 BulletinService 实例
func NewBulletinService(repo *repository.Repository, workers int, logger *zap.Logger) BulletinService {
	return &bulletinService{
		loader: newBatchLoader(repo, workers, logger),
		logger: logger,
	}
}

// ────────────────────── StudentBulletin ──────────────────────

func (s *bulletinService) StudentBulletin(ctx context.Context, establishmentID, studentID, periodID string) (*dto.BulletinResponse, error) {
	var resp *dto.BulletinResponse

	err := s.loader.inSnapshot(ctx, func(repo *repository.Repository) error {
		est, scope, err := resolveScope(ctx, repo, s.logger, establishmentID)
		if err != nil {
			return err
		}
		period, err := resolvePeriod(ctx, repo, s.logger, scope, periodID)
		if err != nil {
			return err
		}

		student, err := repo.Student.GetByID(ctx, establishmentID, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			s.logger.Error("查询学生失败", zap.String("student_id", studentID), zap.Error(err))
			return err
		}

		enrollment, err := repo.Enrollment.GetByStudentAndYear(ctx, student.StudentID, scope.YearID())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bulletin.ErrStudentNotEnrolled
			}
			s.logger.Error("查询注册记录失败", zap.String("student_id", studentID), zap.Error(err))
			return err
		}

		class, err := getClass(ctx, repo, s.logger, establishmentID, enrollment.ClassID)
		if err != nil {
			return err
		}

		batch, err := s.loader.load(ctx, repo, est, scope, class, period)
		if err != nil {
			return err
		}

		b, err := batch.bulletinOf(student.StudentID)
		if err != nil {
			return err
		}
		r := toBulletinResponse(b)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ────────────────────── ClassBulletins ──────────────────────

func (s *bulletinService) ClassBulletins(ctx context.Context, establishmentID, classID, periodID string) (*dto.ClassBulletinsResponse, error) {
	var resp *dto.ClassBulletinsResponse

	err := s.loader.inSnapshot(ctx, func(repo *repository.Repository) error {
		batch, err := s.loader.loadClass(ctx, repo, establishmentID, classID, periodID)
		if err != nil {
			return err
		}

		bulletins, err := batch.bulletins()
		if err != nil {
			return err
		}

		resp = &dto.ClassBulletinsResponse{
			Class:      toClassBriefResponse(batch.class),
			Period:     toPeriodResponse(batch.period),
			Statistics: toClassStatisticsResponse(batch.ranking.Stats),
			Bulletins:  make([]dto.BulletinResponse, 0, len(bulletins)),
		}
		for _, b := range bulletins {
			resp.Bulletins = append(resp.Bulletins, toBulletinResponse(b))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("班级成绩单已生成",
		zap.String("class_id", classID),
		zap.String("period_id", periodID),
		zap.Int("count", len(resp.Bulletins)))
	return resp, nil
}

// ────────────────────── ClassRanking ──────────────────────

func (s *bulletinService) ClassRanking(ctx context.Context, establishmentID, classID, periodID string) (*dto.RankingResponse, error) {
	var resp *dto.RankingResponse

	err := s.loader.inSnapshot(ctx, func(repo *repository.Repository) error {
		batch, err := s.loader.loadClass(ctx, repo, establishmentID, classID, periodID)
		if err != nil {
			return err
		}

		resp = &dto.RankingResponse{
			Class:      toClassBriefResponse(batch.class),
			Period:     toPeriodResponse(batch.period),
			Statistics: toClassStatisticsResponse(batch.ranking.Stats),
			Positions:  make([]dto.RankingEntryResponse, 0, len(batch.ranking.Positions)),
		}
		for _, p := range batch.ranking.Positions {
			st := batch.students[p.StudentID]
			resp.Positions = append(resp.Positions, dto.RankingEntryResponse{
				Rank:           p.Rank,
				Tied:           p.Tied,
				StudentID:      p.StudentID,
				Matricule:      st.Matricule,
				FullName:       st.FullName(),
				OverallAverage: round2(p.OverallAverage),
				Decision:       toDecisionResponse(bulletin.Decide(p.OverallAverage)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ═══════════════════════════════════════════════════════════
// batchLoader 班级批量计算
// ═══════════════════════════════════════════════════════════

type batchLoader struct {
	repo    *repository.Repository
	workers int
	logger  *zap.Logger
}

func newBatchLoader(repo *repository.Repository, workers int, logger *zap.Logger) *batchLoader {
	if workers <= 0 {
		workers = 1
	}
	return &batchLoader{repo: repo, workers: workers, logger: logger}
}

// classBatch 一个班级一个学段的计算结果，reports 与 histories 按名册顺序对齐
type classBatch struct {
	est       *model.Establishment
	scope     bulletin.Scope
	class     *model.SchoolClass
	period    *model.Period
	reports   []bulletin.Report
	histories [][]bulletin.HistoryEntry
	ranking   bulletin.Ranking
	students  map[string]model.Student
}

// inSnapshot 在只读快照事务内执行 fn；只读事务结束时一律回滚
func (l *batchLoader) inSnapshot(ctx context.Context, fn func(repo *repository.Repository) error) error {
	tx, err := l.repo.BeginSnapshot(ctx)
	if err != nil {
		l.logger.Error("开启快照事务失败", zap.Error(err))
		return err
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()
	return fn(l.repo.WithTx(tx))
}

// loadClass 解析范围、学段与班级后计算整班结果
func (l *batchLoader) loadClass(ctx context.Context, repo *repository.Repository, establishmentID, classID, periodID string) (*classBatch, error) {
	est, scope, err := resolveScope(ctx, repo, l.logger, establishmentID)
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(ctx, repo, l.logger, scope, periodID)
	if err != nil {
		return nil, err
	}
	class, err := getClass(ctx, repo, l.logger, establishmentID, classID)
	if err != nil {
		return nil, err
	}
	return l.load(ctx, repo, est, scope, class, period)
}

// load 读取名册与成绩，逐个学生汇总并排名
func (l *batchLoader) load(ctx context.Context, repo *repository.Repository, est *model.Establishment, scope bulletin.Scope, class *model.SchoolClass, period *model.Period) (*classBatch, error) {
	calc, err := bulletin.NewCalculator(est.GradingConfig.Data())
	if err != nil {
		return nil, err
	}

	// 1. 班级名册
	roster, err := repo.Enrollment.ListByClassAndYear(ctx, class.ClassID, scope.YearID())
	if err != nil {
		l.logger.Error("查询班级名册失败", zap.String("class_id", class.ClassID), zap.Error(err))
		return nil, err
	}
	enrolled := make([]model.Enrollment, 0, len(roster))
	studentIDs := make([]string, 0, len(roster))
	students := make(map[string]model.Student, len(roster))
	for _, e := range roster {
		if e.Student == nil {
			l.logger.Warn("注册记录缺少学生，已跳过", zap.String("enrollment_id", e.EnrollmentID))
			continue
		}
		enrolled = append(enrolled, e)
		studentIDs = append(studentIDs, e.StudentID)
		students[e.StudentID] = *e.Student
	}
	if len(enrolled) == 0 {
		return nil, bulletin.ErrEmptyClass
	}

	// 2. 学年内学段：当前学段 + 以往学段一次查询
	periods, err := repo.Period.ListByAcademicYear(ctx, scope.YearID())
	if err != nil {
		l.logger.Error("查询学段列表失败", zap.String("academic_year_id", scope.YearID()), zap.Error(err))
		return nil, err
	}
	periodIDs := []string{period.PeriodID}
	for _, p := range bulletin.PastPeriods(scope, periods, *period) {
		periodIDs = append(periodIDs, p.PeriodID)
	}

	grades, err := repo.Grade.ListByPeriodsAndStudents(ctx, periodIDs, studentIDs)
	if err != nil {
		l.logger.Error("查询成绩失败", zap.String("class_id", class.ClassID), zap.Error(err))
		return nil, err
	}
	byStudent := l.indexGrades(grades)

	// 3. 逐个学生汇总（并行），结果按名册下标写回
	reports := make([]bulletin.Report, len(enrolled))
	histories := make([][]bulletin.HistoryEntry, len(enrolled))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i := range enrolled {
		i := i
		e := &enrolled[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			student := *e.Student
			entries := byStudent[student.StudentID]

			report, err := calc.Assemble(scope, student, e, *period, entries[period.PeriodID])
			if err != nil {
				return fmt.Errorf("学生 %s: %w", student.StudentID, err)
			}
			history, err := calc.History(scope, student, periods, *period, entries)
			if err != nil {
				return fmt.Errorf("学生 %s: %w", student.StudentID, err)
			}
			reports[i] = report
			histories[i] = history
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 4. 排名与班级统计
	ranking, err := bulletin.RankClass(reports)
	if err != nil {
		return nil, err
	}

	return &classBatch{
		est:       est,
		scope:     scope,
		class:     class,
		period:    period,
		reports:   reports,
		histories: histories,
		ranking:   ranking,
		students:  students,
	}, nil
}

// indexGrades 按 学生 → 学段 归并成绩；缺少科目的成绩（科目已删除）跳过
func (l *batchLoader) indexGrades(grades []model.Grade) map[string]map[string][]bulletin.Entry {
	out := make(map[string]map[string][]bulletin.Entry)
	for _, g := range grades {
		if g.Subject == nil {
			l.logger.Warn("成绩缺少科目，已跳过", zap.String("grade_id", g.GradeID))
			continue
		}
		byPeriod, ok := out[g.StudentID]
		if !ok {
			byPeriod = make(map[string][]bulletin.Entry)
			out[g.StudentID] = byPeriod
		}
		byPeriod[g.PeriodID] = append(byPeriod[g.PeriodID], bulletin.Entry{Grade: g, Subject: *g.Subject})
	}
	return out
}

// bulletins 按名次顺序生成整班成绩单
func (b *classBatch) bulletins() ([]bulletin.Bulletin, error) {
	index := make(map[string]int, len(b.reports))
	for i, r := range b.reports {
		index[r.Student.StudentID] = i
	}

	out := make([]bulletin.Bulletin, 0, len(b.reports))
	for _, p := range b.ranking.Positions {
		i := index[p.StudentID]
		bl, err := bulletin.Compose(*b.est, b.scope, *b.class, b.reports[i], b.ranking, b.histories[i])
		if err != nil {
			return nil, err
		}
		out = append(out, bl)
	}
	return out, nil
}

// bulletinOf 单个学生的成绩单
func (b *classBatch) bulletinOf(studentID string) (bulletin.Bulletin, error) {
	for i, r := range b.reports {
		if r.Student.StudentID == studentID {
			return bulletin.Compose(*b.est, b.scope, *b.class, r, b.ranking, b.histories[i])
		}
	}
	return bulletin.Bulletin{}, bulletin.ErrStudentNotEnrolled
}

func getClass(ctx context.Context, repo *repository.Repository, logger *zap.Logger, establishmentID, classID string) (*model.SchoolClass, error) {
	class, err := repo.Class.GetByID(ctx, establishmentID, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		logger.Error("查询班级失败", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}
	return class, nil
}
