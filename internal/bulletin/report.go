package bulletin

import (
	"fmt"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// Entry 一条成绩及其科目
type Entry struct {
	Grade   model.Grade
	Subject model.Subject
}

// SubjectRow 成绩单中的一行科目
type SubjectRow struct {
	SubjectID   string
	SubjectName string
	Category    string
	Coefficient int // 生效系数：未设置为 1，<=0 为 0（不计入总分与总系数）
	Interro     model.Score
	Devoir      model.Score
	Compo       model.Score
	Average     float64
	Weighted    float64
}

// CategoryGroup 一个科目分组
type CategoryGroup struct {
	Label            string
	Rows             []SubjectRow
	TotalCoefficient int
	TotalWeighted    float64
}

// Report 单个学生单个学段的成绩汇总
type Report struct {
	Student          model.Student
	Period           model.Period
	ClassID          string
	Categories       []CategoryGroup
	TotalCoefficient int
	TotalWeighted    float64
	OverallAverage   float64
	// Graded 该学段至少有一条成绩
	Graded bool
}

// Calculator 按学校配置计算成绩单
type Calculator struct {
	weights Weights
	order   CategoryOrder
}

// NewCalculator 根据学校成绩配置创建 Calculator
func NewCalculator(cfg model.GradingConfig) (*Calculator, error) {
	w, err := WeightsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Calculator{weights: w, order: NormalizeCategoryOrder(cfg.CategoryOrder)}, nil
}

// NewCalculatorWith 使用给定权重与分组顺序
func NewCalculatorWith(w Weights, order CategoryOrder) (*Calculator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{weights: w, order: NormalizeCategoryOrder(order)}, nil
}

// Weights 当前权重
func (c *Calculator) Weights() Weights { return c.weights }

// Assemble 汇总学生在某学段的成绩。
// enrollment 必须是该学生在有效学年的注册记录，否则返回 ErrStudentNotEnrolled。
func (c *Calculator) Assemble(scope Scope, student model.Student, enrollment *model.Enrollment, period model.Period, entries []Entry) (Report, error) {
	if err := scope.ValidatePeriod(period); err != nil {
		return Report{}, err
	}
	if !scope.ownsStudent(student) {
		return Report{}, fmt.Errorf("%w: 学生 %s", ErrScopeViolation, student.StudentID)
	}
	if err := scope.ValidateEnrollment(enrollment); err != nil {
		return Report{}, err
	}
	if enrollment.StudentID != student.StudentID {
		return Report{}, ErrStudentNotEnrolled
	}

	rows, err := c.rows(scope, student, period, entries)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Student:    student,
		Period:     period,
		ClassID:    enrollment.ClassID,
		Categories: c.order.group(rows),
		Graded:     len(rows) > 0,
	}
	r.TotalCoefficient, r.TotalWeighted, r.OverallAverage = totals(rows)
	return r, nil
}

// PeriodAverage 仅计算总平均分，用于历史学段。
// graded=false 表示该学段没有任何成绩。
func (c *Calculator) PeriodAverage(scope Scope, student model.Student, period model.Period, entries []Entry) (avg float64, graded bool, err error) {
	rows, err := c.rows(scope, student, period, entries)
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	_, _, avg = totals(rows)
	return avg, true, nil
}

func (c *Calculator) rows(scope Scope, student model.Student, period model.Period, entries []Entry) ([]SubjectRow, error) {
	seen := make(map[string]bool, len(entries))
	rows := make([]SubjectRow, 0, len(entries))

	for _, e := range entries {
		g, sub := e.Grade, e.Subject
		if g.StudentID != student.StudentID || g.PeriodID != period.PeriodID || g.SubjectID != sub.SubjectID {
			return nil, fmt.Errorf("%w: 成绩 %s", ErrScopeViolation, g.GradeID)
		}
		if !scope.ownsSubject(sub) {
			return nil, fmt.Errorf("%w: 科目 %s", ErrScopeViolation, sub.SubjectID)
		}
		if seen[sub.SubjectID] {
			return nil, fmt.Errorf("%w: 科目 %s", ErrDuplicateSubjectGrade, sub.Name)
		}
		seen[sub.SubjectID] = true

		coef := EffectiveCoefficient(sub)
		avg := c.weights.SubjectAverage(g)
		rows = append(rows, SubjectRow{
			SubjectID:   sub.SubjectID,
			SubjectName: sub.Name,
			Category:    sub.Category,
			Coefficient: coef,
			Interro:     g.InterroAvg,
			Devoir:      g.DevoirAvg,
			Compo:       g.CompoGrade,
			Average:     avg,
			Weighted:    avg * float64(coef),
		})
	}
	return rows, nil
}

// EffectiveCoefficient 未设置系数按 1 计；0 或负数不参与加权
func EffectiveCoefficient(sub model.Subject) int {
	if sub.Coefficient == nil {
		return 1
	}
	if *sub.Coefficient <= 0 {
		return 0
	}
	return *sub.Coefficient
}

// totals 总系数、总加权分与总平均；总系数为 0 时平均为 0
func totals(rows []SubjectRow) (coef int, weighted float64, avg float64) {
	for _, r := range rows {
		coef += r.Coefficient
		weighted += r.Weighted
	}
	if coef == 0 {
		return 0, weighted, 0
	}
	return coef, weighted, weighted / float64(coef)
}
