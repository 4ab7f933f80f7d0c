// Package bulletin 成绩汇总与成绩单计算引擎。
//
// 引擎是纯同步计算：输入为已加载的实体，输出为不落库的成绩单模型，
// 同一输入快照重复计算结果一致。所有调用都显式携带 Scope，
// 不读取任何全局的"当前学年"状态。
package bulletin

import (
	"fmt"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// Scope 一次计算的租户与学年范围
type Scope struct {
	EstablishmentID string
	PeriodType      string
	Year            model.AcademicYear
}

// ResolveScope 计算学校的有效学年：已选学年优先于激活学年。
// years 为该学校的全部学年；不属于该学校的记录会被忽略。
func ResolveScope(est model.Establishment, years []model.AcademicYear) (Scope, error) {
	owned := make([]model.AcademicYear, 0, len(years))
	for _, y := range years {
		if y.EstablishmentID == est.EstablishmentID {
			owned = append(owned, y)
		}
	}

	if est.SelectedAcademicYearID != nil && *est.SelectedAcademicYearID != "" {
		for _, y := range owned {
			if y.AcademicYearID == *est.SelectedAcademicYearID {
				return newScope(est, y), nil
			}
		}
		// 已选学年不属于本校时不回退到激活学年，避免跨学校读取
		return Scope{}, fmt.Errorf("%w: 已选学年 %s 不存在", ErrNoEffectiveYear, *est.SelectedAcademicYearID)
	}

	var active *model.AcademicYear
	for i := range owned {
		if !owned[i].IsActive {
			continue
		}
		if active != nil {
			return Scope{}, ErrMultipleActiveYears
		}
		active = &owned[i]
	}
	if active == nil {
		return Scope{}, ErrNoEffectiveYear
	}
	return newScope(est, *active), nil
}

func newScope(est model.Establishment, year model.AcademicYear) Scope {
	return Scope{
		EstablishmentID: est.EstablishmentID,
		PeriodType:      est.PeriodType,
		Year:            year,
	}
}

// YearID 有效学年 ID
func (s Scope) YearID() string { return s.Year.AcademicYearID }

// ValidatePeriod 校验学段属于有效学年（防止切换学年后仍对旧学段录分或出单）
func (s Scope) ValidatePeriod(p model.Period) error {
	if p.AcademicYearID != s.Year.AcademicYearID {
		return fmt.Errorf("%w: 学段 %s 属于学年 %s，当前学年 %s",
			ErrPeriodYearMismatch, p.PeriodID, p.AcademicYearID, s.Year.AcademicYearID)
	}
	return nil
}

// ValidateEnrollment 校验注册记录属于有效学年；nil 视为未注册
func (s Scope) ValidateEnrollment(e *model.Enrollment) error {
	if e == nil || e.AcademicYearID != s.Year.AcademicYearID {
		return ErrStudentNotEnrolled
	}
	return nil
}

// ownsStudent 学生属于本校
func (s Scope) ownsStudent(st model.Student) bool {
	return st.EstablishmentID == s.EstablishmentID
}

// ownsSubject 科目属于本校
func (s Scope) ownsSubject(sub model.Subject) bool {
	return sub.EstablishmentID == s.EstablishmentID
}
