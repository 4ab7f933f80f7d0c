package bulletin

import (
	"sort"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// HistoryEntry 历史学段的总平均；Average 为 nil 表示该学段无成绩
type HistoryEntry struct {
	PeriodID   string
	PeriodName string
	Order      int
	Average    *float64
}

// PastPeriods 返回学年内 order 严格小于当前学段的学段，按 order 升序。
// 其他学年的学段会被过滤。
func PastPeriods(scope Scope, periods []model.Period, current model.Period) []model.Period {
	past := make([]model.Period, 0, len(periods))
	for _, p := range periods {
		if p.AcademicYearID != scope.YearID() || p.PeriodID == current.PeriodID {
			continue
		}
		if p.Order >= current.Order {
			continue
		}
		past = append(past, p)
	}
	sort.SliceStable(past, func(i, j int) bool { return past[i].Order < past[j].Order })
	return past
}

// History 计算学生在本学年以往学段的总平均。
// gradesByPeriod 以 PeriodID 为键；缺失或为空的学段记为无数据。
func (c *Calculator) History(scope Scope, student model.Student, periods []model.Period, current model.Period, gradesByPeriod map[string][]Entry) ([]HistoryEntry, error) {
	if err := scope.ValidatePeriod(current); err != nil {
		return nil, err
	}

	past := PastPeriods(scope, periods, current)
	out := make([]HistoryEntry, 0, len(past))
	for _, p := range past {
		h := HistoryEntry{PeriodID: p.PeriodID, PeriodName: p.Name, Order: p.Order}
		avg, graded, err := c.PeriodAverage(scope, student, p, gradesByPeriod[p.PeriodID])
		if err != nil {
			return nil, err
		}
		if graded {
			h.Average = &avg
		}
		out = append(out, h)
	}
	return out, nil
}
