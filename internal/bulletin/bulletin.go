package bulletin

import (
	"fmt"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// Bulletin 交给渲染层的完整成绩单模型（三种版式共用）
type Bulletin struct {
	EstablishmentName string
	YearLabel         string
	Class             model.SchoolClass
	Report            Report
	Position          Position
	Stats             ClassStatistics
	History           []HistoryEntry
	Decision          Decision
}

// Compose 合并单个学生的成绩汇总、班级排名与历史学段
func Compose(est model.Establishment, scope Scope, class model.SchoolClass, report Report, ranking Ranking, history []HistoryEntry) (Bulletin, error) {
	if class.ClassID != report.ClassID || class.EstablishmentID != scope.EstablishmentID {
		return Bulletin{}, fmt.Errorf("%w: 班级 %s", ErrScopeViolation, class.ClassID)
	}
	pos, ok := ranking.Of(report.Student.StudentID)
	if !ok {
		return Bulletin{}, fmt.Errorf("%w: 学生 %s 不在班级名册中", ErrStudentNotEnrolled, report.Student.StudentID)
	}
	return Bulletin{
		EstablishmentName: est.Name,
		YearLabel:         scope.Year.Label,
		Class:             class,
		Report:            report,
		Position:          pos,
		Stats:             ranking.Stats,
		History:           history,
		Decision:          Decide(report.OverallAverage),
	}, nil
}
