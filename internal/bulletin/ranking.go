package bulletin

import (
	"fmt"
	"math"
	"sort"
)

// tieEpsilon 总平均差值小于该值视为并列
const tieEpsilon = 1e-9

// Position 学生在班级中的名次
type Position struct {
	StudentID      string
	Rank           int
	Tied           bool // 与其他学生并列
	OverallAverage float64
}

// ClassStatistics 班级统计
type ClassStatistics struct {
	Size    int
	Highest float64
	Lowest  float64
	Average float64
}

// Ranking 班级排名结果
type Ranking struct {
	Positions []Position // 按名次排序
	Stats     ClassStatistics
	byStudent map[string]int
}

// Of 查询学生名次
func (r Ranking) Of(studentID string) (Position, bool) {
	i, ok := r.byStudent[studentID]
	if !ok {
		return Position{}, false
	}
	return r.Positions[i], true
}

// RankClass 对同一班级同一学段的全部成绩单排名并统计。
//
// 并列规则：总平均相同者名次相同（1, 2, 2, 4），并标记 Tied；
// 并列者之间按输入顺序（即注册顺序）排列。
// reports 为空返回 ErrEmptyClass。
func RankClass(reports []Report) (Ranking, error) {
	if len(reports) == 0 {
		return Ranking{}, ErrEmptyClass
	}

	periodID, classID := reports[0].Period.PeriodID, reports[0].ClassID
	seen := make(map[string]bool, len(reports))
	for _, r := range reports {
		if r.Period.PeriodID != periodID || r.ClassID != classID {
			return Ranking{}, fmt.Errorf("%w: 成绩单不属于同一班级与学段", ErrScopeViolation)
		}
		if seen[r.Student.StudentID] {
			return Ranking{}, fmt.Errorf("%w: 学生 %s 重复", ErrScopeViolation, r.Student.StudentID)
		}
		seen[r.Student.StudentID] = true
	}

	order := make([]int, len(reports))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return reports[order[a]].OverallAverage > reports[order[b]].OverallAverage
	})

	// 并列组以组首（组内最高分）为基准划分，相近分数不会串成一长串并列；
	// 组内恢复输入顺序
	positions := make([]Position, 0, len(order))
	byStudent := make(map[string]int, len(order))
	for start := 0; start < len(order); {
		end := start + 1
		leader := reports[order[start]].OverallAverage
		for end < len(order) && sameAverage(leader, reports[order[end]].OverallAverage) {
			end++
		}
		run := order[start:end]
		sort.Ints(run)

		for _, idx := range run {
			r := reports[idx]
			byStudent[r.Student.StudentID] = len(positions)
			positions = append(positions, Position{
				StudentID:      r.Student.StudentID,
				Rank:           start + 1,
				Tied:           len(run) > 1,
				OverallAverage: r.OverallAverage,
			})
		}
		start = end
	}

	return Ranking{
		Positions: positions,
		Stats:     Statistics(reports),
		byStudent: byStudent,
	}, nil
}

// Statistics 最高、最低与平均的总平均分；空集合返回零值
func Statistics(reports []Report) ClassStatistics {
	if len(reports) == 0 {
		return ClassStatistics{}
	}
	st := ClassStatistics{
		Size:    len(reports),
		Highest: reports[0].OverallAverage,
		Lowest:  reports[0].OverallAverage,
	}
	sum := 0.0
	for _, r := range reports {
		st.Highest = math.Max(st.Highest, r.OverallAverage)
		st.Lowest = math.Min(st.Lowest, r.OverallAverage)
		sum += r.OverallAverage
	}
	st.Average = sum / float64(len(reports))
	return st
}

func sameAverage(a, b float64) bool {
	return math.Abs(a-b) < tieEpsilon
}
