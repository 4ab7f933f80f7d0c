package bulletin

import "errors"

// ── 成绩单计算前置条件错误 ──
//
// 均为调用方需要拒绝的业务前置条件，不得以默认值替代。
// 仅有两个已定义的退化情形不报错：无成绩科目时总平均为 0，历史学段无成绩时平均为 nil。

var (
	ErrNoEffectiveYear       = errors.New("学校未设置当前学年")
	ErrMultipleActiveYears   = errors.New("学校存在多个激活学年")
	ErrPeriodYearMismatch    = errors.New("学段不属于当前学年")
	ErrStudentNotEnrolled    = errors.New("学生未在当前学年注册")
	ErrEmptyClass            = errors.New("班级在当前学年没有注册学生")
	ErrInvalidWeights        = errors.New("成绩权重配置无效")
	ErrScopeViolation        = errors.New("数据不属于当前学校或学年")
	ErrDuplicateSubjectGrade = errors.New("同一学段同一科目存在重复成绩")
)
