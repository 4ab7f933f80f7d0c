package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

func TestAssemble_MathScenario(t *testing.T) {
	calc := defaultCalculator()
	period := testPeriod("p1", 1)
	math := testSubject("math", "MATIERES SCIENTIFIQUES", intPtr(5))

	r, err := calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), period, []Entry{
		entry("s1", "p1", math, model.Present(12), model.Present(14), model.Present(16)),
	})
	require.NoError(t, err)

	require.Len(t, r.Categories, 1)
	row := r.Categories[0].Rows[0]
	assert.InDelta(t, 14.5, row.Average, 1e-9)
	assert.InDelta(t, 72.5, row.Weighted, 1e-9)
	assert.Equal(t, 5, r.TotalCoefficient)
	assert.InDelta(t, 72.5, r.TotalWeighted, 1e-9)
	assert.InDelta(t, 14.5, r.OverallAverage, 1e-9)
	assert.Equal(t, testClass, r.ClassID)
	assert.True(t, r.Graded)
}

func TestAssemble_NoGrades(t *testing.T) {
	r, err := defaultCalculator().Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.OverallAverage)
	assert.Empty(t, r.Categories)
	assert.Equal(t, 0, r.TotalCoefficient)
	assert.False(t, r.Graded)
}

func TestAssemble_OverallIsCoefficientWeighted(t *testing.T) {
	calc := defaultCalculator()
	fr := testSubject("francais", "MATIERES LITTERAIRES", intPtr(3))
	math := testSubject("math", "MATIERES SCIENTIFIQUES", intPtr(4))
	eps := testSubject("eps", "AUTRES", nil) // 未设置系数按 1

	r, err := calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", fr, 10),
		uniform("s1", "p1", math, 15),
		uniform("s1", "p1", eps, 18),
	})
	require.NoError(t, err)

	// (10*3 + 15*4 + 18*1) / 8
	assert.Equal(t, 8, r.TotalCoefficient)
	assert.InDelta(t, 108.0, r.TotalWeighted, 1e-9)
	assert.InDelta(t, 13.5, r.OverallAverage, 1e-9)
}

func TestAssemble_ZeroCoefficientExcluded(t *testing.T) {
	calc := defaultCalculator()
	math := testSubject("math", "SCI", intPtr(2))
	option := testSubject("option", "SCI", intPtr(0))

	r, err := calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", math, 12),
		uniform("s1", "p1", option, 20),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, r.TotalCoefficient)
	assert.InDelta(t, 12.0, r.OverallAverage, 1e-9)
	require.Len(t, r.Categories[0].Rows, 2)
	assert.Equal(t, 0.0, r.Categories[0].Rows[1].Weighted)
}

func TestAssemble_OnlyZeroCoefficientSubjects(t *testing.T) {
	option := testSubject("option", "SCI", intPtr(0))

	r, err := defaultCalculator().Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", option, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.OverallAverage)
	assert.True(t, r.Graded)
}

func TestAssemble_CategoryGroupingKeepsSuppliedOrder(t *testing.T) {
	calc, err := NewCalculatorWith(DefaultWeights(), CategoryOrder{"MATIERES LITTERAIRES", "MATIERES SCIENTIFIQUES"})
	require.NoError(t, err)

	svt := testSubject("svt", "MATIERES SCIENTIFIQUES", intPtr(2))
	anglais := testSubject("anglais", "MATIERES LITTERAIRES", intPtr(2))
	math := testSubject("math", "MATIERES SCIENTIFIQUES", intPtr(4))
	dessin := testSubject("dessin", "AUTRES", intPtr(1))
	francais := testSubject("francais", "MATIERES LITTERAIRES", intPtr(3))

	r, err := calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", svt, 11),
		uniform("s1", "p1", dessin, 14),
		uniform("s1", "p1", anglais, 12),
		uniform("s1", "p1", math, 13),
		uniform("s1", "p1", francais, 9),
	})
	require.NoError(t, err)

	require.Len(t, r.Categories, 3)
	assert.Equal(t, "MATIERES LITTERAIRES", r.Categories[0].Label)
	assert.Equal(t, "MATIERES SCIENTIFIQUES", r.Categories[1].Label)
	assert.Equal(t, "AUTRES", r.Categories[2].Label)

	names := func(g CategoryGroup) []string {
		var out []string
		for _, row := range g.Rows {
			out = append(out, row.SubjectName)
		}
		return out
	}
	assert.Equal(t, []string{"anglais", "francais"}, names(r.Categories[0]))
	assert.Equal(t, []string{"svt", "math"}, names(r.Categories[1]))
	assert.Equal(t, 5, r.Categories[0].TotalCoefficient)
	assert.InDelta(t, 12*2+9*3, r.Categories[0].TotalWeighted, 1e-9)
}

func TestAssemble_StudentNotEnrolled(t *testing.T) {
	calc := defaultCalculator()

	_, err := calc.Assemble(testScope(), testStudent("s1"), nil, testPeriod("p1", 1), nil)
	assert.ErrorIs(t, err, ErrStudentNotEnrolled)

	lastYear := &model.Enrollment{StudentID: "s1", ClassID: testClass, AcademicYearID: "year-2024"}
	_, err = calc.Assemble(testScope(), testStudent("s1"), lastYear, testPeriod("p1", 1), nil)
	assert.ErrorIs(t, err, ErrStudentNotEnrolled)

	_, err = calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s2"), testPeriod("p1", 1), nil)
	assert.ErrorIs(t, err, ErrStudentNotEnrolled)
}

func TestAssemble_RejectsOutOfScopeData(t *testing.T) {
	calc := defaultCalculator()
	math := testSubject("math", "SCI", intPtr(1))

	// 其他学年的学段
	stale := model.Period{PeriodID: "p-old", AcademicYearID: "year-2024", Order: 1}
	_, err := calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), stale, nil)
	assert.ErrorIs(t, err, ErrPeriodYearMismatch)

	// 成绩属于其他学段
	_, err = calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p2", math, 12),
	})
	assert.ErrorIs(t, err, ErrScopeViolation)

	// 科目属于其他学校
	foreign := math
	foreign.EstablishmentID = "est-2"
	_, err = calc.Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", foreign, 12),
	})
	assert.ErrorIs(t, err, ErrScopeViolation)

	// 学生属于其他学校
	st := testStudent("s1")
	st.EstablishmentID = "est-2"
	_, err = calc.Assemble(testScope(), st, testEnrollment("s1"), testPeriod("p1", 1), nil)
	assert.ErrorIs(t, err, ErrScopeViolation)
}

func TestAssemble_DuplicateSubject(t *testing.T) {
	math := testSubject("math", "SCI", intPtr(1))
	dup := uniform("s1", "p1", math, 15)
	dup.Grade.GradeID = "other"

	_, err := defaultCalculator().Assemble(testScope(), testStudent("s1"), testEnrollment("s1"), testPeriod("p1", 1), []Entry{
		uniform("s1", "p1", math, 12),
		dup,
	})
	assert.ErrorIs(t, err, ErrDuplicateSubjectGrade)
}

func TestEffectiveCoefficient(t *testing.T) {
	assert.Equal(t, 1, EffectiveCoefficient(model.Subject{}))
	assert.Equal(t, 4, EffectiveCoefficient(model.Subject{Coefficient: intPtr(4)}))
	assert.Equal(t, 0, EffectiveCoefficient(model.Subject{Coefficient: intPtr(0)}))
	assert.Equal(t, 0, EffectiveCoefficient(model.Subject{Coefficient: intPtr(-2)}))
}

func TestNormalizeCategoryOrder(t *testing.T) {
	assert.Equal(t, CategoryOrder{"A", "B"}, NormalizeCategoryOrder([]string{"A", "", "B", "A"}))
}

func TestNormalizeCategoryOrder_TrimsWhitespace(t *testing.T) {
	got := NormalizeCategoryOrder([]string{" SCIENCES ", " ", "\tLETTRES", "SCIENCES"})
	assert.Equal(t, CategoryOrder{"SCIENCES", "LETTRES"}, got)
}
