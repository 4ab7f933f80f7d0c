package bulletin

import (
	"fmt"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

const (
	testEstID  = "est-1"
	testYearID = "year-2025"
	testClass  = "class-6a"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func testScope() Scope {
	return Scope{
		EstablishmentID: testEstID,
		PeriodType:      model.PeriodTypeTrimestre,
		Year:            model.AcademicYear{AcademicYearID: testYearID, EstablishmentID: testEstID, Label: "2025-2026", IsActive: true},
	}
}

func testPeriod(id string, order int) model.Period {
	return model.Period{PeriodID: id, AcademicYearID: testYearID, Name: fmt.Sprintf("Trimestre %d", order), Order: order}
}

func testStudent(id string) model.Student {
	return model.Student{StudentID: id, EstablishmentID: testEstID, LastName: "Nom-" + id, FirstName: "Prenom"}
}

func testEnrollment(studentID string) *model.Enrollment {
	return &model.Enrollment{EnrollmentID: "enr-" + studentID, StudentID: studentID, ClassID: testClass, AcademicYearID: testYearID}
}

func testSubject(id, category string, coef *int) model.Subject {
	return model.Subject{SubjectID: id, EstablishmentID: testEstID, Name: id, Category: category, Coefficient: coef}
}

func entry(studentID, periodID string, sub model.Subject, interro, devoir, compo model.Score) Entry {
	return Entry{
		Grade: model.Grade{
			GradeID:    studentID + "-" + sub.SubjectID + "-" + periodID,
			StudentID:  studentID,
			SubjectID:  sub.SubjectID,
			PeriodID:   periodID,
			InterroAvg: interro,
			DevoirAvg:  devoir,
			CompoGrade: compo,
		},
		Subject: sub,
	}
}

// uniform 三项同分，单科平均即为该分数
func uniform(studentID, periodID string, sub model.Subject, v float64) Entry {
	return entry(studentID, periodID, sub, model.Present(v), model.Present(v), model.Present(v))
}

func defaultCalculator() *Calculator {
	c, err := NewCalculator(model.GradingConfig{})
	if err != nil {
		panic(err)
	}
	return c
}

func reportWithAverage(studentID string, avg float64) Report {
	return Report{
		Student:        testStudent(studentID),
		Period:         testPeriod("p1", 1),
		ClassID:        testClass,
		OverallAverage: avg,
		Graded:         true,
	}
}
