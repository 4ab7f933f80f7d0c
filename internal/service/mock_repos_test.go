package service

import (
	"context"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
	"github.com/wilfreed8/EtuManager-sub001/internal/repository"
)

// ── Mock EstablishmentRepository ──

type mockEstablishmentRepo struct {
	ests map[string]*model.Establishment
}

func newMockEstablishmentRepo() *mockEstablishmentRepo {
	return &mockEstablishmentRepo{ests: make(map[string]*model.Establishment)}
}

func (m *mockEstablishmentRepo) GetByID(_ context.Context, id string) (*model.Establishment, error) {
	if e, ok := m.ests[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEstablishmentRepo) UpdateSelectedYear(_ context.Context, id string, yearID *string, _ string) error {
	if e, ok := m.ests[id]; ok {
		e.SelectedAcademicYearID = yearID
	}
	return nil
}

func (m *mockEstablishmentRepo) UpdateGradingConfig(_ context.Context, id string, cfg model.GradingConfig, _ string) error {
	if e, ok := m.ests[id]; ok {
		e.GradingConfig = datatypes.NewJSONType(cfg)
	}
	return nil
}

// ── Mock AcademicYearRepository ──

type mockAcademicYearRepo struct {
	years map[string]*model.AcademicYear
}

func newMockAcademicYearRepo() *mockAcademicYearRepo {
	return &mockAcademicYearRepo{years: make(map[string]*model.AcademicYear)}
}

func (m *mockAcademicYearRepo) GetByID(_ context.Context, establishmentID, id string) (*model.AcademicYear, error) {
	if y, ok := m.years[id]; ok && y.EstablishmentID == establishmentID {
		cp := *y
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) ListByEstablishment(_ context.Context, establishmentID string) ([]model.AcademicYear, error) {
	var result []model.AcademicYear
	for _, y := range m.years {
		if y.EstablishmentID == establishmentID {
			result = append(result, *y)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Label > result[j].Label })
	return result, nil
}

func (m *mockAcademicYearRepo) Update(_ context.Context, year *model.AcademicYear) error {
	cp := *year
	m.years[year.AcademicYearID] = &cp
	return nil
}

func (m *mockAcademicYearRepo) ClearActive(_ context.Context, establishmentID string) error {
	for _, y := range m.years {
		if y.EstablishmentID == establishmentID {
			y.IsActive = false
		}
	}
	return nil
}

// ── Mock PeriodRepository ──

type mockPeriodRepo struct {
	periods map[string]*model.Period
}

func newMockPeriodRepo() *mockPeriodRepo {
	return &mockPeriodRepo{periods: make(map[string]*model.Period)}
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	if p, ok := m.periods[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) ListByAcademicYear(_ context.Context, academicYearID string) ([]model.Period, error) {
	var result []model.Period
	for _, p := range m.periods {
		if p.AcademicYearID == academicYearID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) GetByID(_ context.Context, establishmentID, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok && s.EstablishmentID == establishmentID {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.SchoolClass
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.SchoolClass)}
}

func (m *mockClassRepo) GetByID(_ context.Context, establishmentID, id string) (*model.SchoolClass, error) {
	if c, ok := m.classes[id]; ok && c.EstablishmentID == establishmentID {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock EnrollmentRepository ──

// enrollments 按插入顺序保存，模拟按注册先后排序
type mockEnrollmentRepo struct {
	enrollments []model.Enrollment
	students    *mockStudentRepo
}

func newMockEnrollmentRepo(students *mockStudentRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{students: students}
}

func (m *mockEnrollmentRepo) GetByStudentAndYear(_ context.Context, studentID, academicYearID string) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.AcademicYearID == academicYearID {
			cp := e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) ListByClassAndYear(_ context.Context, classID, academicYearID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.ClassID != classID || e.AcademicYearID != academicYearID {
			continue
		}
		if s, ok := m.students.students[e.StudentID]; ok {
			st := *s
			e.Student = &st
		}
		result = append(result, e)
	}
	return result, nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	grades   []model.Grade
	subjects map[string]*model.Subject
	calls    int
	err      error
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockGradeRepo) ListByPeriodsAndStudents(_ context.Context, periodIDs, studentIDs []string) ([]model.Grade, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	periods := toSet(periodIDs)
	students := toSet(studentIDs)

	var result []model.Grade
	for _, g := range m.grades {
		if !periods[g.PeriodID] || !students[g.StudentID] {
			continue
		}
		if sub, ok := m.subjects[g.SubjectID]; ok {
			s := *sub
			g.Subject = &s
		}
		result = append(result, g)
	}
	return result, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// ── 测试数据集 ──

// testSchool 一所学校的完整内存数据
type testSchool struct {
	repo        *repository.Repository
	ests        *mockEstablishmentRepo
	years       *mockAcademicYearRepo
	periods     *mockPeriodRepo
	students    *mockStudentRepo
	classes     *mockClassRepo
	enrollments *mockEnrollmentRepo
	grades      *mockGradeRepo
}

const (
	testEstID     = "est-1"
	testYearPrev  = "year-2024"
	testYearCur   = "year-2025"
	testPeriodT1  = "p-t1"
	testPeriodT2  = "p-t2"
	testPeriodT3  = "p-t3"
	testPeriodOld = "p-2024-t1"
	testClassID   = "class-6a"
	testEmptyID   = "class-6b"
	testMath      = "sub-math"
	testFrench    = "sub-french"
	testSport     = "sub-sport"
)

func intPtr(v int) *int { return &v }

func grade(studentID, subjectID, periodID string, interro, devoir, compo model.Score) model.Grade {
	return model.Grade{
		GradeID:    studentID + "/" + subjectID + "/" + periodID,
		StudentID:  studentID,
		SubjectID:  subjectID,
		PeriodID:   periodID,
		InterroAvg: interro,
		DevoirAvg:  devoir,
		CompoGrade: compo,
	}
}

func all(v float64) (model.Score, model.Score, model.Score) {
	return model.Present(v), model.Present(v), model.Present(v)
}

// newTestSchool 构造测试学校：
//
//	学年 2024（未激活）与 2025（激活）；2025 有 T1、T2、T3 三个学段
//	6eme A：s1、s2、s3（按此顺序注册）；6eme B 无学生
//	s4 仅在 2024 学年注册，但 2025 学年 T2 存在遗留的满分成绩（不得进入排名与统计）
//	科目：数学 系数 4、法语 系数 3、体育 未设置系数（按 1）
//
// T2 总平均：s1 = 12，s2 = 10，s3 = 14.25
func newTestSchool() *testSchool {
	ts := &testSchool{
		ests:     newMockEstablishmentRepo(),
		years:    newMockAcademicYearRepo(),
		periods:  newMockPeriodRepo(),
		students: newMockStudentRepo(),
		classes:  newMockClassRepo(),
		grades:   newMockGradeRepo(),
	}
	ts.enrollments = newMockEnrollmentRepo(ts.students)

	ts.ests.ests[testEstID] = &model.Establishment{
		EstablishmentID: testEstID,
		Name:            "CEG Lomé",
		PeriodType:      model.PeriodTypeTrimestre,
	}
	ts.ests.ests["est-2"] = &model.Establishment{EstablishmentID: "est-2", Name: "Autre école"}

	ts.years.years[testYearPrev] = &model.AcademicYear{AcademicYearID: testYearPrev, EstablishmentID: testEstID, Label: "2024-2025"}
	ts.years.years[testYearCur] = &model.AcademicYear{AcademicYearID: testYearCur, EstablishmentID: testEstID, Label: "2025-2026", IsActive: true}
	ts.years.years["year-other"] = &model.AcademicYear{AcademicYearID: "year-other", EstablishmentID: "est-2", Label: "2025-2026", IsActive: true}

	ts.periods.periods[testPeriodT1] = &model.Period{PeriodID: testPeriodT1, AcademicYearID: testYearCur, Name: "1er Trimestre", Order: 1}
	ts.periods.periods[testPeriodT2] = &model.Period{PeriodID: testPeriodT2, AcademicYearID: testYearCur, Name: "2e Trimestre", Order: 2, IsActive: true}
	ts.periods.periods[testPeriodT3] = &model.Period{PeriodID: testPeriodT3, AcademicYearID: testYearCur, Name: "3e Trimestre", Order: 3}
	ts.periods.periods[testPeriodOld] = &model.Period{PeriodID: testPeriodOld, AcademicYearID: testYearPrev, Name: "1er Trimestre", Order: 1}

	ts.classes.classes[testClassID] = &model.SchoolClass{ClassID: testClassID, EstablishmentID: testEstID, Name: "6eme A", Level: "6eme"}
	ts.classes.classes[testEmptyID] = &model.SchoolClass{ClassID: testEmptyID, EstablishmentID: testEstID, Name: "6eme B", Level: "6eme"}

	for _, st := range []model.Student{
		{StudentID: "s1", EstablishmentID: testEstID, Matricule: "M001", LastName: "AGBEKO", FirstName: "Kossi", Gender: "M"},
		{StudentID: "s2", EstablishmentID: testEstID, Matricule: "M002", LastName: "MENSAH", FirstName: "Afi", Gender: "F"},
		{StudentID: "s3", EstablishmentID: testEstID, Matricule: "M003", LastName: "KODJO", FirstName: "Ama", Gender: "F"},
		{StudentID: "s4", EstablishmentID: testEstID, Matricule: "M004", LastName: "ADJO", FirstName: "Yao", Gender: "M"},
	} {
		s := st
		ts.students.students[s.StudentID] = &s
	}

	ts.enrollments.enrollments = []model.Enrollment{
		{EnrollmentID: "e1", StudentID: "s1", ClassID: testClassID, AcademicYearID: testYearCur},
		{EnrollmentID: "e2", StudentID: "s2", ClassID: testClassID, AcademicYearID: testYearCur},
		{EnrollmentID: "e3", StudentID: "s3", ClassID: testClassID, AcademicYearID: testYearCur},
		{EnrollmentID: "e4", StudentID: "s4", ClassID: testClassID, AcademicYearID: testYearPrev},
	}

	ts.grades.subjects[testMath] = &model.Subject{SubjectID: testMath, EstablishmentID: testEstID, Name: "Mathématiques", Category: "MATIERES SCIENTIFIQUES", Coefficient: intPtr(4)}
	ts.grades.subjects[testFrench] = &model.Subject{SubjectID: testFrench, EstablishmentID: testEstID, Name: "Français", Category: "MATIERES LITTERAIRES", Coefficient: intPtr(3)}
	ts.grades.subjects[testSport] = &model.Subject{SubjectID: testSport, EstablishmentID: testEstID, Name: "EPS", Category: "AUTRES"}

	ts.grades.grades = []model.Grade{
		// s1：数学 14.5，法语 10，体育 compo 缺考 → 8；总平均 96/8 = 12
		grade("s1", testMath, testPeriodT2, model.Present(12), model.Present(14), model.Present(16)),
		gradeAll("s1", testFrench, testPeriodT2, 10),
		grade("s1", testSport, testPeriodT2, model.Present(16), model.Present(16), model.Absent()),
		// s2：80/8 = 10
		gradeAll("s2", testMath, testPeriodT2, 8),
		gradeAll("s2", testFrench, testPeriodT2, 12),
		gradeAll("s2", testSport, testPeriodT2, 12),
		// s3：114/8 = 14.25
		gradeAll("s3", testMath, testPeriodT2, 14),
		gradeAll("s3", testFrench, testPeriodT2, 14),
		gradeAll("s3", testSport, testPeriodT2, 16),
		// s4 不在 2025 名册中的遗留成绩
		gradeAll("s4", testMath, testPeriodT2, 20),
		gradeAll("s4", testFrench, testPeriodT2, 20),
		gradeAll("s4", testSport, testPeriodT2, 20),
		// 历史与未来学段
		gradeAll("s1", testMath, testPeriodT1, 10),
		gradeAll("s1", testMath, testPeriodT3, 20),
	}

	ts.repo = &repository.Repository{
		Establishment: ts.ests,
		AcademicYear:  ts.years,
		Period:        ts.periods,
		Student:       ts.students,
		Class:         ts.classes,
		Enrollment:    ts.enrollments,
		Grade:         ts.grades,
	}
	return ts
}

func gradeAll(studentID, subjectID, periodID string, v float64) model.Grade {
	i, d, c := all(v)
	return grade(studentID, subjectID, periodID, i, d, c)
}

func jsonConfig(cfg model.GradingConfig) datatypes.JSONType[model.GradingConfig] {
	return datatypes.NewJSONType(cfg)
}
