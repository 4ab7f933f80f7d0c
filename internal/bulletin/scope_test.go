package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

func TestResolveScope_SelectedOverridesActive(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID, SelectedAcademicYearID: strPtr("y-old")}
	years := []model.AcademicYear{
		{AcademicYearID: "y-old", EstablishmentID: testEstID, Label: "2024-2025"},
		{AcademicYearID: "y-new", EstablishmentID: testEstID, Label: "2025-2026", IsActive: true},
	}

	scope, err := ResolveScope(est, years)
	require.NoError(t, err)
	assert.Equal(t, "y-old", scope.YearID())
	assert.Equal(t, testEstID, scope.EstablishmentID)
}

func TestResolveScope_FallsBackToActive(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID}
	years := []model.AcademicYear{
		{AcademicYearID: "y-old", EstablishmentID: testEstID},
		{AcademicYearID: "y-new", EstablishmentID: testEstID, IsActive: true},
	}

	scope, err := ResolveScope(est, years)
	require.NoError(t, err)
	assert.Equal(t, "y-new", scope.YearID())
}

func TestResolveScope_NoEffectiveYear(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID}

	_, err := ResolveScope(est, []model.AcademicYear{{AcademicYearID: "y", EstablishmentID: testEstID}})
	assert.ErrorIs(t, err, ErrNoEffectiveYear)

	_, err = ResolveScope(est, nil)
	assert.ErrorIs(t, err, ErrNoEffectiveYear)
}

func TestResolveScope_IgnoresOtherEstablishments(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID}
	years := []model.AcademicYear{{AcademicYearID: "foreign", EstablishmentID: "est-2", IsActive: true}}

	_, err := ResolveScope(est, years)
	assert.ErrorIs(t, err, ErrNoEffectiveYear)
}

func TestResolveScope_SelectedForeignYearDoesNotFallBack(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID, SelectedAcademicYearID: strPtr("foreign")}
	years := []model.AcademicYear{
		{AcademicYearID: "foreign", EstablishmentID: "est-2"},
		{AcademicYearID: "mine", EstablishmentID: testEstID, IsActive: true},
	}

	_, err := ResolveScope(est, years)
	assert.ErrorIs(t, err, ErrNoEffectiveYear)
}

func TestResolveScope_MultipleActive(t *testing.T) {
	est := model.Establishment{EstablishmentID: testEstID}
	years := []model.AcademicYear{
		{AcademicYearID: "a", EstablishmentID: testEstID, IsActive: true},
		{AcademicYearID: "b", EstablishmentID: testEstID, IsActive: true},
	}

	_, err := ResolveScope(est, years)
	assert.ErrorIs(t, err, ErrMultipleActiveYears)
}

func TestScope_ValidatePeriod(t *testing.T) {
	scope := testScope()

	assert.NoError(t, scope.ValidatePeriod(testPeriod("p1", 1)))

	stale := model.Period{PeriodID: "p-old", AcademicYearID: "year-2024", Order: 3}
	assert.ErrorIs(t, scope.ValidatePeriod(stale), ErrPeriodYearMismatch)
}

func TestScope_ValidateEnrollment(t *testing.T) {
	scope := testScope()

	assert.NoError(t, scope.ValidateEnrollment(testEnrollment("s1")))
	assert.ErrorIs(t, scope.ValidateEnrollment(nil), ErrStudentNotEnrolled)
	assert.ErrorIs(t, scope.ValidateEnrollment(&model.Enrollment{StudentID: "s1", AcademicYearID: "year-2024"}), ErrStudentNotEnrolled)
}
