package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

func TestSubjectAverage_DefaultWeights(t *testing.T) {
	g := model.Grade{InterroAvg: model.Present(12), DevoirAvg: model.Present(14), CompoGrade: model.Present(16)}

	assert.InDelta(t, 14.5, DefaultWeights().SubjectAverage(g), 1e-9)
}

func TestSubjectAverage_AbsentComponentCountsAsZero(t *testing.T) {
	// compo 未录入：(12 + 14 + 0*2) / 4，除数仍为 4
	g := model.Grade{InterroAvg: model.Present(12), DevoirAvg: model.Present(14), CompoGrade: model.Absent()}

	assert.InDelta(t, 6.5, DefaultWeights().SubjectAverage(g), 1e-9)
}

func TestSubjectAverage_AllAbsent(t *testing.T) {
	assert.Equal(t, 0.0, DefaultWeights().SubjectAverage(model.Grade{}))
}

func TestSubjectAverage_AlwaysWithinScale(t *testing.T) {
	cases := []model.Grade{
		{InterroAvg: model.Present(25), DevoirAvg: model.Present(30), CompoGrade: model.Present(40)},
		{InterroAvg: model.Present(-5), DevoirAvg: model.Absent(), CompoGrade: model.Present(-1)},
		{InterroAvg: model.Present(20), DevoirAvg: model.Present(20), CompoGrade: model.Present(20)},
		{InterroAvg: model.Absent(), DevoirAvg: model.Absent(), CompoGrade: model.Present(0)},
	}
	weights := []Weights{DefaultWeights(), {Interro: 3, Devoir: 0, Compo: 1}, {Interro: 0.5, Devoir: 0.5, Compo: 0}}

	for _, w := range weights {
		for _, g := range cases {
			avg := w.SubjectAverage(g)
			assert.GreaterOrEqual(t, avg, 0.0)
			assert.LessOrEqual(t, avg, 20.0)
		}
	}
}

func TestSubjectAverage_CustomWeights(t *testing.T) {
	w, err := NewWeights(1, 2, 3)
	require.NoError(t, err)

	g := model.Grade{InterroAvg: model.Present(10), DevoirAvg: model.Present(10), CompoGrade: model.Present(16)}
	// (10 + 20 + 48) / 6
	assert.InDelta(t, 13.0, w.SubjectAverage(g), 1e-9)
}

func TestNewWeights_Invalid(t *testing.T) {
	_, err := NewWeights(0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = NewWeights(-1, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestWeights_Validate_ReportsFirstInvalidInFixedOrder(t *testing.T) {
	// 多项无效时固定报告第一项，错误信息可复现
	for i := 0; i < 20; i++ {
		err := Weights{Interro: -1, Devoir: -2, Compo: -3}.Validate()
		require.ErrorIs(t, err, ErrInvalidWeights)
		assert.Contains(t, err.Error(), "interro=-1")
	}

	err := Weights{Interro: 1, Devoir: -2, Compo: -3}.Validate()
	assert.Contains(t, err.Error(), "devoir=-2")
}

func TestWeightsFromConfig(t *testing.T) {
	w, err := WeightsFromConfig(model.GradingConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights(), w)
	assert.Equal(t, 4.0, w.Divisor())

	w, err = WeightsFromConfig(model.GradingConfig{Compo: floatPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, Weights{Interro: 1, Devoir: 1, Compo: 3}, w)

	_, err = WeightsFromConfig(model.GradingConfig{Interro: floatPtr(0), Devoir: floatPtr(0), Compo: floatPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}
