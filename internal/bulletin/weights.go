package bulletin

import (
	"fmt"
	"math"

	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// 默认权重：interro 1, devoir 1, compo 2（除数 4）
const (
	DefaultInterroWeight = 1.0
	DefaultDevoirWeight  = 1.0
	DefaultCompoWeight   = 2.0
)

// Weights 科目平均分的三项权重
type Weights struct {
	Interro float64
	Devoir  float64
	Compo   float64
}

// DefaultWeights 默认权重
func DefaultWeights() Weights {
	return Weights{Interro: DefaultInterroWeight, Devoir: DefaultDevoirWeight, Compo: DefaultCompoWeight}
}

// NewWeights 构造并校验权重：每项非负且总和为正
func NewWeights(interro, devoir, compo float64) (Weights, error) {
	w := Weights{Interro: interro, Devoir: devoir, Compo: compo}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// WeightsFromConfig 从学校配置读取权重，缺省项使用默认值
func WeightsFromConfig(cfg model.GradingConfig) (Weights, error) {
	w := DefaultWeights()
	if cfg.Interro != nil {
		w.Interro = *cfg.Interro
	}
	if cfg.Devoir != nil {
		w.Devoir = *cfg.Devoir
	}
	if cfg.Compo != nil {
		w.Compo = *cfg.Compo
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate 校验权重
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"interro", w.Interro},
		{"devoir", w.Devoir},
		{"compo", w.Compo},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, f.name, f.value)
		}
	}
	if w.Divisor() <= 0 {
		return fmt.Errorf("%w: 权重总和必须大于 0", ErrInvalidWeights)
	}
	return nil
}

// Divisor 权重总和
func (w Weights) Divisor() float64 {
	return w.Interro + w.Devoir + w.Compo
}

// SubjectAverage 计算单科平均分。
//
// 未录入的分项按 0 分计算，且其权重仍计入除数：
// 尚无作文(compo)成绩的学生按 0 分显示当前水平，而不是只平均已录入的分项。
// 结果截断到 [0, 20]。
func (w Weights) SubjectAverage(g model.Grade) float64 {
	div := w.Divisor()
	if div <= 0 {
		return 0
	}
	sum := g.InterroAvg.Points()*w.Interro +
		g.DevoirAvg.Points()*w.Devoir +
		g.CompoGrade.Points()*w.Compo
	avg := sum / div
	switch {
	case avg < model.MinScore:
		return model.MinScore
	case avg > model.MaxScore:
		return model.MaxScore
	}
	return avg
}
