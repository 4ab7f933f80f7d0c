package bulletin

import "math"

// PassThreshold 升级线（满分 20）
// TODO: 改为学校级配置项（grading_config.pass_threshold），目前各校统一为 10
const PassThreshold = 10.0

// Decision 升留级决定
type Decision string

const (
	DecisionAdmitted Decision = "admitted"
	DecisionFailed   Decision = "failed"
)

// DisplayScore 成绩单、排名与导出中显示的分数（保留两位小数）
func DisplayScore(v float64) float64 {
	return math.Round(v*100) / 100
}

// Decide 显示的总平均 >= 10 为升级，否则留级。
// 按显示值判定，9.996 显示为 10.00 时判为升级，决定与纸面分数一致。
func Decide(overallAverage float64) Decision {
	if DisplayScore(overallAverage) >= PassThreshold {
		return DecisionAdmitted
	}
	return DecisionFailed
}

// Label 成绩单上显示的文字
func (d Decision) Label() string {
	switch d {
	case DecisionAdmitted:
		return "Admis(e)"
	case DecisionFailed:
		return "Redouble"
	default:
		return string(d)
	}
}
