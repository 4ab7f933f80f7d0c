package dto

// ── 成绩单模块 DTO ──
// 分数统一保留两位小数；未录入的分项输出 null

// PeriodQuery 学段查询参数
type PeriodQuery struct {
	PeriodID string `form:"period_id" binding:"required,uuid"`
}

// ClassBriefResponse 班级简要信息
type ClassBriefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// StudentBriefResponse 学生简要信息
type StudentBriefResponse struct {
	ID        string `json:"id"`
	Matricule string `json:"matricule"`
	FullName  string `json:"full_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date,omitempty"`
}

// SubjectRowResponse 成绩单科目行
type SubjectRowResponse struct {
	SubjectID   string   `json:"subject_id"`
	SubjectName string   `json:"subject_name"`
	Coefficient int      `json:"coefficient"`
	Interro     *float64 `json:"interro"`
	Devoir      *float64 `json:"devoir"`
	Compo       *float64 `json:"compo"`
	Average     float64  `json:"average"`
	Weighted    float64  `json:"weighted"`
}

// CategoryGroupResponse 科目分组
type CategoryGroupResponse struct {
	Label            string               `json:"label"`
	Subjects         []SubjectRowResponse `json:"subjects"`
	TotalCoefficient int                  `json:"total_coefficient"`
	TotalWeighted    float64              `json:"total_weighted"`
}

// HistoryEntryResponse 以往学段总平均；average 为 null 表示无成绩
type HistoryEntryResponse struct {
	PeriodID   string   `json:"period_id"`
	PeriodName string   `json:"period_name"`
	Order      int      `json:"order"`
	Average    *float64 `json:"average"`
}

// ClassStatisticsResponse 班级统计
type ClassStatisticsResponse struct {
	Size    int     `json:"size"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
	Average float64 `json:"average"`
}

// DecisionResponse 升留级决定
type DecisionResponse struct {
	Code  string `json:"code"` // admitted | failed
	Label string `json:"label"`
}

// BulletinResponse 单个学生的完整成绩单
type BulletinResponse struct {
	EstablishmentName string                  `json:"establishment_name"`
	AcademicYear      string                  `json:"academic_year"`
	Period            PeriodResponse          `json:"period"`
	Class             ClassBriefResponse      `json:"class"`
	Student           StudentBriefResponse    `json:"student"`
	Categories        []CategoryGroupResponse `json:"categories"`
	TotalCoefficient  int                     `json:"total_coefficient"`
	TotalWeighted     float64                 `json:"total_weighted"`
	OverallAverage    float64                 `json:"overall_average"`
	Graded            bool                    `json:"graded"`
	Rank              int                     `json:"rank"`
	Tied              bool                    `json:"tied"`
	Statistics        ClassStatisticsResponse `json:"statistics"`
	History           []HistoryEntryResponse  `json:"history"`
	Decision          DecisionResponse        `json:"decision"`
}

// ClassBulletinsResponse 班级批量成绩单（按名次排列）
type ClassBulletinsResponse struct {
	Class      ClassBriefResponse      `json:"class"`
	Period     PeriodResponse          `json:"period"`
	Statistics ClassStatisticsResponse `json:"statistics"`
	Bulletins  []BulletinResponse      `json:"bulletins"`
}

// RankingEntryResponse 排名表中的一行
type RankingEntryResponse struct {
	Rank           int              `json:"rank"`
	Tied           bool             `json:"tied"`
	StudentID      string           `json:"student_id"`
	Matricule      string           `json:"matricule"`
	FullName       string           `json:"full_name"`
	OverallAverage float64          `json:"overall_average"`
	Decision       DecisionResponse `json:"decision"`
}

// RankingResponse 班级排名
type RankingResponse struct {
	Class      ClassBriefResponse      `json:"class"`
	Period     PeriodResponse          `json:"period"`
	Statistics ClassStatisticsResponse `json:"statistics"`
	Positions  []RankingEntryResponse  `json:"positions"`
}
