package service

import (
	"github.com/wilfreed8/EtuManager-sub001/internal/bulletin"
	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
	"github.com/wilfreed8/EtuManager-sub001/internal/model"
)

// 引擎保留原始浮点数，只在输出时保留两位小数；与升留级判定使用同一舍入

func round2(v float64) float64 {
	return bulletin.DisplayScore(v)
}

func scorePtr(s model.Score) *float64 {
	v, ok := s.Raw()
	if !ok {
		return nil
	}
	r := round2(v)
	return &r
}

func toBulletinResponse(b bulletin.Bulletin) dto.BulletinResponse {
	r := b.Report
	resp := dto.BulletinResponse{
		EstablishmentName: b.EstablishmentName,
		AcademicYear:      b.YearLabel,
		Period:            toPeriodResponse(&r.Period),
		Class:             toClassBriefResponse(&b.Class),
		Student:           toStudentBriefResponse(r.Student),
		Categories:        make([]dto.CategoryGroupResponse, 0, len(r.Categories)),
		TotalCoefficient:  r.TotalCoefficient,
		TotalWeighted:     round2(r.TotalWeighted),
		OverallAverage:    round2(r.OverallAverage),
		Graded:            r.Graded,
		Rank:              b.Position.Rank,
		Tied:              b.Position.Tied,
		Statistics:        toClassStatisticsResponse(b.Stats),
		History:           make([]dto.HistoryEntryResponse, 0, len(b.History)),
		Decision:          toDecisionResponse(b.Decision),
	}

	for _, g := range r.Categories {
		group := dto.CategoryGroupResponse{
			Label:            g.Label,
			Subjects:         make([]dto.SubjectRowResponse, 0, len(g.Rows)),
			TotalCoefficient: g.TotalCoefficient,
			TotalWeighted:    round2(g.TotalWeighted),
		}
		for _, row := range g.Rows {
			group.Subjects = append(group.Subjects, dto.SubjectRowResponse{
				SubjectID:   row.SubjectID,
				SubjectName: row.SubjectName,
				Coefficient: row.Coefficient,
				Interro:     scorePtr(row.Interro),
				Devoir:      scorePtr(row.Devoir),
				Compo:       scorePtr(row.Compo),
				Average:     round2(row.Average),
				Weighted:    round2(row.Weighted),
			})
		}
		resp.Categories = append(resp.Categories, group)
	}

	for _, h := range b.History {
		entry := dto.HistoryEntryResponse{PeriodID: h.PeriodID, PeriodName: h.PeriodName, Order: h.Order}
		if h.Average != nil {
			avg := round2(*h.Average)
			entry.Average = &avg
		}
		resp.History = append(resp.History, entry)
	}

	return resp
}

func toClassBriefResponse(c *model.SchoolClass) dto.ClassBriefResponse {
	return dto.ClassBriefResponse{ID: c.ClassID, Name: c.Name, Level: c.Level}
}

func toStudentBriefResponse(s model.Student) dto.StudentBriefResponse {
	resp := dto.StudentBriefResponse{
		ID:        s.StudentID,
		Matricule: s.Matricule,
		FullName:  s.FullName(),
		Gender:    s.Gender,
	}
	if s.BirthDate != nil {
		resp.BirthDate = s.BirthDate.Format("2006-01-02")
	}
	return resp
}

func toClassStatisticsResponse(st bulletin.ClassStatistics) dto.ClassStatisticsResponse {
	return dto.ClassStatisticsResponse{
		Size:    st.Size,
		Highest: round2(st.Highest),
		Lowest:  round2(st.Lowest),
		Average: round2(st.Average),
	}
}

func toDecisionResponse(d bulletin.Decision) dto.DecisionResponse {
	return dto.DecisionResponse{Code: string(d), Label: d.Label()}
}
