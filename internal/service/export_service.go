package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/wilfreed8/EtuManager-sub001/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出班级学段成绩汇总（班会用），PDF 成绩单由渲染服务负责
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 与成绩单接口共用同一批量计算，名次与统计完全一致
type ExportService interface {
	// ExportClassResults 导出班级学段成绩汇总为 Excel
	ExportClassResults(ctx context.Context, establishmentID, classID, periodID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	loader *batchLoader
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, workers int, logger *zap.Logger) ExportService {
	return &exportService{loader: newBatchLoader(repo, workers, logger), logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportClassResults 导出班级成绩汇总
// ═══════════════════════════════════════════════════════════
//
// 输出格式（单个 Sheet）：
//   - 标题行：学校 / 班级 / 学段 / 学年
//   - 表头：名次 | 学号 | 姓名 | 科目1 .. 科目N | 总系数 | 总平均 | 决定
//   - 科目列顺序取名册中首次出现的顺序（按分组展示顺序）
//   - 末尾统计块：人数、最高、最低、班级平均
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportClassResults(ctx context.Context, establishmentID, classID, periodID string) (*bytes.Buffer, string, error) {
	var batch *classBatch
	err := s.loader.inSnapshot(ctx, func(repo *repository.Repository) error {
		var err error
		batch, err = s.loader.loadClass(ctx, repo, establishmentID, classID, periodID)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	bulletins, err := batch.bulletins()
	if err != nil {
		return nil, "", err
	}

	// 1. 收集科目列
	type subjectCol struct {
		id   string
		name string
	}
	var subjects []subjectCol
	seen := make(map[string]bool)
	for _, b := range bulletins {
		for _, g := range b.Report.Categories {
			for _, row := range g.Rows {
				if !seen[row.SubjectID] {
					seen[row.SubjectID] = true
					subjects = append(subjects, subjectCol{id: row.SubjectID, name: row.SubjectName})
				}
			}
		}
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Résultats"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	lastCol := 3 + len(subjects) + 3 // 名次、学号、姓名 + 科目 + 总系数、总平均、决定

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 28)
	if len(subjects) > 0 {
		f.SetColWidth(sheetName, colName(3), colName(2+len(subjects)), 12)
	}
	f.SetColWidth(sheetName, colName(lastCol-3), colName(lastCol-1), 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	scoreStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00

	// 标题行
	title := fmt.Sprintf("%s / %s / %s / %s",
		batch.est.Name, batch.class.Name, batch.period.Name, batch.scope.Year.Label)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", cell(colName(lastCol-1), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	headers := []string{"Rang", "Matricule", "Nom et prénoms"}
	for _, sc := range subjects {
		headers = append(headers, sc.name)
	}
	headers = append(headers, "Total coef.", "Moyenne", "Décision")
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), row), h)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(colName(lastCol-1), row), headerStyle)

	// 数据行（按名次）
	row = 3
	for _, b := range bulletins {
		averages := make(map[string]float64)
		for _, g := range b.Report.Categories {
			for _, r := range g.Rows {
				averages[r.SubjectID] = r.Average
			}
		}

		rank := fmt.Sprintf("%d", b.Position.Rank)
		if b.Position.Tied {
			rank += " ex"
		}
		f.SetCellValue(sheetName, cell("A", row), rank)
		f.SetCellValue(sheetName, cell("B", row), b.Report.Student.Matricule)
		f.SetCellValue(sheetName, cell("C", row), b.Report.Student.FullName())
		for i, sc := range subjects {
			col := colName(3 + i)
			if avg, ok := averages[sc.id]; ok {
				f.SetCellValue(sheetName, cell(col, row), round2(avg))
			} else {
				f.SetCellValue(sheetName, cell(col, row), "-")
			}
		}
		f.SetCellValue(sheetName, cell(colName(lastCol-3), row), b.Report.TotalCoefficient)
		f.SetCellValue(sheetName, cell(colName(lastCol-2), row), round2(b.Report.OverallAverage))
		f.SetCellValue(sheetName, cell(colName(lastCol-1), row), b.Decision.Label())
		row++
	}
	if row > 3 {
		f.SetCellStyle(sheetName, cell(colName(3), 3), cell(colName(lastCol-2), row-1), scoreStyle)
	}

	// 统计块
	row++
	writeStat(f, sheetName, row, "Effectif", float64(batch.ranking.Stats.Size))
	writeStat(f, sheetName, row+1, "Plus forte moyenne", round2(batch.ranking.Stats.Highest))
	writeStat(f, sheetName, row+2, "Plus faible moyenne", round2(batch.ranking.Stats.Lowest))
	writeStat(f, sheetName, row+3, "Moyenne de la classe", round2(batch.ranking.Stats.Average))

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("resultats_%s_%s.xlsx", batch.class.Name, batch.period.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeStat(f *excelize.File, sheet string, row int, label string, value float64) {
	f.SetCellValue(sheet, cell("B", row), label)
	f.SetCellValue(sheet, cell("C", row), value)
}

// colName 0 起始的列号转列名（0 → A）
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
