package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportClassResults 导出班级学段成绩汇总
// GET /api/v1/export/classes/:id/results?period_id=xxx
func (h *ExportHandler) ExportClassResults(c *gin.Context) {
	estID, uri, q, ok := bindBulletinRequest(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportClassResults(c.Request.Context(), estID, uri.ID, q.PeriodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.PathEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
