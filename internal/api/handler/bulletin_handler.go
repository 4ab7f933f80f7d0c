package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
	"github.com/wilfreed8/EtuManager-sub001/internal/service"
	"github.com/wilfreed8/EtuManager-sub001/pkg/response"
)

// BulletinHandler 成绩单与排名 HTTP 处理器
type BulletinHandler struct {
	bulletinSvc service.BulletinService
}

// NewBulletinHandler 创建 BulletinHandler
func NewBulletinHandler(bulletinSvc service.BulletinService) *BulletinHandler {
	return &BulletinHandler{bulletinSvc: bulletinSvc}
}

// GetStudentBulletin 单个学生的学段成绩单
// GET /api/v1/bulletins/students/:id?period_id=xxx
func (h *BulletinHandler) GetStudentBulletin(c *gin.Context) {
	estID, uri, q, ok := bindBulletinRequest(c)
	if !ok {
		return
	}

	resp, err := h.bulletinSvc.StudentBulletin(c.Request.Context(), estID, uri.ID, q.PeriodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// GetClassBulletins 班级全部学生的学段成绩单（按名次排列）
// GET /api/v1/bulletins/classes/:id?period_id=xxx
func (h *BulletinHandler) GetClassBulletins(c *gin.Context) {
	estID, uri, q, ok := bindBulletinRequest(c)
	if !ok {
		return
	}

	resp, err := h.bulletinSvc.ClassBulletins(c.Request.Context(), estID, uri.ID, q.PeriodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// GetClassRanking 班级学段排名
// GET /api/v1/rankings/classes/:id?period_id=xxx
func (h *BulletinHandler) GetClassRanking(c *gin.Context) {
	estID, uri, q, ok := bindBulletinRequest(c)
	if !ok {
		return
	}

	resp, err := h.bulletinSvc.ClassRanking(c.Request.Context(), estID, uri.ID, q.PeriodID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// bindBulletinRequest 绑定 :id 与 period_id，并读取学校 ID；失败时已写入响应
func bindBulletinRequest(c *gin.Context) (string, idURI, dto.PeriodQuery, bool) {
	var uri idURI
	var q dto.PeriodQuery
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return "", uri, q, false
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "period_id 无效")
		return "", uri, q, false
	}
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return "", uri, q, false
	}
	return estID, uri, q, true
}
