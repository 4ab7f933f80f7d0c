package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/internal/service"
	"github.com/wilfreed8/EtuManager-sub001/pkg/response"
)

// idURI 路径参数 :id
type idURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ScopeHandler 学年范围模块 HTTP 处理器
type ScopeHandler struct {
	scopeSvc service.ScopeService
}

// NewScopeHandler 创建 ScopeHandler
func NewScopeHandler(scopeSvc service.ScopeService) *ScopeHandler {
	return &ScopeHandler{scopeSvc: scopeSvc}
}

// GetScope 获取当前有效学年及其学段
// GET /api/v1/scope
func (h *ScopeHandler) GetScope(c *gin.Context) {
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return
	}

	resp, err := h.scopeSvc.Current(c.Request.Context(), estID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// SelectYear 选择查看学年（覆盖激活学年）
// PUT /api/v1/academic-years/:id/select
func (h *ScopeHandler) SelectYear(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scopeSvc.SelectYear(c.Request.Context(), estID, uri.ID, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// ClearSelection 清除查看学年，回到激活学年
// DELETE /api/v1/academic-years/selection
func (h *ScopeHandler) ClearSelection(c *gin.Context) {
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scopeSvc.ClearSelection(c.Request.Context(), estID, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

// ActivateYear 激活学年
// PUT /api/v1/academic-years/:id/activate
func (h *ScopeHandler) ActivateYear(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scopeSvc.ActivateYear(c.Request.Context(), estID, uri.ID, callerID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}
