package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/internal/dto"
	"github.com/wilfreed8/EtuManager-sub001/internal/service"
	"github.com/wilfreed8/EtuManager-sub001/pkg/response"
)

// GradingConfigHandler 成绩配置模块 HTTP 处理器
type GradingConfigHandler struct {
	configSvc service.GradingConfigService
}

// NewGradingConfigHandler 创建 GradingConfigHandler
func NewGradingConfigHandler(configSvc service.GradingConfigService) *GradingConfigHandler {
	return &GradingConfigHandler{configSvc: configSvc}
}

// GetConfig 获取学校成绩配置
// GET /api/v1/grading-config
func (h *GradingConfigHandler) GetConfig(c *gin.Context) {
	estID, ok := MustGetEstablishmentID(c)
	if !ok {
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context(), estID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, cfg)
}

// UpdateConfig 更新学校成绩配置
// PUT /api/v1/grading-config
func (h *GradingConfigHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateGradingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
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

	cfg, err := h.configSvc.Update(c.Request.Context(), estID, &req, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, cfg)
}
