package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/internal/bulletin"
	"github.com/wilfreed8/EtuManager-sub001/internal/service"
	"github.com/wilfreed8/EtuManager-sub001/pkg/response"
)

// 业务错误码
//
//	210xx 学年范围 查询不到
//	211xx 学年范围 前置条件不满足
//	220xx 成绩单 查询不到
//	221xx 成绩单 前置条件不满足
//	230xx 成绩配置
const (
	codeEstablishmentNotFound = 21001
	codeAcademicYearNotFound  = 21002
	codePeriodNotFound        = 21003
	codeNoEffectiveYear       = 21101
	codeMultipleActiveYears   = 21102
	codePeriodYearMismatch    = 21103
	codeAcademicYearLocked    = 21104
	codeStudentNotFound       = 22001
	codeClassNotFound         = 22002
	codeStudentNotEnrolled    = 22101
	codeEmptyClass            = 22102
	codeInvalidWeights        = 23001
)

type errorMapping struct {
	target  error
	status  int
	code    int
	message string
}

// 每一类错误对应独立的 HTTP 状态与业务码，前置条件失败不返回 500
var errorMappings = []errorMapping{
	{service.ErrEstablishmentNotFound, http.StatusNotFound, codeEstablishmentNotFound, "学校不存在"},
	{service.ErrAcademicYearNotFound, http.StatusNotFound, codeAcademicYearNotFound, "学年不存在"},
	{service.ErrPeriodNotFound, http.StatusNotFound, codePeriodNotFound, "学段不存在"},
	{service.ErrStudentNotFound, http.StatusNotFound, codeStudentNotFound, "学生不存在"},
	{service.ErrClassNotFound, http.StatusNotFound, codeClassNotFound, "班级不存在"},
	{bulletin.ErrNoEffectiveYear, http.StatusConflict, codeNoEffectiveYear, "学校没有有效学年，请先激活或选择学年"},
	{bulletin.ErrMultipleActiveYears, http.StatusConflict, codeMultipleActiveYears, "学校存在多个激活学年"},
	{bulletin.ErrPeriodYearMismatch, http.StatusConflict, codePeriodYearMismatch, "学段不属于当前学年"},
	{service.ErrAcademicYearLocked, http.StatusConflict, codeAcademicYearLocked, "学年已锁定"},
	{bulletin.ErrStudentNotEnrolled, http.StatusConflict, codeStudentNotEnrolled, "学生未在当前学年注册"},
	{bulletin.ErrEmptyClass, http.StatusConflict, codeEmptyClass, "班级当前学年没有学生"},
	{bulletin.ErrInvalidWeights, http.StatusUnprocessableEntity, codeInvalidWeights, "成绩权重无效"},
}

// handleServiceError 统一处理 Service 层返回的业务错误
func handleServiceError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			switch m.status {
			case http.StatusNotFound:
				response.NotFound(c, m.code, m.message)
			case http.StatusConflict:
				response.Conflict(c, m.code, m.message)
			default:
				response.Error(c, m.status, m.code, m.message)
			}
			return
		}
	}
	_ = c.Error(err)
	response.InternalError(c)
}

// handleBindError 请求绑定失败：请求体超限返回 413，其余返回 400
func handleBindError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
		return
	}
	response.BadRequest(c, 10001, "参数校验失败")
}
