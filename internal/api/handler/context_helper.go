package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wilfreed8/EtuManager-sub001/pkg/response"
)

// mustGetString 从 Gin 上下文中安全提取 JWT 中间件注入的字符串。
// 缺失或为空时写入 401 响应并返回 false，调用方应直接 return。
func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetUserID 提取当前用户 ID
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetEstablishmentID 提取当前用户所属学校 ID（所有成绩查询的租户范围）
func MustGetEstablishmentID(c *gin.Context) (string, bool) {
	return mustGetString(c, "establishment_id")
}
