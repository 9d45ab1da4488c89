package middleware

import (
	"net/http"

	"SahaayGo/config"

	"github.com/gin-gonic/gin"
)

var internalAPIKey string

func init() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	internalAPIKey = cfg.InternalAPIKey
}

// InternalAuthMiddleware 内部接口认证中间件
func InternalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头中的认证信息
		authToken := c.GetHeader("X-Internal-Auth")

		// 验证认证信息，密钥未配置时直接拒绝
		if internalAPIKey == "" || authToken != internalAPIKey {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			return
		}

		c.Next()
	}
}
