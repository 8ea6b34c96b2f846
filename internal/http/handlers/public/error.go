package public

import (
	"github.com/noren-next/internal/http/response"
	"github.com/noren-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError 统一错误响应，服务端错误附带日志
func respondError(c *gin.Context, code int, messageKey string, err error) {
	if err != nil && code >= response.CodeInternal {
		logger.Errorw("public_api_error",
			"path", c.Request.URL.Path,
			"message_key", messageKey,
			"error", err,
		)
	}
	response.Error(c, code, messageKey)
}
