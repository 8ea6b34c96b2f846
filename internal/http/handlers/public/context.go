package public

import (
	"strings"

	"github.com/noren-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const sessionIDKey = "session_id"

// getSessionID 从请求上下文取会话 ID（由会话中间件写入）
func getSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(sessionIDKey)
	if !ok {
		respondError(c, response.CodeInternal, "error.session_missing", nil)
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || strings.TrimSpace(sessionID) == "" {
		respondError(c, response.CodeInternal, "error.session_missing", nil)
		return "", false
	}
	return sessionID, true
}
