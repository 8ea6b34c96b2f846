package public

import "github.com/noren-next/internal/provider"

// Handler 前台接口处理器入口
// 说明：该处理器仅用于浏览会话侧 API（菜单浏览与购物车）。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
