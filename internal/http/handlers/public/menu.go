package public

import (
	"github.com/noren-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMenu 获取菜单（分类与菜单项，展示顺序）
func (h *Handler) GetMenu(c *gin.Context) {
	response.Success(c, gin.H{"categories": h.Catalog.Categories()})
}

// GetMenuItem 按商品 ID 获取加入购物车的载荷
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.Catalog.ItemByID(c.Param("item_id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
		return
	}
	response.Success(c, gin.H{"item": item})
}
