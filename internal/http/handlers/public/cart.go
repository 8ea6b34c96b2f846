package public

import (
	"errors"

	"github.com/noren-next/internal/http/response"
	"github.com/noren-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"` // 省略或 <= 0 时按 1 处理
}

// UpdateCartItemRequest 修改行项数量请求（绝对数量，<= 0 等同删除）
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.View(sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// AddCartItem 按菜单商品 ID 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	view, err := h.CartService.AddItem(service.AddCartItemInput{
		SessionID: sessionID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// UpdateCartItem 设置行项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	view, err := h.CartService.UpdateQuantity(sessionID, itemID, *req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// DeleteCartItem 删除行项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.RemoveItem(sessionID, c.Param("item_id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Clear(sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// OpenCart 打开购物车面板
func (h *Handler) OpenCart(c *gin.Context) {
	h.setCartVisibility(c, h.CartService.Open)
}

// CloseCart 关闭购物车面板
func (h *Handler) CloseCart(c *gin.Context) {
	h.setCartVisibility(c, h.CartService.Close)
}

// ToggleCart 切换购物车面板可见性
func (h *Handler) ToggleCart(c *gin.Context) {
	h.setCartVisibility(c, h.CartService.Toggle)
}

func (h *Handler) setCartVisibility(c *gin.Context, op func(string) (service.CartView, error)) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := op(sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": view})
}

// respondCartError 购物车服务错误映射
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		respondError(c, response.CodeNotFound, "error.menu_item_not_found", nil)
	case errors.Is(err, service.ErrCartItemInvalid):
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
	case errors.Is(err, service.ErrSessionInvalid):
		respondError(c, response.CodeBadRequest, "error.session_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.cart_operation_failed", err)
	}
}
