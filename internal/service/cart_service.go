package service

import (
	"strings"

	"github.com/noren-next/internal/cart"
	"github.com/noren-next/internal/catalog"
	"github.com/noren-next/internal/models"
	"github.com/noren-next/internal/session"
)

// CartLineView 购物车行项视图（用于响应）
type CartLineView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    string       `json:"price"`
	Category string       `json:"category"`
	Image    string       `json:"image"`
	Quantity int          `json:"quantity"`
	Subtotal models.Money `json:"subtotal"`
}

// CartView 购物车视图（用于响应）
type CartView struct {
	Items      []CartLineView `json:"items"`
	IsOpen     bool           `json:"is_open"`
	TotalItems int            `json:"total_items"`
	TotalPrice models.Money   `json:"total_price"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	SessionID string
	ItemID    string
	Quantity  int // <= 0 时按 1 处理
}

// CartService 购物车服务
// 校验菜单商品后将命令分发到会话的购物车存储。
type CartService struct {
	sessions *session.Manager
	catalog  *catalog.Catalog
}

// NewCartService 创建购物车服务
func NewCartService(sessions *session.Manager, cat *catalog.Catalog) *CartService {
	return &CartService{sessions: sessions, catalog: cat}
}

// View 获取购物车视图
func (s *CartService) View(sessionID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return buildView(store.Snapshot()), nil
}

// AddItem 按菜单商品 ID 加入购物车（同一商品合并数量）
func (s *CartService) AddItem(input AddCartItemInput) (CartView, error) {
	store, err := s.storeFor(input.SessionID)
	if err != nil {
		return CartView{}, err
	}
	itemID := strings.TrimSpace(input.ItemID)
	if itemID == "" {
		return CartView{}, ErrCartItemInvalid
	}
	payload, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return CartView{}, ErrMenuItemNotFound
	}
	store.AddItem(payload, input.Quantity)
	return buildView(store.Snapshot()), nil
}

// RemoveItem 删除购物车行项（ID 不存在时为幂等空操作）
func (s *CartService) RemoveItem(sessionID, itemID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.RemoveItem(strings.TrimSpace(itemID))
	return buildView(store.Snapshot()), nil
}

// UpdateQuantity 设置行项绝对数量，<= 0 时删除该行
func (s *CartService) UpdateQuantity(sessionID, itemID string, quantity int) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.UpdateQuantity(strings.TrimSpace(itemID), quantity)
	return buildView(store.Snapshot()), nil
}

// Clear 清空购物车，不改变面板可见性
func (s *CartService) Clear(sessionID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.Clear()
	return buildView(store.Snapshot()), nil
}

// Open 打开购物车面板
func (s *CartService) Open(sessionID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.Open()
	return buildView(store.Snapshot()), nil
}

// Close 关闭购物车面板
func (s *CartService) Close(sessionID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.Close()
	return buildView(store.Snapshot()), nil
}

// Toggle 切换购物车面板可见性
func (s *CartService) Toggle(sessionID string) (CartView, error) {
	store, err := s.storeFor(sessionID)
	if err != nil {
		return CartView{}, err
	}
	store.Toggle()
	return buildView(store.Snapshot()), nil
}

func (s *CartService) storeFor(sessionID string) (*cart.Store, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionInvalid
	}
	return s.sessions.GetOrCreate(sessionID), nil
}

// buildView 构造响应视图，图片缺省时回退到分类图标
func buildView(snapshot cart.Snapshot) CartView {
	items := make([]CartLineView, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		image := item.Image
		if image == "" {
			image = catalog.CategoryIcon(item.Category)
		}
		items = append(items, CartLineView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Category: item.Category,
			Image:    image,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return CartView{
		Items:      items,
		IsOpen:     snapshot.IsOpen,
		TotalItems: snapshot.TotalItems,
		TotalPrice: snapshot.TotalPrice,
	}
}
