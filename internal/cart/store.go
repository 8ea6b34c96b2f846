package cart

import (
	"sync"

	"github.com/noren-next/internal/constants"
	"github.com/noren-next/internal/models"
)

// Snapshot 一次状态变更后的购物车快照
type Snapshot struct {
	Items      []models.LineItem `json:"items"`
	IsOpen     bool              `json:"is_open"`
	TotalItems int               `json:"total_items"`
	TotalPrice models.Money      `json:"total_price"`
}

// Observer 状态变更回调，在每次变更完成后同步调用一次
type Observer func(Snapshot)

// Store 会话级购物车存储
// 行项按插入顺序保存，同一商品 ID 只存在一行（合并保持原位置）。
// 面板可见性标记与行项相互独立。
type Store struct {
	mu        sync.Mutex
	items     []models.LineItem
	isOpen    bool
	observers map[int]Observer
	order     []int
	nextObsID int
}

// NewStore 创建空购物车
func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// AddItem 加入商品：已存在同 ID 行则累加数量（保持原位置），否则追加新行。
// quantity <= 0 时按 1 处理。
func (s *Store) AddItem(input models.LineItemInput, quantity int) {
	if quantity < constants.MinLineQuantity {
		quantity = constants.MinLineQuantity
	}
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == input.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.LineItem{
			ID:       input.ID,
			Name:     input.Name,
			Price:    input.Price,
			Category: input.Category,
			Image:    input.Image,
			Quantity: quantity,
		})
	}
	s.notifyLocked()
}

// RemoveItem 删除指定行项，ID 不存在时不做任何事（幂等）
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	if !s.removeLocked(id) {
		s.mu.Unlock()
		return
	}
	s.notifyLocked()
}

// UpdateQuantity 设置行项的绝对数量；quantity <= 0 等同于删除该行。
// ID 不存在时不做任何事。
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		if !s.removeLocked(id) {
			s.mu.Unlock()
			return
		}
		s.notifyLocked()
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.notifyLocked()
			return
		}
	}
	s.mu.Unlock()
}

// Clear 清空全部行项，不改变面板可见性
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.notifyLocked()
}

// Open 打开购物车面板
func (s *Store) Open() {
	s.mu.Lock()
	s.isOpen = true
	s.notifyLocked()
}

// Close 关闭购物车面板
func (s *Store) Close() {
	s.mu.Lock()
	s.isOpen = false
	s.notifyLocked()
}

// Toggle 切换购物车面板可见性
func (s *Store) Toggle() {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	s.notifyLocked()
}

// Items 返回行项副本（插入顺序）
func (s *Store) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// IsOpen 返回面板可见性
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// TotalItems 全部行项数量之和，空购物车为 0
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.items)
}

// TotalPrice 全部行项小计之和，空购物车为 0；价格无法解析的行按零计
func (s *Store) TotalPrice() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.items)
}

// Snapshot 返回当前状态快照
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe 注册观察者，返回取消函数。
// 每次状态变更完成后，观察者按注册顺序各被同步调用一次。
func (s *Store) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// removeLocked 删除行项，返回是否发生变化
func (s *Store) removeLocked(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// notifyLocked 构造快照并释放锁，随后在锁外回调观察者
func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	observers := make([]Observer, 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range observers {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:      copyItems(s.items),
		IsOpen:     s.isOpen,
		TotalItems: totalItems(s.items),
		TotalPrice: totalPrice(s.items),
	}
}

func copyItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	copy(out, items)
	return out
}

func totalItems(items []models.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func totalPrice(items []models.LineItem) models.Money {
	total := models.Money{}
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
