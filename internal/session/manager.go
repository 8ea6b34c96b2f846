package session

import (
	"strings"
	"sync"
	"time"

	"github.com/noren-next/internal/cart"
	"github.com/noren-next/internal/logger"
)

const defaultIdleTTL = 2 * time.Hour

// entry 会话条目：购物车存储与最近活动时间
type entry struct {
	store    *cart.Store
	lastSeen time.Time
}

// Manager 浏览会话管理器
// 每个会话持有一个独立的购物车存储，购物车状态不跨会话持久化：
// 空闲超时或进程退出即整体丢弃。
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	idleTTL time.Duration
	now     func() time.Time
}

// NewManager 创建会话管理器
func NewManager(idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Manager{
		entries: make(map[string]*entry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// GetOrCreate 获取会话的购物车存储，首次访问时创建空购物车。
// 新建的存储会订阅一次观察者：每次购物车变更同步刷新会话活动时间并记录日志。
func (m *Manager) GetOrCreate(sessionID string) *cart.Store {
	sessionID = strings.TrimSpace(sessionID)
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[sessionID]; ok {
		e.lastSeen = m.now()
		return e.store
	}

	store := cart.NewStore()
	m.entries[sessionID] = &entry{store: store, lastSeen: m.now()}
	store.Subscribe(func(snapshot cart.Snapshot) {
		m.touch(sessionID)
		logger.Debugw("cart_state_changed",
			"session_id", sessionID,
			"lines", len(snapshot.Items),
			"total_items", snapshot.TotalItems,
			"total_price", snapshot.TotalPrice.String(),
			"is_open", snapshot.IsOpen,
		)
	})
	logger.Debugw("session_created", "session_id", sessionID)
	return store
}

// Peek 获取已存在会话的购物车存储，不创建、不刷新活动时间
func (m *Manager) Peek(sessionID string) (*cart.Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, false
	}
	return e.store, true
}

// Count 当前存活会话数
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Sweep 清除空闲超时的会话，返回清除数量
func (m *Manager) Sweep() int {
	deadline := m.now().Add(-m.idleTTL)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.entries {
		if e.lastSeen.Before(deadline) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// touch 刷新会话活动时间
func (m *Manager) touch(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[sessionID]; ok {
		e.lastSeen = m.now()
	}
}
