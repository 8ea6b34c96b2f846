package session

import (
	"context"
	"errors"
	"time"

	"github.com/noren-next/internal/logger"
)

const defaultSweepInterval = time.Minute

// Sweeper 空闲会话清理服务，实现 app.Service
type Sweeper struct {
	manager  *Manager
	interval time.Duration
}

// NewSweeper 创建清理服务
func NewSweeper(manager *Manager, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{manager: manager, interval: interval}
}

// Name 服务名称
func (s *Sweeper) Name() string {
	return "session-sweeper"
}

// Start 周期清理空闲会话，直到上下文取消
func (s *Sweeper) Start(ctx context.Context) error {
	if s == nil || s.manager == nil {
		return errors.New("session sweeper not initialized")
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := s.manager.Sweep()
			if removed > 0 {
				logger.Infow("session_swept",
					"removed", removed,
					"remaining", s.manager.Count(),
				)
			}
		}
	}
}

// Stop 停止服务（清理循环随上下文退出）
func (s *Sweeper) Stop(ctx context.Context) error {
	return nil
}
