package provider

import (
	"time"

	"github.com/noren-next/internal/catalog"
	"github.com/noren-next/internal/config"
	"github.com/noren-next/internal/service"
	"github.com/noren-next/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Sessions *session.Manager

	// Services
	CartService *service.CartService
}

// NewContainer 构建依赖容器，菜单数据不合法时返回错误
func NewContainer(cfg *config.Config) (*Container, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, err
	}

	idleTTL := time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute
	sessions := session.NewManager(idleTTL)

	return &Container{
		Config:      cfg,
		Catalog:     cat,
		Sessions:    sessions,
		CartService: service.NewCartService(sessions, cat),
	}, nil
}
