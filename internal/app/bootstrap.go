package app

import (
	"errors"
	"time"

	"github.com/noren-next/internal/cache"
	"github.com/noren-next/internal/config"
	"github.com/noren-next/internal/provider"
	"github.com/noren-next/internal/router"
	"github.com/noren-next/internal/session"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container, err := provider.NewContainer(cfg)
	if err != nil {
		return nil, err
	}

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		if err := cache.InitRedis(&cfg.Redis); err != nil {
			return nil, err
		}
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	// 初始化会话清理服务
	if mode == ModeAll || mode == ModeSweeper {
		interval := time.Duration(cfg.Session.SweepIntervalSeconds) * time.Second
		services = append(services, session.NewSweeper(container.Sessions, interval))
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
