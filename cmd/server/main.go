package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/noren-next/internal/app"
	"github.com/noren-next/internal/config"
	"github.com/noren-next/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, sweeper")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "███╗   ██╗ ██████╗ ██████╗ ███████╗███╗   ██╗" + ansiReset)
	fmt.Println(ansiCyan + "████╗  ██║██╔═══██╗██╔══██╗██╔════╝████╗  ██║" + ansiReset)
	fmt.Println(ansiCyan + "██╔██╗ ██║██║   ██║██████╔╝█████╗  ██╔██╗ ██║" + ansiReset)
	fmt.Println(ansiCyan + "██║╚██╗██║██║   ██║██╔══██╗██╔══╝  ██║╚██╗██║" + ansiReset)
	fmt.Println(ansiCyan + "██║ ╚████║╚██████╔╝██║  ██║███████╗██║ ╚████║" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Noren-Next Ordering API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
