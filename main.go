package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoshinonyaruko/snake-sim/api"
	"github.com/hoshinonyaruko/snake-sim/config"
	"github.com/hoshinonyaruko/snake-sim/memimg"
	"github.com/hoshinonyaruko/snake-sim/snake"
	"github.com/hoshinonyaruko/snake-sim/sqlite"
)

const configPath = "./config.json"

func main() {
	// Initialize the configuration
	cfg := config.LoadConfig(configPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config %s: %v", configPath, err)
	}

	// 成绩只保存在本进程
	db, err := sqlite.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	session := snake.NewSession(cfg.Settings())
	server := api.NewServer(session, db, cfg)

	// 配置热更新，模拟参数在下一局生效
	stopWatch, err := config.WatchConfig(configPath, func(c *config.AppConfig) {
		memimg.Reset()
		server.Reconfigure(c)
	})
	if err != nil {
		log.Printf("Config hot reload disabled: %v", err)
	} else {
		defer stopWatch()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 固定帧率驱动
	go server.Run(ctx)

	httpServer := &http.Server{
		Addr:    ":" + config.GetConfigValue("port").(string),
		Handler: server.Router(),
	}
	go shutdownOnDone(ctx, httpServer, 5*time.Second)

	log.Printf("snake-sim listening on %s (%d ticks/s)", httpServer.Addr, cfg.TickRate)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}

// shutdownOnDone 等待ctx结束后优雅关闭HTTP服务
func shutdownOnDone(ctx context.Context, srv *http.Server, timeout time.Duration) {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
