package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"web3-todo-list/config"
	"web3-todo-list/internal/httpserver"
	"web3-todo-list/internal/middleware"
	taskHTTP "web3-todo-list/internal/task/delivery/http"
	taskWS "web3-todo-list/internal/task/delivery/ws"
	contractRepo "web3-todo-list/internal/task/repository/contract"
	"web3-todo-list/internal/task/usecase"
	"web3-todo-list/pkg/log"
	"web3-todo-list/pkg/todolist"
)

// @title       Web3 To-Do List API
// @description REST façade over the TodoList smart contract: reads, stake-weighted task creation, completion and a live event stream.
// @version     1
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Web3 To-Do List API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "RPC URL: %s", cfg.Chain.RPCURL)

	// 3. Contract client
	client, err := todolist.Dial(ctx, todolist.Config{
		RPCURL:          cfg.Chain.RPCURL,
		ContractAddress: cfg.Chain.ContractAddress,
		PrivateKey:      cfg.Chain.PrivateKey,
		ChainID:         cfg.Chain.ChainID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to contract: ", err)
		return
	}
	defer client.Close()
	logger.Infof(ctx, "TodoList contract %s, signing as %s", client.Address().Hex(), client.Sender().Hex())

	// 4. Task domain
	taskRepo := contractRepo.New(client, logger)

	var (
		wg           sync.WaitGroup
		eventHandler gin.HandlerFunc
		ucOpts       = []usecase.Option{usecase.WithPollInterval(cfg.Events.PollInterval)}
	)
	var hub *taskWS.Hub
	if cfg.Events.Enabled {
		hub = taskWS.New(logger, taskWS.Config{AllowedOrigins: cfg.CORS.AllowedOrigins})
		eventHandler = hub.Serve
		ucOpts = append(ucOpts, usecase.WithPublisher(hub))
	}

	taskUC := usecase.New(logger, taskRepo, ucOpts...)
	taskHandler := taskHTTP.New(logger, taskUC)

	if hub != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Run(ctx)
		}()
		go func() {
			defer wg.Done()
			if err := taskUC.Watch(ctx); err != nil {
				logger.Errorf(ctx, "Task event watcher stopped: %v", err)
			}
		}()
		logger.Infof(ctx, "Task events enabled, polling every %s", cfg.Events.PollInterval)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		TaskHandler:  taskHandler,
		EventHandler: eventHandler,
		Readiness: func(ctx context.Context) error {
			_, err := client.BlockNumber(ctx)
			return err
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		stop()
		wg.Wait()
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}
	stop()
	wg.Wait()

	logger.Info(context.Background(), "Server stopped gracefully")
}
