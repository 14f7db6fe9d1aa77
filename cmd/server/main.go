package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	handler "activityBoardWs/internal/board/application/handler"
	usecase "activityBoardWs/internal/board/application/usecase"
	"activityBoardWs/internal/board/infrastructure"
	transport "activityBoardWs/internal/board/interface"
	"activityBoardWs/internal/config"
	"activityBoardWs/internal/platform/broker"
	"activityBoardWs/internal/shared/auth"
	"activityBoardWs/internal/shared/logging"
)

func main() {
	// Load .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := logging.Setup(cfg.Logging.Directory, logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("activities backend", slog.String("baseUrl", cfg.Backend.BaseURL), slog.Duration("timeout", cfg.Backend.Timeout), slog.Duration("pollInterval", cfg.Board.PollInterval))

	hub := infrastructure.NewHub()
	registry := infrastructure.NewHandlerRegistry()
	backend := infrastructure.NewActivitiesHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)

	// Use cases
	broadcastUC := usecase.NewBroadcastUseCase(hub)
	refreshUC := usecase.NewRefreshUseCase(backend, broadcastUC)
	notices := usecase.NewNoticeCenter(cfg.Board.NoticeTTL, broadcastUC)
	signupUC := usecase.NewSignUpUseCase(backend, notices, refreshUC)
	unregisterUC := usecase.NewUnregisterUseCase(backend, refreshUC)

	// Optional event-driven refresh: broker topics announcing roster changes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, topic := range cfg.Kafka.Topics {
		registry.Register(handler.NewActivityStreamHandler(topic, nil, broadcastUC, refreshUC))
	}
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	// Polling driver
	go refreshUC.Run(ctx, cfg.Board.PollInterval)

	// Echo server
	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	wsHandler := transport.NewBoardWebsocketHandler(hub, validator, refreshUC, notices, cfg.Websocket.SendBuffer)
	boardHandler := transport.NewBoardHandler(refreshUC, signupUC, unregisterUC, notices)

	e.GET("/ws/board/:token", wsHandler)
	e.GET("/ws/board", wsHandler)
	e.GET("/board", boardHandler.Page)
	e.POST("/board/signup", boardHandler.SignUp)
	e.DELETE("/board/unregister", boardHandler.Unregister)
	e.GET("/health", boardHandler.Health)
	e.Static("/static", "web/static")
	e.File("/", "web/index.html")

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()
	e.Close()
}
