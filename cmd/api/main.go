package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"gemini-chat/config"
	_ "gemini-chat/docs" // Swagger docs
	"gemini-chat/internal/httpserver"
	"gemini-chat/internal/modelclient"
	"gemini-chat/internal/session"
	"gemini-chat/pkg/gemini"
	"gemini-chat/pkg/log"
)

// @title       Gemini Chat API
// @description Request/response chat over the hosted Gemini generation endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Gemini chat server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model Client
	if err := cfg.Gemini.Validate(); err != nil {
		logger.Fatalf(ctx, "Invalid configuration: %v", err)
	}
	llm, err := gemini.New(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		APIURL:     cfg.Gemini.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Gemini client: %v", err)
	}
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 4. Sessions, one per caller
	sessions := session.NewRegistry(session.RegistryConfig{
		MaxSessions: cfg.Chat.MaxSessions,
		TTL:         cfg.Chat.SessionTTL,
		Defaults: session.Settings{
			SystemInstruction: cfg.Chat.DefaultSystemInstruction,
			Temperature:       cfg.Chat.DefaultTemperature,
		},
		Cap: cfg.Chat.RetentionCap,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Frontend:    httpserver.FrontendRequestResponse,
		ModelClient: modelclient.New(llm, logger),
		Sessions:    sessions,
		Chat: httpserver.ChatOptions{
			SessionCookie: cfg.Chat.SessionCookie,
			CookieMaxAge:  cfg.Chat.SessionTTL,
			Model:         llm.Model(),
		},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
