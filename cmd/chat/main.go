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

const version = "1.0.0"

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(config.Default{Key: "http_server.port", Value: 8501})
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting reactive chat UI...")

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

	// Each websocket owns its conversation, so no registry is needed here.
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Frontend:    httpserver.FrontendReactive,
		ModelClient: modelclient.New(llm, logger),
		Chat: httpserver.ChatOptions{
			Defaults: session.Settings{
				SystemInstruction: cfg.Chat.DefaultSystemInstruction,
				Temperature:       cfg.Chat.DefaultTemperature,
			},
			RetentionCap: cfg.Chat.RetentionCap,
			Model:        llm.Model(),
			Version:      version,
		},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
