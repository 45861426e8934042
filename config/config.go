package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Generation endpoint
	Gemini GeminiConfig

	// Chat front-ends
	Chat ChatConfig

	// Classification demo
	Sentiment SentimentConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the hosted generation endpoint settings.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ChatConfig holds session settings shared by both chat front-ends.
// RetentionCap <= 0 keeps every turn until the conversation is cleared.
type ChatConfig struct {
	RetentionCap             int
	DefaultSystemInstruction string
	DefaultTemperature       float64
	SessionTTL               time.Duration
	MaxSessions              int
	SessionCookie            string
}

// SentimentConfig points at the pre-trained classifier artifacts.
type SentimentConfig struct {
	ModelPath      string
	VectorizerPath string
}

var (
	ErrMissingAPIKey       = errors.New("gemini api key is not configured (set GEMINI_API_KEY or GOOGLE_API_KEY)")
	ErrMissingArtifactPath = errors.New("sentiment artifact path is not configured")
)

// Validate reports configuration errors that must stop the chat binaries.
func (c GeminiConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Validate reports configuration errors that must stop the sentiment binary.
func (c SentimentConfig) Validate() error {
	if c.ModelPath == "" || c.VectorizerPath == "" {
		return ErrMissingArtifactPath
	}
	return nil
}

// BindFlags registers the flags shared by every binary and binds them into viper.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (default: config.yaml in ./config, ., /etc/app/)")
	fs.Int("port", 0, "HTTP port to listen on")
	_ = viper.BindPFlag("config_file", fs.Lookup("config"))
	_ = viper.BindPFlag("port_override", fs.Lookup("port"))
}

// Default replaces one built-in default for a single binary.
type Default struct {
	Key   string
	Value any
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded into the environment first.
func Load(defaults ...Default) (*Config, error) {
	_ = godotenv.Load()

	if file := viper.GetString("config_file"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")

	setDefaults()
	for _, d := range defaults {
		viper.SetDefault(d.Key, d.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		// An explicit --config must exist; the search path is optional.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || viper.GetString("config_file") != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port_override"); port > 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	// Chat
	cfg.Chat.RetentionCap = viper.GetInt("chat.retention_cap")
	cfg.Chat.DefaultSystemInstruction = viper.GetString("chat.default_system_instruction")
	cfg.Chat.DefaultTemperature = viper.GetFloat64("chat.default_temperature")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.SessionCookie = viper.GetString("chat.session_cookie")

	if cfg.Chat.DefaultTemperature < 0 || cfg.Chat.DefaultTemperature > 1 {
		return nil, fmt.Errorf("chat.default_temperature must be within [0,1], got %v", cfg.Chat.DefaultTemperature)
	}

	// Sentiment
	cfg.Sentiment.ModelPath = viper.GetString("sentiment.model_path")
	cfg.Sentiment.VectorizerPath = viper.GetString("sentiment.vectorizer_path")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("chat.retention_cap", 20)
	viper.SetDefault("chat.default_system_instruction", DefaultSystemInstruction)
	viper.SetDefault("chat.default_temperature", 0.7)
	viper.SetDefault("chat.session_ttl", "30m")
	viper.SetDefault("chat.max_sessions", 1000)
	viper.SetDefault("chat.session_cookie", "chat_session")

	viper.SetDefault("sentiment.model_path", "sentiment_model.json")
	viper.SetDefault("sentiment.vectorizer_path", "tfidf_vectorizer.json")
}

// DefaultSystemInstruction seeds every new chat session.
const DefaultSystemInstruction = "You are a helpful, intelligent chatbot that provides informative and concise responses."
