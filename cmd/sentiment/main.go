package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gemini-chat/config"
	"gemini-chat/internal/sentiment"
	"gemini-chat/pkg/log"
)

type jsonResult struct {
	sentiment.Result
	Color string `json:"color"`
}

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.BindFlags(fs)
	text := fs.String("text", "", "text to classify (default: remaining args, then stdin)")
	width := fs.Int("width", sentiment.DefaultChartWidth, "bar width of the probability chart")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	examples := fs.Bool("examples", false, "list example sentences and exit")
	fs.String("model", "", "path to the classifier artifact")
	fs.String("vectorizer", "", "path to the vectorizer artifact")
	_ = fs.Parse(os.Args[1:])

	if *examples {
		for _, e := range sentiment.Examples {
			fmt.Println(e)
		}
		return
	}

	bindIfSet(fs, "model", "sentiment.model_path")
	bindIfSet(fs, "vectorizer", "sentiment.vectorizer_path")

	cfg, err := config.Load(config.Default{Key: "logger.level", Value: "warn"})
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
	ctx := context.Background()

	if err := cfg.Sentiment.Validate(); err != nil {
		logger.Fatalf(ctx, "Invalid configuration: %v", err)
	}
	vec, clf, err := sentiment.LoadArtifacts(cfg.Sentiment.ModelPath, cfg.Sentiment.VectorizerPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load sentiment artifacts: %v", err)
	}
	svc := sentiment.New(vec, clf, logger)

	input, err := readText(*text, fs.Args(), os.Stdin)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read input: %v", err)
	}

	res, err := svc.Classify(ctx, input)
	if errors.Is(err, sentiment.ErrEmptyText) {
		fmt.Fprintln(os.Stderr, "Please enter some text to analyze.")
		os.Exit(2)
	}
	if err != nil {
		logger.Fatalf(ctx, "Failed to classify text: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonResult{Result: res, Color: sentiment.ColorFor(res.Label)}); err != nil {
			logger.Fatalf(ctx, "Failed to write result: %v", err)
		}
		return
	}
	if err := sentiment.RenderChart(os.Stdout, res, *width); err != nil {
		logger.Fatalf(ctx, "Failed to write result: %v", err)
	}
}

// bindIfSet lets an explicit flag override the config file and environment.
func bindIfSet(fs *pflag.FlagSet, flag, key string) {
	if f := fs.Lookup(flag); f != nil && f.Changed {
		_ = viper.BindPFlag(key, f)
	}
}

func readText(flagText string, args []string, stdin io.Reader) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
