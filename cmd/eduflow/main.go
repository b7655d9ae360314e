package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/eduflow/pkg/assistant"
	"github.com/umputun/eduflow/pkg/config"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/llm"
	"github.com/umputun/eduflow/pkg/repository"
	"github.com/umputun/eduflow/pkg/service"
	"github.com/umputun/eduflow/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults if not set"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"dotenv file with secrets"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	if err := loadEnvFile(opts.EnvFile); err != nil {
		log.Printf("[WARN] %v", err)
	}

	log.Printf("[INFO] starting eduflow version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires components and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cfg.Assistant.LLM.APIKey != "" {
		setupLog(opts.Debug, opts.NoColor, cfg.Assistant.LLM.APIKey)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	items, err := loadItems(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	svc, err := service.New(service.Params{
		Items: items,
		Transition: feed.Options{
			Duration: cfg.Feed.Transition,
			Animator: feed.TickerAnimator{FrameInterval: cfg.Feed.FrameInterval},
		},
		Tolerance:           cfg.Feed.Tolerance,
		WheelSpeed:          cfg.Feed.WheelSpeed,
		VisibilityThreshold: cfg.Feed.VisibilityThreshold,
		KV:                  repos.KV,
		DefaultTheme:        domain.Theme(cfg.UI.DefaultTheme),
		Answerer:            makeAnswerer(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to start feed: %w", err)
	}
	defer svc.Close()

	srv := server.New(server.ConfigAdapter{Config: cfg, Listen: opts.Listen}, svc, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadItems returns inline items, the remote catalog, or nothing for the built-in sample feed
func loadItems(ctx context.Context, cfg *config.Config) ([]domain.FeedItem, error) {
	if len(cfg.Feed.Items) > 0 {
		return cfg.Feed.Items, nil
	}
	if cfg.Feed.SourceURL == "" {
		return nil, nil
	}
	loader := feed.NewCatalogLoader(cfg.Feed.FetchTimeout, cfg.Assistant.UserAgent)
	items, err := loader.Load(ctx, cfg.Feed.SourceURL)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] loaded %d items from %s", len(items), cfg.Feed.SourceURL)
	return items, nil
}

// makeAnswerer builds the configured answer strategy
func makeAnswerer(cfg *config.Config) assistant.Answerer {
	if cfg.Assistant.Strategy == config.StrategyGenerative {
		log.Printf("[INFO] tutor uses generative strategy, model %s", cfg.Assistant.LLM.Model)
		return llm.NewTutor(cfg.Assistant.LLM)
	}

	client := &http.Client{Timeout: cfg.Assistant.ProviderTimeout}
	opts := func(url string) assistant.HTTPOptions {
		return assistant.HTTPOptions{
			BaseURL:   url,
			UserAgent: cfg.Assistant.UserAgent,
			Client:    client,
			RateLimit: cfg.Assistant.RateLimit,
		}
	}

	// order is priority order
	var providers []assistant.Provider
	if !cfg.Assistant.Wikipedia.Disabled {
		providers = append(providers, assistant.NewWikipedia(opts(cfg.Assistant.Wikipedia.URL)))
	}
	if !cfg.Assistant.DuckDuckGo.Disabled {
		providers = append(providers, assistant.NewDuckDuckGo(opts(cfg.Assistant.DuckDuckGo.URL)))
	}
	log.Printf("[INFO] tutor uses search strategy with %d providers", len(providers))

	return assistant.NewSearchAggregator(assistant.AggregatorConfig{
		Providers:       providers,
		ProviderTimeout: cfg.Assistant.ProviderTimeout,
		MaxAnswerLen:    cfg.Assistant.MaxAnswerLen,
	})
}

// loadEnvFile loads secrets from a dotenv file, a missing file is fine
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	log.Printf("[DEBUG] environment loaded from %s", path)
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
