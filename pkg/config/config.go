package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/eduflow/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// assistant strategies
const (
	StrategySearch     = "search"
	StrategyGenerative = "generative"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:eduflow.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration for learner state"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed content and navigation"`

	Assistant AssistantConfig `yaml:"assistant" json:"assistant" jsonschema:"description=AI tutor configuration"`

	UI struct {
		DefaultTheme string `yaml:"default_theme" json:"default_theme" jsonschema:"default=light,enum=light,enum=dark,description=Theme used until the learner picks one"`
	} `yaml:"ui" json:"ui" jsonschema:"description=UI preferences"`
}

// FeedConfig holds feed content and navigation settings
type FeedConfig struct {
	Items               []domain.FeedItem `yaml:"items" json:"items" jsonschema:"description=Inline feed items, the built-in sample feed is used if empty and no source_url set"`
	SourceURL           string            `yaml:"source_url" json:"source_url" jsonschema:"description=RSS/Atom/Media RSS catalog to load items from"`
	FetchTimeout        time.Duration     `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Catalog fetch timeout"`
	Transition          time.Duration     `yaml:"transition" json:"transition" jsonschema:"default=600ms,description=Slide transition duration"`
	FrameInterval       time.Duration     `yaml:"frame_interval" json:"frame_interval" jsonschema:"default=16ms,description=Animation frame interval"`
	Tolerance           float64           `yaml:"tolerance" json:"tolerance" jsonschema:"default=20,description=Accumulated gesture delta needed to navigate"`
	WheelSpeed          float64           `yaml:"wheel_speed" json:"wheel_speed" jsonschema:"default=-2,description=Wheel delta multiplier"`
	VisibilityThreshold float64           `yaml:"visibility_threshold" json:"visibility_threshold" jsonschema:"default=0.6,minimum=0,maximum=1,description=Visible fraction that starts playback"`
}

// AssistantConfig holds AI tutor settings
type AssistantConfig struct {
	Strategy        string         `yaml:"strategy" json:"strategy" jsonschema:"default=search,enum=search,enum=generative,description=Answer strategy"`
	ProviderTimeout time.Duration  `yaml:"provider_timeout" json:"provider_timeout" jsonschema:"default=5s,description=Timeout of a single knowledge provider call"`
	MaxAnswerLen    int            `yaml:"max_answer_len" json:"max_answer_len" jsonschema:"default=700,minimum=1,description=Maximum merged answer length in characters"`
	RateLimit       time.Duration  `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimal interval between calls to the same provider"`
	UserAgent       string         `yaml:"user_agent" json:"user_agent" jsonschema:"default=EduFlow/1.0,description=User agent for provider requests"`
	Wikipedia       ProviderConfig `yaml:"wikipedia" json:"wikipedia" jsonschema:"description=Wikipedia provider"`
	DuckDuckGo      ProviderConfig `yaml:"duckduckgo" json:"duckduckgo" jsonschema:"description=DuckDuckGo instant answer provider"`
	LLM             LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for the generative strategy"`
}

// ProviderConfig holds settings of a knowledge provider
type ProviderConfig struct {
	URL      string `yaml:"url" json:"url" jsonschema:"description=API base URL"`
	Disabled bool   `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Exclude provider from answers"`
}

// LLMConfig holds LLM configuration for the generative strategy
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finalize(&cfg)
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	// validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:eduflow.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feed
	if cfg.Feed.FetchTimeout == 0 {
		cfg.Feed.FetchTimeout = 30 * time.Second
	}
	if cfg.Feed.Transition == 0 {
		cfg.Feed.Transition = 600 * time.Millisecond
	}
	if cfg.Feed.FrameInterval == 0 {
		cfg.Feed.FrameInterval = 16 * time.Millisecond
	}
	if cfg.Feed.Tolerance == 0 {
		cfg.Feed.Tolerance = 20
	}
	if cfg.Feed.WheelSpeed == 0 {
		cfg.Feed.WheelSpeed = -2
	}
	if cfg.Feed.VisibilityThreshold == 0 {
		cfg.Feed.VisibilityThreshold = 0.6
	}

	// set defaults for assistant
	if cfg.Assistant.Strategy == "" {
		cfg.Assistant.Strategy = StrategySearch
	}
	if cfg.Assistant.ProviderTimeout == 0 {
		cfg.Assistant.ProviderTimeout = 5 * time.Second
	}
	if cfg.Assistant.MaxAnswerLen == 0 {
		cfg.Assistant.MaxAnswerLen = 700
	}
	if cfg.Assistant.RateLimit == 0 {
		cfg.Assistant.RateLimit = 500 * time.Millisecond
	}
	if cfg.Assistant.UserAgent == "" {
		cfg.Assistant.UserAgent = "EduFlow/1.0"
	}
	if cfg.Assistant.Wikipedia.URL == "" {
		cfg.Assistant.Wikipedia.URL = "https://en.wikipedia.org"
	}
	if cfg.Assistant.DuckDuckGo.URL == "" {
		cfg.Assistant.DuckDuckGo.URL = "https://api.duckduckgo.com"
	}

	// set defaults for LLM
	if cfg.Assistant.LLM.Temperature == 0 {
		cfg.Assistant.LLM.Temperature = 0.7
	}
	if cfg.Assistant.LLM.MaxTokens == 0 {
		cfg.Assistant.LLM.MaxTokens = 500
	}
	if cfg.Assistant.LLM.Timeout == 0 {
		cfg.Assistant.LLM.Timeout = 30 * time.Second
	}

	// set defaults for ui
	if cfg.UI.DefaultTheme == "" {
		cfg.UI.DefaultTheme = string(domain.ThemeLight)
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate assistant config
	switch cfg.Assistant.Strategy {
	case StrategySearch:
		if cfg.Assistant.Wikipedia.Disabled && cfg.Assistant.DuckDuckGo.Disabled {
			return fmt.Errorf("assistant: at least one provider must be enabled for search strategy")
		}
	case StrategyGenerative:
		if cfg.Assistant.LLM.Endpoint == "" {
			return fmt.Errorf("assistant.llm.endpoint is required for generative strategy")
		}
		if cfg.Assistant.LLM.Model == "" {
			return fmt.Errorf("assistant.llm.model is required for generative strategy")
		}
	default:
		return fmt.Errorf("assistant.strategy must be %q or %q, got %q", StrategySearch, StrategyGenerative, cfg.Assistant.Strategy)
	}
	if cfg.Assistant.LLM.Temperature < 0 || cfg.Assistant.LLM.Temperature > 2 {
		return fmt.Errorf("assistant.llm.temperature must be between 0 and 2")
	}
	if cfg.Assistant.MaxAnswerLen < 1 {
		return fmt.Errorf("assistant.max_answer_len must be at least 1")
	}
	if cfg.Assistant.ProviderTimeout < 0 {
		return fmt.Errorf("assistant.provider_timeout must be non-negative")
	}

	// validate feed config
	if cfg.Feed.VisibilityThreshold < 0 || cfg.Feed.VisibilityThreshold > 1 {
		return fmt.Errorf("feed.visibility_threshold must be between 0 and 1")
	}
	if cfg.Feed.Tolerance < 0 {
		return fmt.Errorf("feed.tolerance must be non-negative")
	}
	seen := map[string]bool{}
	for i, item := range cfg.Feed.Items {
		if item.ID == "" {
			return fmt.Errorf("feed.items[%d]: id is required", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("feed.items[%d]: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
		if item.VideoURL == "" {
			return fmt.Errorf("feed.items[%d]: video_url is required", i)
		}
		if item.Difficulty != "" && !item.Difficulty.Valid() {
			return fmt.Errorf("feed.items[%d]: unknown difficulty %q", i, item.Difficulty)
		}
		if item.AIScore < 0 || item.AIScore > 100 {
			return fmt.Errorf("feed.items[%d]: ai_score must be between 0 and 100", i)
		}
	}

	// validate ui config
	if !domain.Theme(cfg.UI.DefaultTheme).Valid() {
		return fmt.Errorf("ui.default_theme must be light or dark, got %q", cfg.UI.DefaultTheme)
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}
