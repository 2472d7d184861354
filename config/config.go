package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the question answering service
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm"`
	Search  SearchConfig  `mapstructure:"search"`
	Context ContextConfig `mapstructure:"context"`
	Server  ServerConfig  `mapstructure:"server"`
}

// LLMConfig contains LLM provider settings
type LLMConfig struct {
	Provider           string        `mapstructure:"provider"` // openai-compatible only today
	APIKey             string        `mapstructure:"api_key"`
	Model              string        `mapstructure:"model"`
	BaseURL            string        `mapstructure:"base_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	PlannerTemperature float64       `mapstructure:"planner_temperature"`
	AnswerTemperature  float64       `mapstructure:"answer_temperature"`
	MaxTokens          int           `mapstructure:"max_tokens"` // 0 = provider default
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("llm.model required")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be greater than zero")
	}
	return nil
}

// SearchConfig contains web search provider settings
type SearchConfig struct {
	Provider     string        `mapstructure:"provider"`
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Zone         string        `mapstructure:"zone"` // brightdata SERP zone
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxResults   int           `mapstructure:"max_results"`
	Retries      int           `mapstructure:"retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

func (s SearchConfig) Validate() error {
	if strings.TrimSpace(s.Provider) == "" {
		return fmt.Errorf("search.provider required")
	}
	if s.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be greater than zero")
	}
	if s.Retries < 0 {
		return fmt.Errorf("search.retries cannot be negative")
	}
	return nil
}

// Normalize applies defaults for unset search values.
func (s SearchConfig) Normalize() SearchConfig {
	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
	if s.RetryBackoff <= 0 {
		s.RetryBackoff = 500 * time.Millisecond
	}
	return s
}

// ContextConfig bounds the search context handed to answer synthesis
type ContextConfig struct {
	MaxChars int `mapstructure:"max_chars"` // <=0 disables the budget
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Normalize applies defaults for unset server values.
func (s ServerConfig) Normalize() ServerConfig {
	if strings.TrimSpace(s.Addr) == "" {
		s.Addr = ":8000"
	}
	return s
}

// LoadConfig loads config from file and environment. The config file is
// optional when no explicit path is given; defaults and SEEKER_* variables
// cover the whole surface.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")   // REQUIRED if the config file does not have the extension in the name

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.base_url", "https://sfo1.aihub.zeabur.ai")
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("llm.planner_temperature", 0.1)
	viper.SetDefault("llm.answer_temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 0)
	viper.SetDefault("search.provider", "brightdata")
	viper.SetDefault("search.api_key", "")
	viper.SetDefault("search.base_url", "")
	viper.SetDefault("search.zone", "serp_api1")
	viper.SetDefault("search.timeout", 10*time.Second)
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.retries", 1)
	viper.SetDefault("search.retry_backoff", 500*time.Millisecond)
	viper.SetDefault("context.max_chars", 4000)
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	if path == "" {
		viper.AddConfigPath("./config") // path to look for the config file in
		viper.AddConfigPath(".")        // optionally look for config in the working directory
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)                      // bin/
		viper.AddConfigPath(filepath.Join(exeDir, "..")) // repo root
	} else {
		viper.SetConfigFile(path)
	}

	_ = godotenv.Load() // optional .env; already-set variables win

	viper.SetEnvPrefix("SEEKER")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (SEEKER_*)

	// Legacy token names accepted alongside the SEEKER_ prefix.
	_ = viper.BindEnv("llm.api_key", "SEEKER_LLM_API_KEY", "ZEABUR_API_TOKEN")
	_ = viper.BindEnv("search.api_key", "SEEKER_SEARCH_API_KEY", "BRIGHTDATA_API_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	// unmarshal config
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	config.Search = config.Search.Normalize()
	config.Server = config.Server.Normalize()

	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}
	if err := config.Search.Validate(); err != nil {
		panic(err)
	}
	return &config
}
