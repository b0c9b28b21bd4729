// Package config loads application configuration from an optional config
// file and LEXIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds file locations and quiz parameters. LLM provider settings
// live in the llm package's own env-driven config.
type Config struct {
	Env        string `mapstructure:"env"`         // application environment (local, production)
	BankPath   string `mapstructure:"bank_path"`   // path to the question bank CSV
	ResultsDir string `mapstructure:"results_dir"` // directory holding per-user attempt files
	QuizSize   int    `mapstructure:"quiz_size"`   // questions per quiz
}

// Load reads configuration from ./config/config.yaml (when present) and
// the environment. Environment variables win: LEXIZ_BANK_PATH,
// LEXIZ_RESULTS_DIR, LEXIZ_QUIZ_SIZE, LEXIZ_ENV.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("bank_path", "quiz/quiz.csv")
	v.SetDefault("results_dir", "results")
	v.SetDefault("quiz_size", 5)

	v.SetEnvPrefix("LEXIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.QuizSize <= 0 {
		return nil, fmt.Errorf("quiz_size must be positive, got %d", cfg.QuizSize)
	}
	return &cfg, nil
}
