package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lexiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "English grammar quiz with an AI question bank",
	Long:  "Lexiz lets you take short English grammar quizzes, track your attempts, and grow the question bank with AI-generated questions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Provider API keys commonly live in a .env file next to the binary.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank CSV (overrides LEXIZ_BANK_PATH)")
	rootCmd.PersistentFlags().String("results", "", "Directory for per-user attempt files (overrides LEXIZ_RESULTS_DIR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnv resolves configuration (file, env, flags) and builds the
// process logger.
func loadEnv(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if d, _ := cmd.Flags().GetString("results"); d != "" {
		cfg.ResultsDir = d
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}
