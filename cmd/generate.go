package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/bank"
	"github.com/abhisek/lexiz/internal/ledger"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new questions with the configured LLM and add them to the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, logger, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		llmCfg := llm.ConfigFromEnv()
		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
		if err != nil {
			return err
		}

		a := app.New(app.Options{
			Store:     bank.NewCSVStore(cfg.BankPath),
			Ledger:    ledger.New(cfg.ResultsDir),
			Generator: quizgen.New(provider, quizgen.DefaultConfig()),
			QuizSize:  cfg.QuizSize,
			Logger:    logger,
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), llmCfg.Timeout)
		defer cancel()

		records, err := a.GenerateQuestions(ctx, n)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Generated %d questions", len(records))))
		for i, r := range records {
			fmt.Fprintf(out, "%2d. %s (answer: %s)\n", i+1, r.Question, quiz.CanonicalLetter(r.Answer))
		}

		if dryRun {
			fmt.Fprintln(out, dimStyle.Render("Dry run: nothing written to the bank."))
			return nil
		}

		count, err := a.MergeQuestions(records)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, correctStyle.Render(fmt.Sprintf("Merged %d questions into %s", count, cfg.BankPath)))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("n", 0, "Number of questions to generate (default 10)")
	generateCmd.Flags().Bool("dry-run", false, "Generate and print without writing to the bank")
}
