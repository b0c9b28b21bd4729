package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/bank"
	"github.com/abhisek/lexiz/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past quiz attempts for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}

		cfg, logger, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		a := app.New(app.Options{
			Store:    bank.NewCSVStore(cfg.BankPath),
			Ledger:   ledger.New(cfg.ResultsDir),
			QuizSize: cfg.QuizSize,
			Logger:   logger,
		})

		attempts := a.History(username)
		out := cmd.OutOrStdout()

		if len(attempts) == 0 {
			fmt.Fprintf(out, "No attempts recorded for %s.\n", username)
			return nil
		}

		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Attempts for %s", username)))
		fmt.Fprintf(out, "%-12s  %-10s  %s\n", "Date", "Time", "Score")
		for _, at := range attempts {
			line := fmt.Sprintf("%-12s  %-10s  %d/%d", at.Date, at.Time, at.Score, at.Total)
			if at.Score == at.Total {
				line = correctStyle.Render(line)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "Username whose history to show")
}
