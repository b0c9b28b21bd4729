package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/bank"
	"github.com/abhisek/lexiz/internal/ledger"
	"github.com/abhisek/lexiz/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}
		n, _ := cmd.Flags().GetInt("n")

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

		questions, indices, err := a.SampleQuiz(n)
		if err != nil {
			return err
		}

		answers, err := askQuestions(cmd, questions)
		if err != nil {
			return err
		}

		score, details, err := a.Grade(answers, indices)
		if err != nil {
			return err
		}

		if _, err := a.RecordAttempt(username, score, len(indices), details); err != nil {
			return err
		}

		renderResult(cmd.OutOrStdout(), score, details, questions)
		return nil
	},
}

func init() {
	playCmd.Flags().String("user", "", "Username to record the attempt under")
	playCmd.Flags().Int("n", 0, "Number of questions (default: configured quiz size)")
}

// askQuestions prompts for one A-D answer per question on stdin.
func askQuestions(cmd *cobra.Command, questions []bank.Record) ([]string, error) {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		fmt.Fprintln(out)
		fmt.Fprintln(out, questionStyle.Render(fmt.Sprintf("Q%d. %s", i+1, q.Question)))
		fmt.Fprintf(out, "  A) %s\n  B) %s\n  C) %s\n  D) %s\n", q.ExampleA, q.ExampleB, q.ExampleC, q.ExampleD)

		answer, err := readLetter(out, reader)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func readLetter(out io.Writer, reader *bufio.Reader) (string, error) {
	for {
		fmt.Fprint(out, "Your answer (A-D): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		letter := strings.ToUpper(strings.TrimSpace(line))
		switch letter {
		case "A", "B", "C", "D":
			return letter, nil
		}
		fmt.Fprintln(out, "Please answer with A, B, C or D.")
	}
}

// renderResult prints the score and, for each question, whether the
// submission matched, with the correct option and explanation for misses.
func renderResult(out io.Writer, score int, details []quiz.AnswerDetail, questions []bank.Record) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Score: %d / %d", score, len(details))))

	for i, d := range details {
		q := questions[i]
		if d.Correct {
			fmt.Fprintln(out, correctStyle.Render(fmt.Sprintf("  Q%d correct", d.QuestionNum)))
			continue
		}
		letter := quiz.CanonicalLetter(q.Answer)
		fmt.Fprintln(out, wrongStyle.Render(fmt.Sprintf("  Q%d wrong, answer: %s) %s", d.QuestionNum, letter, q.Option(letter))))
		if q.Explanation != "" {
			fmt.Fprintln(out, dimStyle.Render("      "+q.Explanation))
		}
	}
}
