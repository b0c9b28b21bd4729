// Package app wires the question bank, grader, attempt ledger and
// generation pipeline together and exposes the operations the command
// layer calls. All methods run to completion within the caller's
// invocation; there are no background tasks.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/lexiz/internal/bank"
	"github.com/abhisek/lexiz/internal/ledger"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/quizgen"
)

// Options holds the dependencies for an App. Store and Ledger are
// required; Generator may be nil when no LLM provider is configured, in
// which case GenerateQuestions fails.
type Options struct {
	Store     bank.Store
	Ledger    *ledger.Ledger
	Generator *quizgen.Generator
	QuizSize  int
	Logger    *zap.Logger
}

// App is the composition root for quiz operations.
type App struct {
	store    bank.Store
	ledger   *ledger.Ledger
	gen      *quizgen.Generator
	quizSize int
	logger   *zap.Logger
}

const defaultQuizSize = 5

// New creates an App from Options, applying defaults.
func New(opts Options) *App {
	size := opts.QuizSize
	if size <= 0 {
		size = defaultQuizSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		store:    opts.Store,
		ledger:   opts.Ledger,
		gen:      opts.Generator,
		quizSize: size,
		logger:   logger,
	}
}

// QuizSize returns the number of questions per quiz.
func (a *App) QuizSize() int {
	return a.quizSize
}

// SampleQuiz draws n distinct random questions from the bank, or the
// configured quiz size when n <= 0. Indices are in draw order and number
// the questions for the session.
func (a *App) SampleQuiz(n int) ([]bank.Record, []int, error) {
	if n <= 0 {
		n = a.quizSize
	}
	records, indices, err := bank.Sample(a.store, n)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("sampled quiz", zap.Int("size", n), zap.Ints("indices", indices))
	return records, indices, nil
}

// Grade scores submitted letters against the bank's answer keys.
func (a *App) Grade(answers []string, ids []int) (int, []quiz.AnswerDetail, error) {
	return quiz.Grade(a.store, answers, ids)
}

// RecordAttempt appends one completed attempt to username's ledger.
func (a *App) RecordAttempt(username string, score, total int, details []quiz.AnswerDetail) (ledger.Attempt, error) {
	attempt, err := a.ledger.Append(username, score, total, details)
	if err != nil {
		return ledger.Attempt{}, err
	}
	a.logger.Info("recorded attempt",
		zap.String("user", username),
		zap.Int("score", score),
		zap.Int("total", total),
	)
	return attempt, nil
}

// History returns username's attempts in chronological order. A missing
// or corrupt ledger yields an empty history.
func (a *App) History(username string) []ledger.Attempt {
	return a.ledger.History(username)
}

// GenerateQuestions produces n validated new questions without touching
// the bank.
func (a *App) GenerateQuestions(ctx context.Context, n int) ([]bank.Record, error) {
	if a.gen == nil {
		return nil, &llmNotConfiguredError{}
	}
	return a.gen.Generate(ctx, n)
}

// MergeQuestions appends generated records to the bank and returns the
// merged count.
func (a *App) MergeQuestions(records []bank.Record) (int, error) {
	count, err := quizgen.Merge(a.store, records)
	if err != nil {
		return 0, err
	}
	a.logger.Info("merged generated questions", zap.Int("count", count))
	return count, nil
}

type llmNotConfiguredError struct{}

func (*llmNotConfiguredError) Error() string {
	return "no LLM provider configured: question generation is unavailable"
}
