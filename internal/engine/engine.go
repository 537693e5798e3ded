// Package engine implements the quiz commands a session can run: item
// management, single-question tests and the play game.
package engine

import (
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"quiz-session/internal/quiz"
)

const defaultCredits = "quiz-session contributors"

// Engine runs commands against one shared repository. It keeps no state
// between commands, so one Engine serves every session.
type Engine struct {
	repo    quiz.Repository
	logger  *zap.Logger
	newRand func() *rand.Rand
	credits []string
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRand sets the source of per-game random generators.
func WithRand(newRand func() *rand.Rand) Option {
	return func(e *Engine) {
		if newRand != nil {
			e.newRand = newRand
		}
	}
}

func WithCredits(lines ...string) Option {
	return func(e *Engine) {
		if len(lines) > 0 {
			e.credits = lines
		}
	}
}

func New(repo quiz.Repository, opts ...Option) *Engine {
	e := &Engine{
		repo:    repo,
		logger:  zap.NewNop(),
		newRand: newGameRand,
		credits: []string{defaultCredits},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Each game gets its own generator; *rand.Rand is not safe to share
// between sessions.
func newGameRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func answerMatches(reply, answer string) bool {
	return normalizeAnswer(reply) == normalizeAnswer(answer)
}
