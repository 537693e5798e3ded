// Package httpapi exposes the quiz repository as a small JSON API for
// administration next to the interactive sessions.
package httpapi

import (
	"go.uber.org/zap"

	"quiz-session/internal/quiz"
)

type API struct {
	repo   quiz.Repository
	logger *zap.Logger
}

func NewAPI(repo quiz.Repository, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		repo:   repo,
		logger: logger,
	}
}
