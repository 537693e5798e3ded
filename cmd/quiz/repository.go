package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quiz-session/internal/dispatch"
	"quiz-session/internal/engine"
	"quiz-session/internal/quiz"
	"quiz-session/internal/quiz/sqlite"
	"quiz-session/internal/seed"
)

// openRepository opens the configured store and seeds it when empty.
func openRepository(ctx context.Context) (quiz.Repository, func(), error) {
	var (
		repo      quiz.Repository
		closeRepo = func() {}
	)

	if cfg.InMemory() {
		repo = quiz.NewMemoryStore()
	} else {
		store, err := sqlite.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		repo = store
		closeRepo = func() {
			if err := store.Close(); err != nil {
				logger.Warn("close database", zap.Error(err))
			}
		}
	}

	items := seed.Defaults()
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			closeRepo()
			return nil, nil, err
		}
		items = loaded
	}

	n, err := seed.Apply(ctx, repo, items)
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("seed repository: %w", err)
	}
	if n > 0 {
		logger.Info("seeded repository", zap.Int("quizzes", n), zap.String("db_path", cfg.DBPath))
	}

	return repo, closeRepo, nil
}

func newDispatcher(repo quiz.Repository) *dispatch.Dispatcher {
	e := engine.New(repo,
		engine.WithLogger(logger.Named("engine")),
		engine.WithCredits(cfg.Credits...),
	)
	return dispatch.New(e, logger.Named("dispatch"))
}
