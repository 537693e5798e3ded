// Package seed fills an empty repository with starter quizzes.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quiz-session/internal/quiz"
)

type entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Defaults are the quizzes stored when no seed file is configured.
func Defaults() []quiz.Item {
	return []quiz.Item{
		{Question: "Capital of Italy", Answer: "Rome"},
		{Question: "Capital of Portugal", Answer: "Lisbon"},
		{Question: "Capital of Spain", Answer: "Madrid"},
		{Question: "Capital of France", Answer: "Paris"},
	}
}

// Load reads a YAML list of question/answer pairs. Every entry must be a
// valid item.
func Load(path string) ([]quiz.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	items := make([]quiz.Item, 0, len(entries))
	for i, e := range entries {
		item := quiz.Item{Question: e.Question, Answer: e.Answer}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Apply stores items when repo holds no quizzes yet. It returns how many
// items were created.
func Apply(ctx context.Context, repo quiz.Repository, items []quiz.Item) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list quizzes: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, item := range items {
		if _, err := repo.Create(ctx, item); err != nil {
			return i, fmt.Errorf("seed quiz %q: %w", item.Question, err)
		}
	}
	return len(items), nil
}
