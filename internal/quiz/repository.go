package quiz

import (
	"context"
	"strings"
)

// Item is one question/answer pair. ID is assigned by the repository.
type Item struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate reports every field violation of the item, not just the first one.
func (i Item) Validate() error {
	var problems []string
	if strings.TrimSpace(i.Question) == "" {
		problems = append(problems, "question must not be empty")
	}
	if strings.TrimSpace(i.Answer) == "" {
		problems = append(problems, "answer must not be empty")
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// Repository stores quiz items. Implementations must be safe for concurrent
// use by independent sessions.
//
// Get, Update and Delete return an error matching ErrNotFound when no item
// has the given id. Create and Update return a *ValidationError for invalid
// items.
type Repository interface {
	Create(ctx context.Context, item Item) (Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id int64) error
}
