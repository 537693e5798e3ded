package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-session/internal/quiz"
)

func (s *SQLiteStore) Create(ctx context.Context, item quiz.Item) (quiz.Item, error) {
	if err := item.Validate(); err != nil {
		return quiz.Item{}, quiz.RepositoryError(err)
	}

	now := time.Now().UTC().UnixNano()
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quizzes (question, answer, created_at_unix, updated_at_unix) VALUES (?, ?, ?, ?)`,
		item.Question,
		item.Answer,
		now,
		now,
	)
	if err != nil {
		return quiz.Item{}, quiz.RepositoryError(fmt.Errorf("create quiz: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return quiz.Item{}, quiz.RepositoryError(fmt.Errorf("create quiz: %w", err))
	}
	item.ID = id
	return item, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id int64) (quiz.Item, error) {
	var item quiz.Item
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, question, answer FROM quizzes WHERE id = ?`,
		id,
	).Scan(&item.ID, &item.Question, &item.Answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Item{}, quiz.NotFound(id)
		}
		return quiz.Item{}, quiz.RepositoryError(fmt.Errorf("get quiz %d: %w", id, err))
	}
	return item, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]quiz.Item, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, question, answer FROM quizzes ORDER BY id ASC`,
	)
	if err != nil {
		return nil, quiz.RepositoryError(fmt.Errorf("list quizzes: %w", err))
	}
	defer rows.Close()

	items := make([]quiz.Item, 0)
	for rows.Next() {
		var item quiz.Item
		if err := rows.Scan(&item.ID, &item.Question, &item.Answer); err != nil {
			return nil, quiz.RepositoryError(fmt.Errorf("scan quiz: %w", err))
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, quiz.RepositoryError(fmt.Errorf("list quizzes: %w", err))
	}
	return items, nil
}

func (s *SQLiteStore) Update(ctx context.Context, item quiz.Item) (quiz.Item, error) {
	if err := item.Validate(); err != nil {
		return quiz.Item{}, quiz.RepositoryError(err)
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE quizzes SET question = ?, answer = ?, updated_at_unix = ? WHERE id = ?`,
		item.Question,
		item.Answer,
		time.Now().UTC().UnixNano(),
		item.ID,
	)
	if err != nil {
		return quiz.Item{}, quiz.RepositoryError(fmt.Errorf("update quiz %d: %w", item.ID, err))
	}

	if err := requireAffected(result, item.ID); err != nil {
		return quiz.Item{}, err
	}
	return item, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return quiz.RepositoryError(fmt.Errorf("delete quiz %d: %w", id, err))
	}
	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return quiz.RepositoryError(fmt.Errorf("rows affected: %w", err))
	}
	if affected == 0 {
		return quiz.NotFound(id)
	}
	return nil
}
