package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors a command can end with.
type Kind int

const (
	KindMissingArgument Kind = iota + 1
	KindNotANumber
	KindNotFound
	KindRepository
)

func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "missing_argument"
	case KindNotANumber:
		return "not_a_number"
	case KindNotFound:
		return "not_found"
	case KindRepository:
		return "repository"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by id validation and repositories.
// errors.Is matches on Kind only, so errors.Is(NotFound(7), ErrNotFound) holds.
type Error struct {
	Kind Kind
	ID   int64
	Err  error
}

var (
	ErrMissingArgument = &Error{Kind: KindMissingArgument}
	ErrNotANumber      = &Error{Kind: KindNotANumber}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrRepository      = &Error{Kind: KindRepository}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingArgument:
		return "missing <id> argument"
	case KindNotANumber:
		return "the <id> argument is not a number"
	case KindNotFound:
		return fmt.Sprintf("there is no quiz with id=%d", e.ID)
	case KindRepository:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "repository failure"
	default:
		return "unknown quiz error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NotFound builds the error for a missing item.
func NotFound(id int64) error {
	return &Error{Kind: KindNotFound, ID: id}
}

// RepositoryError tags err as a repository failure. Errors that are already
// tagged are returned unchanged.
func RepositoryError(err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return &Error{Kind: KindRepository, Err: err}
}

// KindOf returns the kind of a tagged error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind, true
	}
	return 0, false
}

// ValidationError lists the field-level problems of an item.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid quiz: " + strings.Join(e.Problems, "; ")
}
