// Package session provides the line-oriented channel between one user and
// the command interpreter, over the local console or a network connection.
package session

import (
	"context"
	"errors"

	"quiz-session/internal/render"
)

// ErrClosed is returned by Prompt and ReadLine once the session is closed
// or its input has ended.
var ErrClosed = errors.New("session closed")

// Prompter is the part of a session that command handlers use.
type Prompter interface {
	// Prompt writes text and waits for the next line of input.
	Prompt(ctx context.Context, text string) (string, error)
	// Println writes one line of output.
	Println(line string)
	Printer() *render.Printer
}

// Session is one user's interactive channel.
type Session interface {
	Prompter
	ID() string
	// ReadLine waits for the next command line without writing anything.
	ReadLine(ctx context.Context) (string, error)
	// Ready shows the command prompt; it is the signal that the previous
	// command has finished.
	Ready()
	Close() error
	Done() <-chan struct{}
}
