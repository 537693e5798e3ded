// Package sessiontest provides a scripted session.Session for tests.
package sessiontest

import (
	"context"
	"strings"
	"sync"

	"quiz-session/internal/render"
	"quiz-session/internal/session"
)

// Session replays scripted input lines and records everything written to it.
// Once the script is used up, reads fail with session.ErrClosed.
type Session struct {
	mu      sync.Mutex
	input   []string
	prompts []string
	output  []string
	ready   int
	closed  bool
	done    chan struct{}
}

var _ session.Session = (*Session)(nil)

func New(input ...string) *Session {
	return &Session{
		input: input,
		done:  make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return "scripted"
}

func (s *Session) Printer() *render.Printer {
	return render.Plain()
}

func (s *Session) Prompt(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, text)
	s.mu.Unlock()
	return s.ReadLine(ctx)
}

func (s *Session) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.input) == 0 {
		return "", session.ErrClosed
	}
	line := s.input[0]
	s.input = s.input[1:]
	return line, nil
}

func (s *Session) Println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = append(s.output, strings.Split(line, "\n")...)
}

func (s *Session) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready++
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	return nil
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Prompts returns the texts passed to Prompt, in order.
func (s *Session) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Output returns the written lines; multi-line writes are split.
func (s *Session) Output() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.output...)
}

// Text joins the output into one string.
func (s *Session) Text() string {
	return strings.Join(s.Output(), "\n")
}

// ReadyCount is the number of Ready calls.
func (s *Session) ReadyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
