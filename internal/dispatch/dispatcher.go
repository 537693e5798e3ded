// Package dispatch reads command lines from a session, runs the matching
// engine command and signals the session when the command is done.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"quiz-session/internal/engine"
	"quiz-session/internal/quiz"
	"quiz-session/internal/session"
)

type handler func(ctx context.Context, s session.Session, arg quiz.Arg) error

// Dispatcher maps command names to engine calls. It is stateless and may
// serve any number of sessions concurrently.
type Dispatcher struct {
	engine   *engine.Engine
	logger   *zap.Logger
	commands map[string]handler
}

func New(e *engine.Engine, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		engine: e,
		logger: logger,
	}
	d.commands = map[string]handler{
		"h":       d.help,
		"help":    d.help,
		"list":    d.list,
		"show":    withID(e.Show),
		"add":     d.add,
		"delete":  withID(e.Delete),
		"edit":    withID(e.Edit),
		"test":    withID(e.Test),
		"p":       d.play,
		"play":    d.play,
		"credits": d.credits,
	}
	return d
}

// Serve runs the command loop of s until the user quits, the input ends or
// ctx is cancelled.
func (d *Dispatcher) Serve(ctx context.Context, s session.Session) error {
	s.Ready()
	for {
		line, err := s.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, session.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		if quit := d.Dispatch(ctx, s, line); quit {
			return s.Close()
		}
	}
}

// Dispatch runs one command line. Except for quit, it calls s.Ready exactly
// once before returning, whatever the command's outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, s session.Session, line string) (quit bool) {
	name, arg := parseLine(line)
	if name == "q" || name == "quit" {
		d.logger.Debug("session quit", zap.String("session_id", s.ID()))
		return true
	}

	defer s.Ready()
	if name == "" {
		return false
	}

	d.logger.Debug("command",
		zap.String("session_id", s.ID()),
		zap.String("command", name),
		zap.String("arg", arg.Raw),
	)

	run, ok := d.commands[name]
	if !ok {
		s.Println(s.Printer().Error(fmt.Sprintf("Unknown command: '%s'", name)))
		s.Println("Use 'help' to see all available commands.")
		return false
	}

	if err := d.run(ctx, s, run, arg); err != nil {
		d.report(s, name, err)
	}
	return false
}

func (d *Dispatcher) run(ctx context.Context, s session.Session, run handler, arg quiz.Arg) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("command panicked",
				zap.String("session_id", s.ID()),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return run(ctx, s, arg)
}

func (d *Dispatcher) report(s session.Session, name string, err error) {
	if errors.Is(err, session.ErrClosed) {
		return
	}

	kind, _ := quiz.KindOf(err)
	d.logger.Warn("command failed",
		zap.String("session_id", s.ID()),
		zap.String("command", name),
		zap.Stringer("kind", kind),
		zap.Error(err),
	)

	p := s.Printer()
	var validation *quiz.ValidationError
	if errors.As(err, &validation) {
		s.Println(p.Error("The quiz is invalid:"))
		for _, problem := range validation.Problems {
			s.Println(p.Error(problem))
		}
		return
	}
	s.Println(p.Error(err.Error()))
}

func (d *Dispatcher) help(ctx context.Context, s session.Session, _ quiz.Arg) error {
	return d.engine.Help(ctx, s)
}

func (d *Dispatcher) credits(ctx context.Context, s session.Session, _ quiz.Arg) error {
	return d.engine.Credits(ctx, s)
}

func (d *Dispatcher) list(ctx context.Context, s session.Session, _ quiz.Arg) error {
	return d.engine.List(ctx, s)
}

func (d *Dispatcher) add(ctx context.Context, s session.Session, _ quiz.Arg) error {
	return d.engine.Add(ctx, s)
}

func (d *Dispatcher) play(ctx context.Context, s session.Session, _ quiz.Arg) error {
	result, err := d.engine.Play(ctx, s)
	d.logger.Info("game over",
		zap.String("session_id", s.ID()),
		zap.Stringer("state", result.State),
		zap.Int("score", result.Score),
		zap.Int("asked", result.Asked),
	)
	return err
}

func withID(run func(context.Context, session.Prompter, quiz.Arg) error) handler {
	return func(ctx context.Context, s session.Session, arg quiz.Arg) error {
		return run(ctx, s, arg)
	}
}

// parseLine splits a command line into a lowercase command name and its
// first argument.
func parseLine(line string) (string, quiz.Arg) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", quiz.NoArg
	}

	name := strings.ToLower(fields[0])
	if len(fields) < 2 {
		return name, quiz.NoArg
	}
	return name, quiz.ArgOf(fields[1])
}
