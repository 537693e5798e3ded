// Package server accepts TCP connections and runs one interactive quiz
// session per connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-session/internal/dispatch"
	"quiz-session/internal/render"
	"quiz-session/internal/session"
)

const welcomeText = "Quiz"

// Server serves the command dispatcher over raw text lines, so telnet or
// netcat are enough as clients.
type Server struct {
	listener   net.Listener
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session.Conn
	wg       sync.WaitGroup
}

// Listen binds addr. Use ":0" to pick a free port and Addr to read it back.
func Listen(addr string, dispatcher *dispatch.Dispatcher, logger *zap.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		listener:   listener,
		dispatcher: dispatcher,
		logger:     logger,
		sessions:   make(map[string]*session.Conn),
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until ctx is cancelled. On return the listener
// and every live session are closed and all session goroutines have ended.
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return s.listener.Close()
	})

	g.Go(func() error {
		s.logger.Info("accepting connections", zap.String("addr", s.Addr().String()))
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				if gctx.Err() != nil || errors.Is(err, net.ErrClosed) {
					return nil
				}
				return fmt.Errorf("accept: %w", err)
			}
			s.start(gctx, conn)
		}
	})

	err := g.Wait()
	s.closeSessions()
	s.wg.Wait()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (s *Server) start(ctx context.Context, conn net.Conn) {
	id := uuid.NewString()
	sess := session.New(id, conn, conn,
		session.WithCloser(conn),
		session.WithPrinter(render.New(conn, true)),
	)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	logger := s.logger.With(
		zap.String("session_id", id),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)
	logger.Info("session opened")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.forget(id)
		defer sess.Close()

		sess.Println(sess.Printer().Banner(welcomeText, render.Green))
		if err := s.dispatcher.Serve(ctx, sess); err != nil {
			logger.Warn("session ended with error", zap.Error(err))
		}
		logger.Info("session closed")
	}()
}

func (s *Server) forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sessions is the number of live sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) closeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if err := sess.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Debug("close session", zap.String("session_id", id), zap.Error(err))
		}
	}
}
