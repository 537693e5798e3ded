package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"quiz-session/internal/render"
)

const (
	defaultPrompt  = "quiz > "
	maxLineLength  = 64 * 1024
	lineBufferSize = 1
)

// Conn is a Session over a reader and a writer. A background goroutine reads
// lines so that Prompt can also return on close or context cancellation.
type Conn struct {
	id      string
	out     io.Writer
	closer  io.Closer
	printer *render.Printer
	prompt  string

	lines   chan string
	readErr error

	writeMu  sync.Mutex
	writeErr error

	closed    chan struct{}
	closeOnce sync.Once
	closeErr  error
}

type Option func(*Conn)

// WithCloser closes c together with the session, for example the network
// connection the session reads from.
func WithCloser(c io.Closer) Option {
	return func(conn *Conn) {
		conn.closer = c
	}
}

func WithPrinter(p *render.Printer) Option {
	return func(conn *Conn) {
		conn.printer = p
	}
}

// WithPrompt replaces the command prompt text.
func WithPrompt(prompt string) Option {
	return func(conn *Conn) {
		conn.prompt = prompt
	}
}

func New(id string, in io.Reader, out io.Writer, opts ...Option) *Conn {
	conn := &Conn{
		id:     id,
		out:    out,
		prompt: defaultPrompt,
		lines:  make(chan string, lineBufferSize),
		closed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(conn)
	}
	if conn.printer == nil {
		conn.printer = render.New(out, false)
	}

	go conn.readLines(in)
	return conn
}

func (c *Conn) readLines(in io.Reader) {
	defer close(c.lines)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		select {
		case c.lines <- line:
		case <-c.closed:
			return
		}
	}
	// Only read after lines is closed, which orders this write before it.
	c.readErr = scanner.Err()
}

func (c *Conn) ID() string {
	return c.id
}

func (c *Conn) Printer() *render.Printer {
	return c.printer
}

func (c *Conn) Prompt(ctx context.Context, text string) (string, error) {
	c.write(text)
	if err := c.Err(); err != nil {
		return "", err
	}
	return c.ReadLine(ctx)
}

func (c *Conn) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", fmt.Errorf("%w: %v", ErrClosed, c.readErr)
			}
			return "", ErrClosed
		}
		return line, nil
	case <-c.closed:
		return "", ErrClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Conn) Println(line string) {
	c.write(line + "\n")
}

func (c *Conn) Ready() {
	c.write(c.printer.Color(c.prompt, render.Blue))
}

// Err returns the first write error. Later writes are dropped.
func (c *Conn) Err() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.writeErr
}

func (c *Conn) write(text string) {
	if text == "" {
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.writeErr != nil {
		return
	}
	if _, err := io.WriteString(c.out, text); err != nil {
		c.writeErr = err
	}
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		if c.closer != nil {
			c.closeErr = c.closer.Close()
		}
	})
	return c.closeErr
}

func (c *Conn) Done() <-chan struct{} {
	return c.closed
}
