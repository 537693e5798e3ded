// Package cli runs a quiz session on the local console.
package cli

import (
	"context"
	"io"

	"quiz-session/internal/dispatch"
	"quiz-session/internal/render"
	"quiz-session/internal/session"
)

const consoleSessionID = "console"

// Run serves one session over in and out until the user quits, the input
// ends or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, dispatcher *dispatch.Dispatcher, opts ...session.Option) error {
	printer := render.New(out, false)
	opts = append([]session.Option{session.WithPrinter(printer)}, opts...)
	sess := session.New(consoleSessionID, in, out, opts...)
	defer sess.Close()

	sess.Println(printer.Banner("Quiz", render.Green))
	sess.Println("Type 'help' to see the available commands.")
	return dispatcher.Serve(ctx, sess)
}
