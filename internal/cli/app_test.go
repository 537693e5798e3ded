package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"quiz-session/internal/dispatch"
	"quiz-session/internal/engine"
	"quiz-session/internal/quiz"
)

func TestRunPlaysUntilQuit(t *testing.T) {
	repo := quiz.NewMemoryStore(quiz.Item{Question: "Capital of Italy", Answer: "Rome"})
	d := dispatch.New(engine.New(repo), zap.NewNop())
	in := strings.NewReader("show 1\r\ntest 1\nrome\nq\nlist\n")
	var out bytes.Buffer

	if err := Run(context.Background(), in, &out, d); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Type 'help' to see the available commands.",
		"[1]: Capital of Italy => Rome",
		"Your answer is correct.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output %q does not contain %q", text, want)
		}
	}
	if strings.Contains(text, "There are no quizzes.") || strings.Count(text, "Capital of Italy =>") != 1 {
		t.Fatalf("commands after quit ran: %q", text)
	}
	if got := strings.Count(text, "quiz > "); got != 3 {
		t.Fatalf("prompt shown %d times, want 3", got)
	}
}

func TestRunEndsWithInput(t *testing.T) {
	d := dispatch.New(engine.New(quiz.NewMemoryStore()), zap.NewNop())
	var out bytes.Buffer

	if err := Run(context.Background(), strings.NewReader("list\n"), &out, d); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "There are no quizzes.") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
