package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quiz-session/internal/engine"
	"quiz-session/internal/quiz"
	"quiz-session/internal/session/sessiontest"
)

func newDispatcher(repo quiz.Repository) *Dispatcher {
	return New(engine.New(repo), zap.NewNop())
}

func capitals() *quiz.MemoryStore {
	return quiz.NewMemoryStore(
		quiz.Item{Question: "Capital of Italy", Answer: "Rome"},
		quiz.Item{Question: "Capital of Spain", Answer: "Madrid"},
	)
}

type panickingRepo struct {
	quiz.Repository
}

func (panickingRepo) List(context.Context) ([]quiz.Item, error) {
	panic("boom")
}

func TestServeReadiesOncePerCommand(t *testing.T) {
	s := sessiontest.New(
		"show 1",
		"",
		"   ",
		"show",
		"show abc",
		"show 99",
		"bogus",
		"list",
		"help",
		"credits",
	)

	err := newDispatcher(capitals()).Serve(context.Background(), s)
	require.NoError(t, err)

	// One initial prompt plus one per command line.
	require.Equal(t, 11, s.ReadyCount())
	require.False(t, s.Closed())
}

func TestServeQuitClosesWithoutPrompt(t *testing.T) {
	s := sessiontest.New("list", "quit", "show 1")

	err := newDispatcher(capitals()).Serve(context.Background(), s)
	require.NoError(t, err)

	require.True(t, s.Closed())
	require.Equal(t, 2, s.ReadyCount())
	require.NotContains(t, s.Text(), "=> Rome")
}

func TestDispatchQuitAliases(t *testing.T) {
	d := newDispatcher(capitals())
	for _, line := range []string{"q", "quit", "Q", "  QUIT  "} {
		s := sessiontest.New()
		require.True(t, d.Dispatch(context.Background(), s, line), line)
		require.Zero(t, s.ReadyCount(), line)
	}
}

func TestDispatchCommandNamesAreCaseInsensitive(t *testing.T) {
	s := sessiontest.New()

	quit := newDispatcher(capitals()).Dispatch(context.Background(), s, "SHOW 2")
	require.False(t, quit)
	require.Equal(t, []string{" [2]: Capital of Spain => Madrid"}, s.Output())
	require.Equal(t, 1, s.ReadyCount())
}

func TestDispatchReportsErrors(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: "show", want: []string{"Error: missing <id> argument"}},
		{line: "test x", want: []string{"Error: the <id> argument is not a number"}},
		{line: "delete 42", want: []string{"Error: there is no quiz with id=42"}},
		{line: "edit -1", want: []string{"Error: the <id> argument is not a number"}},
		{line: "frobnicate", want: []string{
			"Error: Unknown command: 'frobnicate'",
			"Use 'help' to see all available commands.",
		}},
	}

	d := newDispatcher(capitals())
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s := sessiontest.New()
			d.Dispatch(context.Background(), s, tt.line)
			require.Equal(t, tt.want, s.Output())
			require.Equal(t, 1, s.ReadyCount())
		})
	}
}

func TestDispatchListsEveryValidationProblem(t *testing.T) {
	repo := capitals()
	s := sessiontest.New("", " ")

	newDispatcher(repo).Dispatch(context.Background(), s, "add")

	require.Equal(t, []string{
		"Error: The quiz is invalid:",
		"Error: question must not be empty",
		"Error: answer must not be empty",
	}, s.Output())
	require.Equal(t, 1, s.ReadyCount())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestDispatchRecoversFromPanics(t *testing.T) {
	s := sessiontest.New()

	quit := newDispatcher(panickingRepo{}).Dispatch(context.Background(), s, "list")

	require.False(t, quit)
	require.Equal(t, []string{"Error: internal error: boom"}, s.Output())
	require.Equal(t, 1, s.ReadyCount())
}

func TestDispatchPlayPromptsOnlyAfterTheGame(t *testing.T) {
	repo := quiz.NewMemoryStore(quiz.Item{Question: "Capital of Italy", Answer: "Rome"})
	s := sessiontest.New("play", " ROME ", "q")

	err := newDispatcher(repo).Serve(context.Background(), s)
	require.NoError(t, err)

	require.Equal(t, []string{" Capital of Italy "}, s.Prompts())
	require.Contains(t, s.Text(), "CORRECT - 1 correct answers so far.")
	require.Contains(t, s.Text(), "Nothing more to ask.")
	require.Contains(t, s.Text(), "End of the game. Final score: 1")
	require.Equal(t, 2, s.ReadyCount())
	require.True(t, s.Closed())
}

func TestDispatchClosedMidGameIsSilent(t *testing.T) {
	s := sessiontest.New("p")

	err := newDispatcher(capitals()).Serve(context.Background(), s)
	require.NoError(t, err)

	require.NotContains(t, s.Text(), "Error:")
	require.Equal(t, 2, s.ReadyCount())
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := sessiontest.New("list")

	err := newDispatcher(capitals()).Serve(ctx, s)
	require.NoError(t, err)
	require.Equal(t, 1, s.ReadyCount())
}

func TestParseLine(t *testing.T) {
	name, arg := parseLine("  Show   12  extra")
	require.Equal(t, "show", name)
	require.Equal(t, quiz.ArgOf("12"), arg)

	name, arg = parseLine("list")
	require.Equal(t, "list", name)
	require.Equal(t, quiz.NoArg, arg)

	name, _ = parseLine("\t ")
	require.Empty(t, name)
}
