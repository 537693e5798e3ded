package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"

	"quiz-session/internal/quiz"
	"quiz-session/internal/render"
	"quiz-session/internal/session"
)

// State is a step of the play game.
type State int

const (
	StateLoading State = iota
	StateAsking
	StateWon
	StateLost
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAsking:
		return "asking"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the game is over in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateEmpty || s == StateError
}

// GameResult summarizes a finished game.
type GameResult struct {
	State State
	Score int
	Asked int
}

// PlaySession is the state of one game: the items not asked yet, taken
// from a snapshot at game start, and the running score.
type PlaySession struct {
	remaining []quiz.Item
	score     int
	asked     int
	rng       *rand.Rand
}

func newPlaySession(snapshot []quiz.Item, rng *rand.Rand) *PlaySession {
	return &PlaySession{
		remaining: slices.Clone(snapshot),
		rng:       rng,
	}
}

// next draws one remaining item uniformly at random and removes it, so no
// item is asked twice in a game.
func (g *PlaySession) next() quiz.Item {
	idx := g.rng.IntN(len(g.remaining))
	item := g.remaining[idx]
	g.remaining = slices.Delete(g.remaining, idx, idx+1)
	g.asked++
	return item
}

func (g *PlaySession) exhausted() bool {
	return len(g.remaining) == 0
}

func (g *PlaySession) result(state State) GameResult {
	if g == nil {
		return GameResult{State: state}
	}
	return GameResult{State: state, Score: g.score, Asked: g.asked}
}

// Play asks every stored item once, in random order, until the user gives
// a wrong answer or nothing is left. It returns once the game reached a
// terminal state; a non-nil error means the Error state.
func (e *Engine) Play(ctx context.Context, s session.Prompter) (GameResult, error) {
	p := s.Printer()
	state := StateLoading
	var game *PlaySession

	for {
		switch state {
		case StateLoading:
			snapshot, err := e.repo.List(ctx)
			if err != nil {
				return game.result(StateError), quiz.RepositoryError(err)
			}
			game = newPlaySession(snapshot, e.newRand())
			if game.exhausted() {
				state = StateEmpty
				continue
			}
			state = StateAsking

		case StateAsking:
			item := game.next()
			reply, err := s.Prompt(ctx, questionPrompt(p, item))
			if err != nil {
				return game.result(StateError), err
			}

			if !answerMatches(reply, item.Answer) {
				state = StateLost
				continue
			}

			game.score++
			s.Println(fmt.Sprintf("CORRECT - %d correct answers so far.", game.score))
			if game.exhausted() {
				state = StateWon
			}

		case StateWon:
			s.Println("Nothing more to ask.")
			return e.finishGame(s, p, game.result(StateWon)), nil

		case StateLost:
			s.Println("INCORRECT")
			return e.finishGame(s, p, game.result(StateLost)), nil

		case StateEmpty:
			s.Println("Nothing to ask.")
			return e.finishGame(s, p, game.result(StateEmpty)), nil

		default:
			return game.result(StateError), fmt.Errorf("play: unexpected state %s", state)
		}
	}
}

func (e *Engine) finishGame(s session.Prompter, p *render.Printer, result GameResult) GameResult {
	s.Println(fmt.Sprintf("End of the game. Final score: %d", result.Score))
	s.Println(p.Banner(fmt.Sprintf("%d", result.Score), render.Magenta))

	e.logger.Debug("game finished",
		zap.Stringer("state", result.State),
		zap.Int("score", result.Score),
		zap.Int("asked", result.Asked),
	)
	return result
}
