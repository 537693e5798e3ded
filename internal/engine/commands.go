package engine

import (
	"context"
	"fmt"
	"strings"

	"quiz-session/internal/quiz"
	"quiz-session/internal/render"
	"quiz-session/internal/session"
)

var helpLines = []string{
	"Commands:",
	"  h|help - Show this help.",
	"  list - List the existing quizzes.",
	"  show <id> - Show the question and the answer of the given quiz.",
	"  add - Add a new quiz interactively.",
	"  delete <id> - Delete the given quiz.",
	"  edit <id> - Edit the given quiz.",
	"  test <id> - Test the given quiz.",
	"  p|play - Play: answer every quiz in random order.",
	"  credits - Credits.",
	"  q|quit - Leave the session.",
}

func (e *Engine) Help(_ context.Context, s session.Prompter) error {
	for _, line := range helpLines {
		s.Println(line)
	}
	return nil
}

func (e *Engine) Credits(_ context.Context, s session.Prompter) error {
	s.Println("Authors:")
	for _, line := range e.credits {
		s.Println(s.Printer().Color(line, render.Green))
	}
	return nil
}

func (e *Engine) List(ctx context.Context, s session.Prompter) error {
	items, err := e.repo.List(ctx)
	if err != nil {
		return quiz.RepositoryError(err)
	}

	if len(items) == 0 {
		s.Println("There are no quizzes.")
		return nil
	}
	for _, item := range items {
		s.Println(fmt.Sprintf(" [%s]: %s", idLabel(s.Printer(), item.ID), item.Question))
	}
	return nil
}

// Show prints the question and answer of one item.
func (e *Engine) Show(ctx context.Context, s session.Prompter, arg quiz.Arg) error {
	id, err := quiz.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := e.repo.Get(ctx, id)
	if err != nil {
		return quiz.RepositoryError(err)
	}

	s.Println(formatItem(s.Printer(), item))
	return nil
}

// Test asks the question of one item and grades a single answer.
func (e *Engine) Test(ctx context.Context, s session.Prompter, arg quiz.Arg) error {
	id, err := quiz.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := e.repo.Get(ctx, id)
	if err != nil {
		return quiz.RepositoryError(err)
	}

	p := s.Printer()
	reply, err := s.Prompt(ctx, questionPrompt(p, item))
	if err != nil {
		return err
	}

	if answerMatches(reply, item.Answer) {
		s.Println("Your answer is correct.")
		s.Println(p.Banner("Correct", render.Green))
	} else {
		s.Println("Your answer is incorrect.")
		s.Println(p.Banner("Incorrect", render.Red))
	}
	return nil
}

func (e *Engine) Add(ctx context.Context, s session.Prompter) error {
	p := s.Printer()

	question, err := s.Prompt(ctx, p.Color("Enter a question: ", render.Red))
	if err != nil {
		return err
	}
	answer, err := s.Prompt(ctx, p.Color("Enter the answer: ", render.Red))
	if err != nil {
		return err
	}

	item, err := e.repo.Create(ctx, quiz.Item{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	})
	if err != nil {
		return quiz.RepositoryError(err)
	}

	s.Println(fmt.Sprintf("%s: %s %s %s", p.Color("Added", render.Magenta), item.Question, p.Color("=>", render.Magenta), item.Answer))
	return nil
}

// Edit replaces the question and answer of an item. An empty reply keeps
// the current value.
func (e *Engine) Edit(ctx context.Context, s session.Prompter, arg quiz.Arg) error {
	id, err := quiz.ParseID(arg)
	if err != nil {
		return err
	}

	item, err := e.repo.Get(ctx, id)
	if err != nil {
		return quiz.RepositoryError(err)
	}

	p := s.Printer()
	question, err := s.Prompt(ctx, p.Color(fmt.Sprintf("Enter the question [%s]: ", item.Question), render.Red))
	if err != nil {
		return err
	}
	answer, err := s.Prompt(ctx, p.Color(fmt.Sprintf("Enter the answer [%s]: ", item.Answer), render.Red))
	if err != nil {
		return err
	}

	if question = strings.TrimSpace(question); question != "" {
		item.Question = question
	}
	if answer = strings.TrimSpace(answer); answer != "" {
		item.Answer = answer
	}

	item, err = e.repo.Update(ctx, item)
	if err != nil {
		return quiz.RepositoryError(err)
	}

	s.Println(fmt.Sprintf(" Quiz %s changed to: %s %s %s", idLabel(p, item.ID), item.Question, p.Color("=>", render.Magenta), item.Answer))
	return nil
}

func (e *Engine) Delete(ctx context.Context, s session.Prompter, arg quiz.Arg) error {
	id, err := quiz.ParseID(arg)
	if err != nil {
		return err
	}

	if err := e.repo.Delete(ctx, id); err != nil {
		return quiz.RepositoryError(err)
	}

	s.Println(fmt.Sprintf(" Quiz %s deleted.", idLabel(s.Printer(), id)))
	return nil
}

func idLabel(p *render.Printer, id int64) string {
	return p.Color(fmt.Sprintf("%d", id), render.Magenta)
}

func formatItem(p *render.Printer, item quiz.Item) string {
	return fmt.Sprintf(" [%s]: %s %s %s", idLabel(p, item.ID), item.Question, p.Color("=>", render.Magenta), item.Answer)
}

func questionPrompt(p *render.Printer, item quiz.Item) string {
	return p.Color(" "+item.Question+" ", render.Red)
}
