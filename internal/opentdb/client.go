// Package opentdb fetches trivia questions from the Open Trivia Database and
// turns them into quiz items.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"quiz-session/internal/quiz"
)

const (
	apiURL         = "https://opentdb.com/api.php"
	defaultAmount  = 10
	maxAmount      = 50
	defaultTimeout = 10 * time.Second
)

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Item converts the question to a quiz item. The API returns HTML-escaped
// text; only the correct answer is kept.
func (q RawQuestion) Item() quiz.Item {
	return quiz.Item{
		Question: strings.TrimSpace(html.UnescapeString(q.Question)),
		Answer:   strings.TrimSpace(html.UnescapeString(q.CorrectAnswer)),
	}
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient uses httpClient for requests, or a client with a short timeout
// when nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    apiURL,
	}
}

func (c *Client) FetchQuestions(ctx context.Context, amount int) ([]RawQuestion, error) {
	if amount <= 0 {
		amount = defaultAmount
	}
	if amount > maxAmount {
		amount = maxAmount
	}

	reqURL := c.baseURL + "?amount=" + strconv.Itoa(amount)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build opentdb request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call opentdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}

	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response_code=%d", payload.ResponseCode)
	}

	return payload.Results, nil
}

// Import fetches amount questions and stores each one in repo. Questions
// that do not make a valid item are skipped. It returns the created items.
func (c *Client) Import(ctx context.Context, repo quiz.Repository, amount int) ([]quiz.Item, error) {
	questions, err := c.FetchQuestions(ctx, amount)
	if err != nil {
		return nil, err
	}

	created := make([]quiz.Item, 0, len(questions))
	for _, question := range questions {
		item := question.Item()
		if item.Validate() != nil {
			continue
		}
		stored, err := repo.Create(ctx, item)
		if err != nil {
			return created, fmt.Errorf("store imported question: %w", err)
		}
		created = append(created, stored)
	}
	return created, nil
}
