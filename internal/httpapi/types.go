package httpapi

import "quiz-session/internal/quiz"

type quizRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type quizzesResponse struct {
	Count   int         `json:"count"`
	Quizzes []quiz.Item `json:"quizzes"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
