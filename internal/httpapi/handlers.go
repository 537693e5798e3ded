package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"quiz-session/internal/quiz"
)

func (a *API) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listQuizzes(w, r)
	case http.MethodPost:
		a.createQuiz(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (a *API) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.getQuiz(w, r, id)
	case http.MethodPut:
		a.updateQuiz(w, r, id)
	case http.MethodDelete:
		a.deleteQuiz(w, r, id)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) listQuizzes(w http.ResponseWriter, r *http.Request) {
	items, err := a.repo.List(r.Context())
	if err != nil {
		a.logger.Error("list quizzes", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []quiz.Item{}
	}

	writeJSON(w, http.StatusOK, quizzesResponse{
		Count:   len(items),
		Quizzes: items,
	})
}

func (a *API) createQuiz(w http.ResponseWriter, r *http.Request) {
	request, err := decodeQuiz(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	item, err := a.repo.Create(r.Context(), quiz.Item{
		Question: strings.TrimSpace(request.Question),
		Answer:   strings.TrimSpace(request.Answer),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	a.logger.Info("quiz created", zap.Int64("quiz_id", item.ID))
	writeJSON(w, http.StatusCreated, item)
}

func (a *API) getQuiz(w http.ResponseWriter, r *http.Request, id int64) {
	item, err := a.repo.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) updateQuiz(w http.ResponseWriter, r *http.Request, id int64) {
	request, err := decodeQuiz(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	item, err := a.repo.Update(r.Context(), quiz.Item{
		ID:       id,
		Question: strings.TrimSpace(request.Question),
		Answer:   strings.TrimSpace(request.Answer),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	a.logger.Info("quiz updated", zap.Int64("quiz_id", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (a *API) deleteQuiz(w http.ResponseWriter, r *http.Request, id int64) {
	if err := a.repo.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	a.logger.Info("quiz deleted", zap.Int64("quiz_id", id))
	w.WriteHeader(http.StatusNoContent)
}
