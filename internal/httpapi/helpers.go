package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"quiz-session/internal/quiz"
)

func writeServiceError(w http.ResponseWriter, err error) {
	var validation *quiz.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "the quiz is invalid",
			Details: validation.Problems,
		})
		return
	}

	kind, _ := quiz.KindOf(err)
	switch kind {
	case quiz.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case quiz.KindMissingArgument, quiz.KindNotANumber:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if strings.TrimSpace(raw) == "" {
		return quiz.ParseID(quiz.NoArg)
	}
	return quiz.ParseID(quiz.ArgOf(raw))
}

func decodeQuiz(r *http.Request) (quizRequest, error) {
	defer r.Body.Close()

	var request quizRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		return quizRequest{}, err
	}
	return request, nil
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethods ...string) {
	w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
