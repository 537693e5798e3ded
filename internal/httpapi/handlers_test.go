package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"quiz-session/internal/quiz"
)

type failingRepo struct {
	quiz.Repository
}

func (failingRepo) List(context.Context) ([]quiz.Item, error) {
	return nil, quiz.RepositoryError(errors.New("disk on fire"))
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.NewDecoder(rec.Body).Decode(&value); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return value
}

func TestQuizzesCollection(t *testing.T) {
	router := NewRouter(quiz.NewMemoryStore(), nil)

	rec := serve(t, router, http.MethodGet, "/quizzes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("empty list status = %d, want 200", rec.Code)
	}
	if got := decode[quizzesResponse](t, rec); got.Count != 0 || got.Quizzes == nil {
		t.Fatalf("empty list = %+v, want zero count and non-nil slice", got)
	}

	rec = serve(t, router, http.MethodPost, "/quizzes", `{"question":" Capital of France ","answer":"Paris"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	created := decode[quiz.Item](t, rec)
	want := quiz.Item{ID: 1, Question: "Capital of France", Answer: "Paris"}
	if diff := cmp.Diff(want, created); diff != "" {
		t.Fatalf("created item mismatch (-want +got):\n%s", diff)
	}

	rec = serve(t, router, http.MethodGet, "/quizzes", "")
	listed := decode[quizzesResponse](t, rec)
	if diff := cmp.Diff(quizzesResponse{Count: 1, Quizzes: []quiz.Item{want}}, listed); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestQuizResource(t *testing.T) {
	router := NewRouter(quiz.NewMemoryStore(quiz.Item{Question: "Capital of Spain", Answer: "Madrid"}), nil)

	rec := serve(t, router, http.MethodGet, "/quizzes/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	rec = serve(t, router, http.MethodPut, "/quizzes/1", `{"question":"Capital of Portugal","answer":"Lisbon"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := decode[quiz.Item](t, rec); got.Answer != "Lisbon" || got.ID != 1 {
		t.Fatalf("updated item = %+v", got)
	}

	rec = serve(t, router, http.MethodDelete, "/quizzes/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec = serve(t, router, http.MethodGet, "/quizzes/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
	if got := decode[errorResponse](t, rec); got.Error != "there is no quiz with id=1" {
		t.Fatalf("not found error = %q", got.Error)
	}
}

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{name: "not a number", method: http.MethodGet, target: "/quizzes/abc", want: http.StatusBadRequest},
		{name: "negative id", method: http.MethodDelete, target: "/quizzes/-4", want: http.StatusBadRequest},
		{name: "missing", method: http.MethodPut, target: "/quizzes/9", body: `{"question":"q","answer":"a"}`, want: http.StatusNotFound},
		{name: "bad json", method: http.MethodPost, target: "/quizzes", body: `{"question":`, want: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, target: "/quizzes", body: `{"prompt":"q"}`, want: http.StatusBadRequest},
		{name: "collection method", method: http.MethodPatch, target: "/quizzes", want: http.StatusMethodNotAllowed},
		{name: "resource method", method: http.MethodPost, target: "/quizzes/1", want: http.StatusMethodNotAllowed},
	}

	router := NewRouter(quiz.NewMemoryStore(quiz.Item{Question: "q", Answer: "a"}), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestValidationErrorListsDetails(t *testing.T) {
	router := NewRouter(quiz.NewMemoryStore(), nil)

	rec := serve(t, router, http.MethodPost, "/quizzes", `{"question":" ","answer":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decode[errorResponse](t, rec)
	want := errorResponse{
		Error:   "the quiz is invalid",
		Details: []string{"question must not be empty", "answer must not be empty"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("validation response mismatch (-want +got):\n%s", diff)
	}
}

func TestMethodNotAllowedSetsAllow(t *testing.T) {
	rec := serve(t, NewRouter(quiz.NewMemoryStore(), nil), http.MethodPatch, "/quizzes/1", "")
	if got := rec.Header().Get("Allow"); got != "GET, PUT, DELETE" {
		t.Fatalf("Allow = %q", got)
	}
}

func TestRepositoryFailureIsInternal(t *testing.T) {
	rec := serve(t, NewRouter(failingRepo{}, nil), http.MethodGet, "/quizzes", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := decode[errorResponse](t, rec); got.Error != "request failed" {
		t.Fatalf("error = %q, want generic message", got.Error)
	}
}
