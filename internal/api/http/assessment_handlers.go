package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/mindhaven-backend/internal/assessment"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
	"github.com/mindhaven/mindhaven-backend/internal/telemetry"
)

func ListTestsHandler(store assessment.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tests, err := store.ListTests(r.Context())
		if err != nil {
			log.Error("list tests", "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusOK, tests)
	}
}

func GetTestHandler(store assessment.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "testID")
		t, err := store.GetTest(r.Context(), id)
		if err != nil {
			if errors.Is(err, assessment.ErrTestNotFound) {
				respondError(w, http.StatusNotFound, "test not found")
				return
			}
			log.Error("get test", "test_id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusOK, t)
	}
}

// SubmitTestHandler resolves the test, scores the answers, records the result
// and returns {score, resultSummary}. Malformed or partial answer lists never
// fail the submission; skipped questions contribute zero and the partial flag
// goes to the event log only.
func SubmitTestHandler(store assessment.Store, events telemetry.Sink, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "testID")
		var req struct {
			Answers     []int  `json:"answers"`
			AnonymousID string `json:"anonymousId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}

		t, err := store.GetTest(r.Context(), id)
		if err != nil {
			if errors.Is(err, assessment.ErrTestNotFound) {
				respondError(w, http.StatusNotFound, "test not found")
				return
			}
			log.Error("get test", "test_id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		outcome := assessment.Score(t, req.Answers)
		res, err := store.RecordResult(r.Context(), t.ID, req.AnonymousID, req.Answers, outcome.Score, outcome.Band)
		if err != nil {
			log.Error("record result", "test_id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := events.Append(r.Context(), "result_recorded", res.ID, map[string]any{
			"testId":  res.TestID,
			"score":   res.Score,
			"band":    res.Band,
			"partial": outcome.Partial,
		}); err != nil {
			log.Warn("event append", "result_id", res.ID, "err", err)
		}

		respond(w, http.StatusOK, map[string]any{
			"score":         res.Score,
			"resultSummary": res.Band,
		})
	}
}

func ListResultsHandler(store assessment.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anonID := r.URL.Query().Get("anonymousId")
		if anonID == "" {
			respondError(w, http.StatusBadRequest, "anonymousId required")
			return
		}
		results, err := store.ListResults(r.Context(), anonID)
		if err != nil {
			log.Error("list results", "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusOK, results)
	}
}
