package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/mindhaven-backend/internal/assessment"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
)

// captureSink records appended events for assertions.
type captureSink struct {
	events []capturedEvent
}

type capturedEvent struct {
	Typ  string
	Key  string
	Data map[string]any
}

func (c *captureSink) Append(_ context.Context, typ, key string, data any) error {
	m, _ := data.(map[string]any)
	c.events = append(c.events, capturedEvent{Typ: typ, Key: key, Data: m})
	return nil
}

func seededStore(t *testing.T) assessment.Store {
	t.Helper()
	store := assessment.NewInMemoryStore()
	opts := []assessment.Option{
		{Text: "never", Score: 0},
		{Text: "sometimes", Score: 5},
		{Text: "often", Score: 10},
		{Text: "always", Score: 20},
	}
	err := store.PutTest(context.Background(), assessment.Test{
		ID:          "screen",
		Title:       "Screen",
		Description: "two-question screen",
		Questions: []assessment.Question{
			{Text: "q1", Options: opts},
			{Text: "q2", Options: opts},
		},
	})
	if err != nil {
		t.Fatalf("put test: %v", err)
	}
	return store
}

func newAssessmentRouter(store assessment.Store, sink *captureSink) *chi.Mux {
	log := logging.NewNop()
	r := chi.NewRouter()
	r.Get("/tests", ListTestsHandler(store, log))
	r.Get("/tests/{testID}", GetTestHandler(store, log))
	r.Post("/tests/{testID}/submit", SubmitTestHandler(store, sink, log))
	r.Get("/results", ListResultsHandler(store, log))
	return r
}

func TestListTestsSummaryOnly(t *testing.T) {
	r := newAssessmentRouter(seededStore(t), &captureSink{})
	w := doJSON(t, r, "GET", "/tests", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0]["title"] != "Screen" {
		t.Fatalf("unexpected list: %+v", out)
	}
	if _, ok := out[0]["questions"]; ok {
		t.Fatal("summary must not include questions")
	}
}

func TestGetTestNotFound(t *testing.T) {
	r := newAssessmentRouter(seededStore(t), &captureSink{})
	w := doJSON(t, r, "GET", "/tests/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	decodeErrorBody(t, w)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantScore   float64
		wantBand    string
		wantPartial bool
	}{
		{name: "high", body: `{"answers":[3,2],"anonymousId":"anon-1"}`, wantScore: 30, wantBand: "High"},
		{name: "low", body: `{"answers":[0,0],"anonymousId":"anon-1"}`, wantScore: 0, wantBand: "Low"},
		{name: "partial", body: `{"answers":[1],"anonymousId":"anon-1"}`, wantScore: 5, wantBand: "Low", wantPartial: true},
		{name: "empty", body: `{"answers":[],"anonymousId":"anon-1"}`, wantScore: 0, wantBand: "Low", wantPartial: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSink{}
			r := newAssessmentRouter(seededStore(t), sink)

			w := doJSON(t, r, "POST", "/tests/screen/submit", tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status %d, want 200 (%s)", w.Code, w.Body.String())
			}
			var out map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out["score"] != tc.wantScore || out["resultSummary"] != tc.wantBand {
				t.Fatalf("got %v, want score %v band %q", out, tc.wantScore, tc.wantBand)
			}

			if len(sink.events) != 1 {
				t.Fatalf("got %d events, want 1", len(sink.events))
			}
			ev := sink.events[0]
			if ev.Typ != "result_recorded" || ev.Key == "" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.Data["partial"] != tc.wantPartial {
				t.Fatalf("event partial = %v, want %v", ev.Data["partial"], tc.wantPartial)
			}
		})
	}
}

func TestSubmitUnknownTest(t *testing.T) {
	sink := &captureSink{}
	r := newAssessmentRouter(seededStore(t), sink)
	w := doJSON(t, r, "POST", "/tests/missing/submit", `{"answers":[0],"anonymousId":"a"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	decodeErrorBody(t, w)
	if len(sink.events) != 0 {
		t.Fatal("no event should be recorded for an unknown test")
	}
}

func TestListResults(t *testing.T) {
	store := seededStore(t)
	r := newAssessmentRouter(store, &captureSink{})

	doJSON(t, r, "POST", "/tests/screen/submit", `{"answers":[3,3],"anonymousId":"anon-9"}`)

	w := doJSON(t, r, "GET", "/results?anonymousId=anon-9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var results []assessment.TestResult
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 1 || results[0].Score != 40 || results[0].Band != "High" {
		t.Fatalf("unexpected results: %+v", results)
	}

	w = doJSON(t, r, "GET", "/results", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400 without anonymousId", w.Code)
	}
}
