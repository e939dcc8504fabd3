package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/mindhaven/mindhaven-backend/internal/logging"
)

type fakeRelay struct {
	reply string
	err   error
	calls int
}

func (f *fakeRelay) Relay(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestChatMissingMessage(t *testing.T) {
	relay := &fakeRelay{reply: "hi"}
	h := ChatHandler(relay, logging.NewNop())

	for _, body := range []string{`{}`, `{"message":""}`} {
		w := doJSON(t, h, "POST", "/chat", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400 for %s", w.Code, body)
		}
		decodeErrorBody(t, w)
	}
	if relay.calls != 0 {
		t.Fatalf("relay called %d times before validation, want 0", relay.calls)
	}
}

func TestChatRelayFailure(t *testing.T) {
	relay := &fakeRelay{err: errors.New("connection refused")}
	h := ChatHandler(relay, logging.NewNop())

	w := doJSON(t, h, "POST", "/chat", `{"message":"I feel overwhelmed"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	if msg := decodeErrorBody(t, w); msg == "connection refused" {
		t.Fatal("upstream error must not leak to the client")
	}
}

func TestChatSuccess(t *testing.T) {
	relay := &fakeRelay{reply: "that sounds really hard"}
	h := ChatHandler(relay, logging.NewNop())

	w := doJSON(t, h, "POST", "/chat", `{"message":"I feel overwhelmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["reply"] != "that sounds really hard" {
		t.Fatalf("unexpected reply: %q", out["reply"])
	}
	if relay.calls != 1 {
		t.Fatalf("relay called %d times, want 1", relay.calls)
	}
}
