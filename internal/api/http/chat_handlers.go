package http

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven/mindhaven-backend/internal/chat"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
)

// ChatHandler relays one message to the completion provider. The message
// presence check runs before any outbound call; upstream failures are logged
// with their cause and surfaced as a generic 500.
func ChatHandler(client chat.Client, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.Message == "" {
			respondError(w, http.StatusBadRequest, "message required")
			return
		}

		reply, err := client.Relay(r.Context(), req.Message)
		if err != nil {
			log.Error("chat relay", "err", err)
			respondError(w, http.StatusInternalServerError, "assistant unavailable")
			return
		}
		respond(w, http.StatusOK, map[string]string{"reply": reply})
	}
}
