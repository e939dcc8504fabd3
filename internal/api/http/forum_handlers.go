package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/mindhaven-backend/internal/forum"
	"github.com/mindhaven/mindhaven-backend/internal/logging"
)

func CreatePostHandler(store forum.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			AnonymousID string `json:"anonymousId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		p, err := store.Create(r.Context(), req.Title, req.Content, req.AnonymousID)
		if err != nil {
			log.Error("create post", "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusCreated, p)
	}
}

func ListPostsHandler(store forum.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := store.List(r.Context())
		if err != nil {
			log.Error("list posts", "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusOK, posts)
	}
}

func GetPostHandler(store forum.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "postID")
		p, err := store.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, forum.ErrPostNotFound) {
				respondError(w, http.StatusNotFound, "post not found")
				return
			}
			log.Error("get post", "post_id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusOK, p)
	}
}

func ReplyHandler(store forum.Store, log *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "postID")
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		p, err := store.AppendReply(r.Context(), id, req.Message)
		if err != nil {
			if errors.Is(err, forum.ErrPostNotFound) {
				respondError(w, http.StatusNotFound, "post not found")
				return
			}
			log.Error("append reply", "post_id", id, "err", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond(w, http.StatusCreated, p)
	}
}
