package forum

import (
	"context"
	"errors"
)

var ErrPostNotFound = errors.New("post not found")

type Store interface {
	Create(ctx context.Context, title, content, anonymousID string) (Post, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id string) (Post, error)
	// AppendReply adds one reply to the post's reply list. Prior replies are
	// left untouched; concurrent appends are last-write-wins.
	AppendReply(ctx context.Context, id, message string) (Post, error)
}
