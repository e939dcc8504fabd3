package forum

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(ctx context.Context, title, content, anonymousID string) (Post, error) {
	p := Post{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		AnonymousID: anonymousID,
		Replies:     []Reply{},
		CreatedAt:   time.Now().Unix(),
	}
	rj, _ := json.Marshal(p.Replies)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (id,title,content,anonymous_id,replies_json,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Title, p.Content, p.AnonymousID, string(rj), p.CreatedAt)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,content,anonymous_id,replies_json,created_at
		 FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,content,anonymous_id,replies_json,created_at
		 FROM posts WHERE id=$1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, err
	}
	return p, nil
}

func (s *SQLStore) AppendReply(ctx context.Context, id, message string) (Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Post{}, err
	}
	p.Replies = append(p.Replies, Reply{Message: message, CreatedAt: time.Now().Unix()})
	rj, _ := json.Marshal(p.Replies)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE posts SET replies_json=$1 WHERE id=$2`, string(rj), id); err != nil {
		return Post{}, fmt.Errorf("update replies: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var p Post
	var rjson string
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AnonymousID, &rjson, &p.CreatedAt); err != nil {
		return Post{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &p.Replies); err != nil {
		p.Replies = []Reply{}
	}
	return p, nil
}
