package forum

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu    sync.RWMutex
	posts map[string]Post
	order []string // insertion order, oldest first
}

func NewInMemoryStore() Store {
	return &memoryStore{posts: map[string]Post{}}
}

func (m *memoryStore) Create(_ context.Context, title, content, anonymousID string) (Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Post{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		AnonymousID: anonymousID,
		Replies:     []Reply{},
		CreatedAt:   time.Now().Unix(),
	}
	m.posts[p.ID] = p
	m.order = append(m.order, p.ID)
	return p, nil
}

func (m *memoryStore) List(_ context.Context) ([]Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Post, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.posts[m.order[i]])
	}
	return out, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return p, nil
}

func (m *memoryStore) AppendReply(_ context.Context, id, message string) (Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	p.Replies = append(p.Replies, Reply{Message: message, CreatedAt: time.Now().Unix()})
	m.posts[id] = p
	return p, nil
}
