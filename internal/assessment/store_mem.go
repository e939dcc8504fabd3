package assessment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	tests   map[string]Test
	results map[string]TestResult
}

func NewInMemoryStore() Store {
	return &memoryStore{
		tests:   map[string]Test{},
		results: map[string]TestResult{},
	}
}

func (m *memoryStore) PutTest(_ context.Context, t Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}
	m.tests[t.ID] = t
	return nil
}

func (m *memoryStore) GetTest(_ context.Context, id string) (Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return Test{}, ErrTestNotFound
	}
	return t, nil
}

func (m *memoryStore) ListTests(_ context.Context) ([]TestSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TestSummary, 0, len(m.tests))
	for _, t := range m.tests {
		out = append(out, TestSummary{ID: t.ID, Title: t.Title, Description: t.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *memoryStore) RecordResult(_ context.Context, testID, anonymousID string, answers []int, score int, band string) (TestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if answers == nil {
		answers = []int{}
	}
	r := TestResult{
		ID:          uuid.NewString(),
		TestID:      testID,
		AnonymousID: anonymousID,
		Answers:     answers,
		Score:       score,
		Band:        band,
		CreatedAt:   time.Now().Unix(),
	}
	m.results[r.ID] = r
	return r, nil
}

func (m *memoryStore) ListResults(_ context.Context, anonymousID string) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []TestResult{}
	for _, r := range m.results {
		if r.AnonymousID == anonymousID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
