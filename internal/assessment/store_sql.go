package assessment

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

func (s *SQLStore) PutTest(ctx context.Context, t Test) error {
	qj, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tests (id,title,description,questions_json,created_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description, questions_json=EXCLUDED.questions_json`,
		t.ID, t.Title, t.Description, string(qj), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert test: %w", err)
	}
	return nil
}

func (s *SQLStore) GetTest(ctx context.Context, id string) (Test, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,description,questions_json,created_at FROM tests WHERE id=$1`, id)
	var t Test
	var qjson string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &qjson, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, ErrTestNotFound
		}
		return Test{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &t.Questions); err != nil {
		return Test{}, fmt.Errorf("decode questions: %w", err)
	}
	return t, nil
}

func (s *SQLStore) ListTests(ctx context.Context) ([]TestSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,description FROM tests ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	defer rows.Close()

	out := []TestSummary{}
	for rows.Next() {
		var ts TestSummary
		if err := rows.Scan(&ts.ID, &ts.Title, &ts.Description); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (s *SQLStore) RecordResult(ctx context.Context, testID, anonymousID string, answers []int, score int, band string) (TestResult, error) {
	r := TestResult{
		ID:          uuid.NewString(),
		TestID:      testID,
		AnonymousID: anonymousID,
		Answers:     answers,
		Score:       score,
		Band:        band,
		CreatedAt:   time.Now().Unix(),
	}
	if r.Answers == nil {
		r.Answers = []int{}
	}
	aj, _ := json.Marshal(r.Answers)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO test_results (id,test_id,anonymous_id,answers_json,score,band,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		r.ID, r.TestID, r.AnonymousID, string(aj), r.Score, r.Band, r.CreatedAt)
	if err != nil {
		return TestResult{}, fmt.Errorf("insert result: %w", err)
	}
	return r, nil
}

func (s *SQLStore) ListResults(ctx context.Context, anonymousID string) ([]TestResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,test_id,anonymous_id,answers_json,score,band,created_at
		 FROM test_results WHERE anonymous_id=$1 ORDER BY created_at DESC`, anonymousID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	out := []TestResult{}
	for rows.Next() {
		var r TestResult
		var ajson string
		if err := rows.Scan(&r.ID, &r.TestID, &r.AnonymousID, &ajson, &r.Score, &r.Band, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ajson), &r.Answers); err != nil {
			r.Answers = []int{}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
