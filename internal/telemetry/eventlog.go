package telemetry

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Sink records observability events. Appends are best-effort: callers log
// failures and move on, a lost event never fails a request.
type Sink interface {
	Append(ctx context.Context, typ, key string, data any) error
}

type EventLog struct{ db *sql.DB }

func NewEventLog(db *sql.DB) *EventLog { return &EventLog{db: db} }

func (l *EventLog) Append(ctx context.Context, typ, key string, data any) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(buf), time.Now().Unix())
	return err
}

// NopSink discards events. Used in tests.
type NopSink struct{}

func (NopSink) Append(context.Context, string, string, any) error { return nil }
