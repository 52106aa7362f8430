package indexdb

import (
	"context"
	"database/sql"
	"time"
)

type SessionRow struct {
	SessionID     string
	StartedAt     time.Time
	EndedAt       *time.Time
	Scenario      string
	CatalogDigest string
	Ticks         uint64
	DecodeErrors  int
	Error         string
}

type DecodeErrorRow struct {
	Tick    uint64
	Agent   string
	Message string
}

// Sessions lists indexed sessions, newest first.
func (s *SQLiteIndex) Sessions(ctx context.Context) ([]SessionRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT session_id, started_at, ended_at, scenario, catalog_digest, ticks, decode_errors, error
		FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var (
			r       SessionRow
			started string
			ended   sql.NullString
			errText sql.NullString
			ticks   int64
		)
		if err := rows.Scan(&r.SessionID, &started, &ended, &r.Scenario, &r.CatalogDigest, &ticks, &r.DecodeErrors, &errText); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		if ended.Valid {
			if t, err := time.Parse(time.RFC3339Nano, ended.String); err == nil {
				r.EndedAt = &t
			}
		}
		r.Ticks = uint64(ticks)
		r.Error = errText.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// AgentTickCount returns how many tick rows an agent has in a session.
func (s *SQLiteIndex) AgentTickCount(ctx context.Context, sessionID, agent string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM agent_ticks WHERE session_id=? AND agent=?`, sessionID, agent).Scan(&n)
	return n, err
}

func (s *SQLiteIndex) DecodeErrors(ctx context.Context, sessionID string) ([]DecodeErrorRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tick, agent, message FROM decode_errors WHERE session_id=? ORDER BY tick, agent`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DecodeErrorRow
	for rows.Next() {
		var (
			r    DecodeErrorRow
			tick int64
		)
		if err := rows.Scan(&tick, &r.Agent, &r.Message); err != nil {
			return nil, err
		}
		r.Tick = uint64(tick)
		out = append(out, r)
	}
	return out, rows.Err()
}
