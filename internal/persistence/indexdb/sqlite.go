// Package indexdb keeps a queryable SQLite index of recorded sessions. The
// compressed recordings remain the source of truth; the index may drop tick
// rows under load.
package indexdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"missionloop.ai/internal/persistence/record"
)

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool

	dropTick atomic.Uint64
}

type reqKind int

const (
	reqBegin reqKind = iota + 1
	reqTick
	reqEnd
	reqFlush
)

type req struct {
	kind reqKind

	begin record.SessionHeader
	tick  record.TickRecord
	end   record.SessionFooter
	done  chan struct{}
}

type Stats struct {
	QueueDepth    int
	QueueCapacity int
	DropTickTotal uint64
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{db: db, ch: make(chan req, 65536)}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT,
			scenario TEXT NOT NULL,
			tick_interval_ms INTEGER NOT NULL,
			catalog_digest TEXT NOT NULL,
			agents_json TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			decode_errors INTEGER NOT NULL DEFAULT 0,
			error TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS agent_ticks (
			session_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			agent TEXT NOT NULL,
			seq INTEGER NOT NULL,
			observations INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			z REAL NOT NULL,
			yaw REAL NOT NULL,
			pitch REAL NOT NULL,
			entities INTEGER NOT NULL,
			commands INTEGER NOT NULL,
			PRIMARY KEY (session_id, tick, agent)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_agent_ticks_agent ON agent_ticks(session_id, agent, tick);`,
		`CREATE TABLE IF NOT EXISTS decode_errors (
			session_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			agent TEXT NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (session_id, tick, agent)
		);`,
		`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1');`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

func (s *SQLiteIndex) Stats() Stats {
	return Stats{
		QueueDepth:    len(s.ch),
		QueueCapacity: cap(s.ch),
		DropTickTotal: s.dropTick.Load(),
	}
}

// BeginSession and EndSession are never dropped; they block while the queue
// is full.
func (s *SQLiteIndex) BeginSession(h record.SessionHeader) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	s.ch <- req{kind: reqBegin, begin: h}
	return nil
}

func (s *SQLiteIndex) RecordTick(t record.TickRecord) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	select {
	case s.ch <- req{kind: reqTick, tick: t}:
	default:
		s.dropTick.Add(1)
	}
	return nil
}

func (s *SQLiteIndex) EndSession(f record.SessionFooter) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	s.ch <- req{kind: reqEnd, end: f}
	return nil
}

// Flush waits until everything queued so far is committed.
func (s *SQLiteIndex) Flush(ctx context.Context) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	done := make(chan struct{})
	select {
	case s.ch <- req{kind: reqFlush, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()

	insertSession, _ := s.db.Prepare(`INSERT OR REPLACE INTO sessions(session_id,started_at,scenario,tick_interval_ms,catalog_digest,agents_json) VALUES(?,?,?,?,?,?)`)
	insertAgentTick, _ := s.db.Prepare(`INSERT OR REPLACE INTO agent_ticks(session_id,tick,agent,seq,observations,x,y,z,yaw,pitch,entities,commands) VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`)
	insertDecodeError, _ := s.db.Prepare(`INSERT OR REPLACE INTO decode_errors(session_id,tick,agent,message) VALUES(?,?,?,?)`)
	updateSession, _ := s.db.Prepare(`UPDATE sessions SET ended_at=?, ticks=?, decode_errors=?, error=? WHERE session_id=?`)
	defer func() {
		for _, st := range []*sql.Stmt{insertSession, insertAgentTick, insertDecodeError, updateSession} {
			if st != nil {
				_ = st.Close()
			}
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 500
		commitMaxWait = time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		_ = tx.Commit()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func() {
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	exec := func(st *sql.Stmt, args ...any) bool {
		if st == nil {
			return false
		}
		if _, err := tx.Stmt(st).Exec(args...); err != nil {
			rollback()
			return false
		}
		opCount++
		return true
	}

	for r := range s.ch {
		if r.kind == reqFlush {
			commit()
			close(r.done)
			continue
		}
		begin()
		if tx == nil {
			continue
		}
		switch r.kind {
		case reqBegin:
			h := r.begin
			agents, _ := json.Marshal(h.Agents)
			exec(insertSession,
				h.SessionID,
				h.StartedAt.UTC().Format(time.RFC3339Nano),
				h.Scenario,
				h.TickIntervalMs,
				h.CatalogDigest,
				string(agents),
			)

		case reqTick:
			t := r.tick
			for _, a := range t.Agents {
				ok := exec(insertAgentTick,
					t.SessionID,
					int64(t.Tick),
					a.Name,
					int64(a.Seq),
					a.Observations,
					a.Position.X, a.Position.Y, a.Position.Z,
					a.POV.Yaw, a.POV.Pitch,
					a.Entities,
					len(a.Commands),
				)
				if ok && a.DecodeError != "" {
					ok = exec(insertDecodeError, t.SessionID, int64(t.Tick), a.Name, a.DecodeError)
				}
				if !ok {
					break
				}
			}

		case reqEnd:
			f := r.end
			var errText any
			if f.Error != "" {
				errText = f.Error
			}
			if exec(updateSession,
				f.EndedAt.UTC().Format(time.RFC3339Nano),
				int64(f.Ticks),
				f.DecodeErrors,
				errText,
				f.SessionID,
			) {
				commit()
			}
		}
		if tx != nil && (opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait) {
			commit()
		}
	}

	commit()
}
