package indexdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/persistence/record"
)

func TestSQLiteIndex_SessionLifecycle(t *testing.T) {
	idx, err := OpenSQLite(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer idx.Close()

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	_ = idx.BeginSession(record.SessionHeader{
		SessionID:     "s1",
		StartedAt:     start,
		Scenario:      "follow",
		CatalogDigest: "abc",
		Agents:        []record.AgentInfo{{Name: "computer"}, {Name: "human", Role: 1}},
	})
	for tick := uint64(1); tick <= 3; tick++ {
		human := record.AgentTick{Name: "human", Observations: 1}
		if tick == 2 {
			human.DecodeError = "missing field XPos"
		}
		_ = idx.RecordTick(record.TickRecord{
			SessionID: "s1",
			Tick:      tick,
			Agents: []record.AgentTick{
				{Name: "computer", Seq: tick, Observations: 1, Position: geom.Vec(float64(tick), 4, 0), Commands: []string{"move 1"}},
				human,
			},
		})
	}
	_ = idx.EndSession(record.SessionFooter{SessionID: "s1", EndedAt: start.Add(time.Minute), Ticks: 3, DecodeErrors: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := idx.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	sessions, err := idx.Sessions(ctx)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions=%d", len(sessions))
	}
	s := sessions[0]
	if s.SessionID != "s1" || s.Ticks != 3 || s.DecodeErrors != 1 || s.EndedAt == nil || s.Scenario != "follow" {
		t.Fatalf("session=%+v", s)
	}

	n, err := idx.AgentTickCount(ctx, "s1", "computer")
	if err != nil || n != 3 {
		t.Fatalf("computer ticks=%d err=%v", n, err)
	}
	des, err := idx.DecodeErrors(ctx, "s1")
	if err != nil || len(des) != 1 || des[0].Tick != 2 || des[0].Agent != "human" {
		t.Fatalf("decode errors=%+v err=%v", des, err)
	}
}

func TestSQLiteIndex_DropsTicksWhenFull(t *testing.T) {
	s := &SQLiteIndex{ch: make(chan req, 1)}
	s.ch <- req{kind: reqTick}

	_ = s.RecordTick(record.TickRecord{Tick: 2})
	_ = s.RecordTick(record.TickRecord{Tick: 3})

	st := s.Stats()
	if st.DropTickTotal != 2 {
		t.Fatalf("DropTickTotal=%d want 2", st.DropTickTotal)
	}
	if st.QueueDepth != 1 || st.QueueCapacity != 1 {
		t.Fatalf("queue stats mismatch: depth=%d cap=%d", st.QueueDepth, st.QueueCapacity)
	}
}

func TestSQLiteIndex_NilAndClosedAreNoops(t *testing.T) {
	var nilIdx *SQLiteIndex
	if err := nilIdx.RecordTick(record.TickRecord{}); err != nil {
		t.Fatalf("nil RecordTick: %v", err)
	}

	idx, err := OpenSQLite(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := idx.BeginSession(record.SessionHeader{SessionID: "late"}); err != nil {
		t.Fatalf("BeginSession after close: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
