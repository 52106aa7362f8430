package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"missionloop.ai/internal/geom"
)

func TestWriterRoundTripAndSummary(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "s1")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if err := w.BeginSession(SessionHeader{
		SessionID: "s1",
		StartedAt: now,
		Agents:    []AgentInfo{{Name: "computer", Role: 0}, {Name: "human", Role: 1}},
	}); err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	ticks := []TickRecord{
		{SessionID: "s1", Tick: 1, At: now, Agents: []AgentTick{
			{Name: "computer", Observations: 1, Position: geom.Vec(0, 4, 0), Commands: []string{"move 1"}},
			{Name: "human", Observations: 2, DecodeError: "grid size mismatch"},
		}},
		{SessionID: "s1", Tick: 2, At: now.Add(50 * time.Millisecond), Agents: []AgentTick{
			{Name: "computer", Observations: 1, Position: geom.Vec(0, 4, 3), Commands: []string{"move 1", "turn 0"}},
			{Name: "human", Observations: 1, Position: geom.Vec(1, 4, 1)},
		}},
	}
	for _, tr := range ticks {
		if err := w.RecordTick(tr); err != nil {
			t.Fatalf("RecordTick: %v", err)
		}
	}
	if err := w.EndSession(SessionFooter{SessionID: "s1", EndedAt: now.Add(time.Second), Ticks: 2, DecodeErrors: 1}); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	paths, err := ListSessions(dir)
	if err != nil || len(paths) != 1 || filepath.Base(paths[0]) != FileName("s1") {
		t.Fatalf("ListSessions=%v err=%v", paths, err)
	}
	s, err := ReadSession(paths[0])
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if s.Header.SessionID != "s1" || len(s.Ticks) != 2 || s.Footer == nil || s.Footer.Ticks != 2 {
		t.Fatalf("session=%+v", s)
	}
	if s.Ticks[0].Type != TypeTick {
		t.Fatalf("tick type=%q", s.Ticks[0].Type)
	}

	sum := Summarize(s)
	if len(sum) != 2 {
		t.Fatalf("summary=%+v", sum)
	}
	c, h := sum[0], sum[1]
	if c.Name != "computer" || c.Ticks != 2 || c.Commands != 3 || c.Distance != 3 {
		t.Fatalf("computer=%+v", c)
	}
	if h.DecodeErrors != 1 || h.Observations != 3 || h.Distance != 0 {
		t.Fatalf("human=%+v", h)
	}
}

func TestReadSession_Errors(t *testing.T) {
	dir := t.TempDir()

	w, _ := NewWriter(dir, "headless")
	if err := w.RecordTick(TickRecord{SessionID: "headless", Tick: 1}); err != nil {
		t.Fatalf("RecordTick: %v", err)
	}
	_ = w.Close()
	if _, err := ReadSession(w.Path()); err == nil || !strings.Contains(err.Error(), "missing session header") {
		t.Fatalf("err=%v", err)
	}

	if _, err := ReadSession(filepath.Join(dir, "nope.jsonl.zst")); !os.IsNotExist(err) {
		t.Fatalf("err=%v want not-exist", err)
	}
}

func TestNewWriter_Validation(t *testing.T) {
	if _, err := NewWriter("", "x"); err == nil {
		t.Fatalf("empty dir accepted")
	}
	if _, err := NewWriter(t.TempDir(), " "); err == nil {
		t.Fatalf("empty session id accepted")
	}
}

func TestEndSession_WithoutBeginLeavesNoFile(t *testing.T) {
	w, _ := NewWriter(t.TempDir(), "never")
	if err := w.EndSession(SessionFooter{SessionID: "never", Error: "startup failed"}); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if _, err := os.Stat(w.Path()); !os.IsNotExist(err) {
		t.Fatalf("stat err=%v, want no file", err)
	}
}
