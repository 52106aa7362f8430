package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	p := writeFile(t, `
mission_path: mission.xml
agents:
  - name: human
    url: ws://127.0.0.1:10000/v1/engine
    observable_range: {x: 10, y: 5, z: 10}
  - name: computer
    url: ws://127.0.0.1:10001/v1/engine
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Session
	if s.TickInterval() != 50*time.Millisecond {
		t.Fatalf("tick interval=%s", s.TickInterval())
	}
	if w := s.WaitOptions(); w.Timeout != 120*time.Second || w.Interval != 100*time.Millisecond {
		t.Fatalf("wait options=%+v", w)
	}
	if r := s.RetryPolicy(); r.Backoff != 2*time.Second || r.MaxAttempts != 5 {
		t.Fatalf("retry=%+v", r)
	}
	if l := s.Law(); l.RampMax != 2 || l.StopDistance != 2 {
		t.Fatalf("law=%+v", l)
	}
	if cfg.Scenario != "follow" {
		t.Fatalf("scenario=%q", cfg.Scenario)
	}
	if got := cfg.Agents[0].ObservableRange.GridSize(); got != 4000 {
		t.Fatalf("grid size=%d", got)
	}
}

func TestLoad_ExplicitZeroTickInterval(t *testing.T) {
	p := writeFile(t, `
session:
  tick_interval_ms: 0
  retry: {backoff_ms: 10, max_attempts: 2}
agents:
  - {name: a, url: "ws://x/v1/engine"}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.TickInterval() != 0 {
		t.Fatalf("tick interval=%s", cfg.Session.TickInterval())
	}
	if r := cfg.Session.RetryPolicy(); r.Backoff != 10*time.Millisecond || r.MaxAttempts != 2 {
		t.Fatalf("retry=%+v", r)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"no agents", "mission_path: m.xml\n", "at least one agent"},
		{"dup", "agents:\n  - {name: a, url: 'ws://x'}\n  - {name: a, url: 'ws://y'}\n", "duplicate"},
		{"no url", "agents:\n  - {name: a}\n", "missing url"},
		{"http url", "agents:\n  - {name: a, url: 'http://x'}\n", "ws://"},
		{"bad range", "agents:\n  - {name: a, url: 'ws://x', observable_range: {x: -1, y: 0, z: 0}}\n", "non-negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err=%v want containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	cfg.Record.Dir = "keep"
	env := map[string]string{
		"MISSIONLOOP_MISSION":    "from-env.xml",
		"MISSIONLOOP_RECORD_DIR": "ignored",
		"MISSIONLOOP_INDEX_DB":   "index.db",
	}
	cfg.ApplyEnv(func(k string) string { return env[k] })
	if cfg.MissionPath != "from-env.xml" || cfg.Record.Dir != "keep" || cfg.Record.IndexDB != "index.db" {
		t.Fatalf("cfg=%+v", cfg)
	}
}
