// Package config loads the session file that says which engines to drive,
// with which mission and at what pace.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"missionloop.ai/internal/control"
	"missionloop.ai/internal/lifecycle"
	"missionloop.ai/internal/snapshot"
)

type Config struct {
	Session     Session     `yaml:"session"`
	Agents      []AgentSpec `yaml:"agents"`
	MissionPath string      `yaml:"mission_path"`
	Scenario    string      `yaml:"scenario"`
	Record      RecordSpec  `yaml:"record"`
}

// Session holds the pacing and policy knobs of one run.
type Session struct {
	TickIntervalMs      int `yaml:"tick_interval_ms"`
	StartTimeoutS       int `yaml:"start_timeout_s"`
	StartPollIntervalMs int `yaml:"start_poll_interval_ms"`
	// BarrierTimeoutS bounds the wait for every connection to deliver a
	// fresh observation within one tick.
	BarrierTimeoutS int `yaml:"barrier_timeout_s"`

	Retry   RetrySpec   `yaml:"retry"`
	Control ControlSpec `yaml:"control"`
}

type RetrySpec struct {
	BackoffMs   int `yaml:"backoff_ms"`
	MaxAttempts int `yaml:"max_attempts"`
}

type ControlSpec struct {
	RampMax      float64 `yaml:"ramp_max"`
	StopDistance float64 `yaml:"stop_distance"`
}

// AgentSpec is one connection. Agents are started in list order; the first
// entry is the primary (role 0).
type AgentSpec struct {
	Name            string                   `yaml:"name"`
	URL             string                   `yaml:"url"`
	ObservableRange snapshot.ObservableRange `yaml:"observable_range"`
}

type RecordSpec struct {
	Dir     string `yaml:"dir"`
	IndexDB string `yaml:"index_db"`
}

func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("session config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("session config: %w", err)
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		Session:  DefaultSession(),
		Scenario: "follow",
	}
}

func DefaultSession() Session {
	return Session{
		TickIntervalMs:      50,
		StartTimeoutS:       120,
		StartPollIntervalMs: 100,
		BarrierTimeoutS:     10,
		Retry: RetrySpec{
			BackoffMs:   int(lifecycle.DefaultBackoff / time.Millisecond),
			MaxAttempts: lifecycle.DefaultMaxAttempts,
		},
		Control: ControlSpec{
			RampMax:      control.DefaultRampMax,
			StopDistance: control.DefaultStopDistance,
		},
	}
}

func (c *Config) Normalize() {
	c.Session.Normalize()
	c.MissionPath = strings.TrimSpace(c.MissionPath)
	c.Scenario = strings.ToLower(strings.TrimSpace(c.Scenario))
	if c.Scenario == "" {
		c.Scenario = "follow"
	}
	for i := range c.Agents {
		c.Agents[i].Name = strings.TrimSpace(c.Agents[i].Name)
		c.Agents[i].URL = strings.TrimSpace(c.Agents[i].URL)
	}
}

func (s *Session) Normalize() {
	d := DefaultSession()
	if s.TickIntervalMs < 0 {
		s.TickIntervalMs = 0
	}
	if s.StartTimeoutS <= 0 {
		s.StartTimeoutS = d.StartTimeoutS
	}
	if s.StartPollIntervalMs <= 0 {
		s.StartPollIntervalMs = d.StartPollIntervalMs
	}
	if s.BarrierTimeoutS <= 0 {
		s.BarrierTimeoutS = d.BarrierTimeoutS
	}
	if s.Retry.BackoffMs <= 0 {
		s.Retry.BackoffMs = d.Retry.BackoffMs
	}
	if s.Retry.MaxAttempts <= 0 {
		s.Retry.MaxAttempts = d.Retry.MaxAttempts
	}
	if s.Control.RampMax <= 0 {
		s.Control.RampMax = d.Control.RampMax
	}
	if s.Control.StopDistance < 0 {
		s.Control.StopDistance = d.Control.StopDistance
	}
}

func (c Config) Validate() error {
	if len(c.Agents) == 0 {
		return fmt.Errorf("at least one agent is required")
	}
	seen := map[string]bool{}
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agents[%d]: missing name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate agent name %q", a.Name)
		}
		seen[a.Name] = true
		if a.URL == "" {
			return fmt.Errorf("agent %q: missing url", a.Name)
		}
		if !strings.HasPrefix(a.URL, "ws://") && !strings.HasPrefix(a.URL, "wss://") {
			return fmt.Errorf("agent %q: url must be ws:// or wss://", a.Name)
		}
		if err := a.ObservableRange.Validate(); err != nil {
			return fmt.Errorf("agent %q: %w", a.Name, err)
		}
	}
	return nil
}

// ApplyEnv fills unset fields from MISSIONLOOP_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if strings.TrimSpace(*dst) != "" {
			return
		}
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.MissionPath, "MISSIONLOOP_MISSION")
	set(&c.Record.Dir, "MISSIONLOOP_RECORD_DIR")
	set(&c.Record.IndexDB, "MISSIONLOOP_INDEX_DB")
}

func (s Session) TickInterval() time.Duration {
	return time.Duration(s.TickIntervalMs) * time.Millisecond
}

func (s Session) BarrierTimeout() time.Duration {
	return time.Duration(s.BarrierTimeoutS) * time.Second
}

func (s Session) WaitOptions() lifecycle.WaitOptions {
	return lifecycle.WaitOptions{
		Timeout:  time.Duration(s.StartTimeoutS) * time.Second,
		Interval: time.Duration(s.StartPollIntervalMs) * time.Millisecond,
	}
}

func (s Session) RetryPolicy() lifecycle.RetryPolicy {
	return lifecycle.RetryPolicy{
		Backoff:     time.Duration(s.Retry.BackoffMs) * time.Millisecond,
		MaxAttempts: s.Retry.MaxAttempts,
	}
}

func (s Session) Law() control.Law {
	return control.Law{RampMax: s.Control.RampMax, StopDistance: s.Control.StopDistance}
}
