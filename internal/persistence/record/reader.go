package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"

	"missionloop.ai/internal/geom"
)

// Session is a fully read recording. Footer is nil when the run did not
// finish cleanly.
type Session struct {
	Header SessionHeader
	Ticks  []TickRecord
	Footer *SessionFooter
}

// ListSessions returns the recording files in dir, sorted by name.
func ListSessions(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "session-") && strings.HasSuffix(name, ".jsonl.zst") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, filepath.Join(dir, name))
	}
	return out, nil
}

func ReadSession(path string) (Session, error) {
	var s Session
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return s, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	sawHeader := false
	for line := 1; sc.Scan(); line++ {
		b := sc.Bytes()
		var base struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(b, &base); err != nil {
			return s, fmt.Errorf("%s:%d: %w", filepath.Base(path), line, err)
		}
		switch base.Type {
		case TypeHeader:
			if err := json.Unmarshal(b, &s.Header); err != nil {
				return s, fmt.Errorf("%s:%d: header: %w", filepath.Base(path), line, err)
			}
			sawHeader = true
		case TypeTick:
			var t TickRecord
			if err := json.Unmarshal(b, &t); err != nil {
				return s, fmt.Errorf("%s:%d: tick: %w", filepath.Base(path), line, err)
			}
			s.Ticks = append(s.Ticks, t)
		case TypeFooter:
			var ft SessionFooter
			if err := json.Unmarshal(b, &ft); err != nil {
				return s, fmt.Errorf("%s:%d: footer: %w", filepath.Base(path), line, err)
			}
			s.Footer = &ft
		default:
			return s, fmt.Errorf("%s:%d: unknown record type %q", filepath.Base(path), line, base.Type)
		}
	}
	if err := sc.Err(); err != nil {
		return s, err
	}
	if !sawHeader {
		return s, fmt.Errorf("%s: missing session header", filepath.Base(path))
	}
	return s, nil
}

// AgentSummary aggregates one agent's ticks in a session.
type AgentSummary struct {
	Name         string
	Ticks        int
	Observations int
	DecodeErrors int
	Commands     int
	Distance     float64
}

// Summarize folds a session's ticks into per-agent totals in header order.
func Summarize(s Session) []AgentSummary {
	idx := map[string]int{}
	var out []AgentSummary
	for _, a := range s.Header.Agents {
		idx[a.Name] = len(out)
		out = append(out, AgentSummary{Name: a.Name})
	}
	last := map[string]AgentTick{}
	for _, t := range s.Ticks {
		for _, at := range t.Agents {
			i, ok := idx[at.Name]
			if !ok {
				idx[at.Name] = len(out)
				i = len(out)
				out = append(out, AgentSummary{Name: at.Name})
			}
			sum := &out[i]
			sum.Ticks++
			sum.Observations += at.Observations
			sum.Commands += len(at.Commands)
			if at.DecodeError != "" {
				sum.DecodeErrors++
			} else if prev, ok := last[at.Name]; ok {
				sum.Distance += geom.Distance(prev.Position, at.Position)
			}
			if at.DecodeError == "" {
				last[at.Name] = at
			}
		}
	}
	return out
}
