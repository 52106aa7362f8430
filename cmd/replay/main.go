package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/persistence/indexdb"
	"missionloop.ai/internal/persistence/record"
)

func main() {
	var (
		dir      = flag.String("dir", "./data/sessions", "directory with session-*.jsonl.zst recordings")
		session  = flag.String("session", "", "single recording to read (overrides -dir)")
		indexDB  = flag.String("index_db", "", "sqlite session index to list instead of recordings (optional)")
		fromTick = flag.Uint64("from_tick", 0, "print per-tick detail from this tick (inclusive, optional)")
		toTick   = flag.Uint64("to_tick", 0, "stop per-tick detail at this tick (inclusive, optional)")
	)
	flag.Parse()

	if *indexDB != "" {
		if err := listIndex(*indexDB); err != nil {
			fmt.Fprintln(os.Stderr, "index:", err)
			os.Exit(1)
		}
		return
	}

	var files []string
	if *session != "" {
		files = []string{*session}
	} else {
		var err error
		files, err = record.ListSessions(*dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list sessions:", err)
			os.Exit(1)
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no recordings found in", *dir)
		os.Exit(1)
	}

	failed := false
	for _, path := range files {
		s, err := record.ReadSession(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read:", err)
			failed = true
			continue
		}
		printSession(s)
		if *fromTick != 0 || *toTick != 0 {
			printTicks(s, *fromTick, *toTick)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printSession(s record.Session) {
	h := s.Header
	fmt.Printf("session %s scenario=%s started=%s interval=%dms agents=%d\n",
		h.SessionID, h.Scenario, h.StartedAt.Format(time.RFC3339), h.TickIntervalMs, len(h.Agents))
	if h.CatalogDigest != "" && h.CatalogDigest != catalog.Digest() {
		fmt.Printf("  warning: recorded with a different catalog (%s, now %s)\n", h.CatalogDigest, catalog.Digest())
	}
	switch f := s.Footer; {
	case f == nil:
		fmt.Printf("  incomplete: %d ticks read, no footer\n", len(s.Ticks))
	case f.Error != "":
		fmt.Printf("  ended %s after %d ticks with error: %s\n", f.EndedAt.Format(time.RFC3339), f.Ticks, f.Error)
	default:
		fmt.Printf("  ended %s after %d ticks\n", f.EndedAt.Format(time.RFC3339), f.Ticks)
	}
	for _, a := range record.Summarize(s) {
		fmt.Printf("  %-12s ticks=%d obs=%d cmds=%d decode_errors=%d distance=%.2f\n",
			a.Name, a.Ticks, a.Observations, a.Commands, a.DecodeErrors, a.Distance)
	}
}

func printTicks(s record.Session, from, to uint64) {
	for _, t := range s.Ticks {
		if t.Tick < from {
			continue
		}
		if to != 0 && t.Tick > to {
			return
		}
		for _, a := range t.Agents {
			line := fmt.Sprintf("  #%d %s pos=(%.2f,%.2f,%.2f) yaw=%.1f pitch=%.1f ents=%d",
				t.Tick, a.Name, a.Position.X, a.Position.Y, a.Position.Z, a.POV.Yaw, a.POV.Pitch, a.Entities)
			if a.DecodeError != "" {
				line += " decode_error=" + a.DecodeError
			}
			if len(a.Commands) > 0 {
				line += " cmds=[" + strings.Join(a.Commands, "; ") + "]"
			}
			fmt.Println(line)
		}
	}
}

func listIndex(path string) error {
	idx, err := indexdb.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer idx.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	rows, err := idx.Sessions(ctx)
	if err != nil {
		return err
	}
	for _, r := range rows {
		status := "running"
		if r.EndedAt != nil {
			status = "ended " + r.EndedAt.Format(time.RFC3339)
		}
		fmt.Printf("%s scenario=%s started=%s %s ticks=%d decode_errors=%d",
			r.SessionID, r.Scenario, r.StartedAt.Format(time.RFC3339), status, r.Ticks, r.DecodeErrors)
		if r.Error != "" {
			fmt.Printf(" error=%q", r.Error)
		}
		fmt.Println()
		errs, err := idx.DecodeErrors(ctx, r.SessionID)
		if err != nil {
			return err
		}
		for _, e := range errs {
			fmt.Printf("  tick %d %s: %s\n", e.Tick, e.Agent, e.Message)
		}
	}
	return nil
}
