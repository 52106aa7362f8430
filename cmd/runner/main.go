package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"missionloop.ai/internal/config"
	"missionloop.ai/internal/coordinator"
	"missionloop.ai/internal/engine"
	"missionloop.ai/internal/persistence/indexdb"
	"missionloop.ai/internal/persistence/record"
	"missionloop.ai/internal/persistence/upload"
	"missionloop.ai/internal/scenarios"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath   = flag.String("config", "./configs/session.yaml", "session config path")
		envFile   = flag.String("env", ".env", "dotenv file loaded before the config (missing file is fine)")
		mission   = flag.String("mission", "", "mission descriptor path (overrides config)")
		scenario  = flag.String("scenario", "", "scenario name (overrides config)")
		recordDir = flag.String("record", "", "directory for session recordings (overrides config)")
		indexDB   = flag.String("index_db", "", "sqlite session index path (overrides config)")
		list      = flag.Bool("list", false, "list built-in scenarios and exit")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[runner] ", log.LstdFlags|log.Lmicroseconds)

	if *list {
		for _, n := range scenarios.Names() {
			s, _ := scenarios.Lookup(n)
			fmt.Printf("%-8s %s (agents: %s)\n", s.Name, s.Description, strings.Join(s.Agents, ", "))
		}
		return exitOK
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Printf("load env: %v", err)
		return exitConfig
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Printf("load config: %v", err)
		return exitConfig
	}
	override(&cfg.MissionPath, *mission)
	override(&cfg.Scenario, *scenario)
	override(&cfg.Record.Dir, *recordDir)
	override(&cfg.Record.IndexDB, *indexDB)
	cfg.ApplyEnv(os.Getenv)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Printf("config: %v", err)
		return exitConfig
	}

	sc, ok := scenarios.Lookup(cfg.Scenario)
	if !ok {
		logger.Printf("unknown scenario %q (have %s)", cfg.Scenario, strings.Join(scenarios.Names(), ", "))
		return exitConfig
	}
	names := make([]string, 0, len(cfg.Agents))
	for _, a := range cfg.Agents {
		names = append(names, a.Name)
	}
	if err := sc.Check(names); err != nil {
		logger.Printf("%v", err)
		return exitConfig
	}

	if cfg.MissionPath == "" {
		logger.Printf("missing mission descriptor (-mission, mission_path or MISSIONLOOP_MISSION)")
		return exitConfig
	}
	desc, err := os.ReadFile(cfg.MissionPath)
	if err != nil {
		logger.Printf("read mission: %v", err)
		return exitConfig
	}

	ctx, cancel := signalContext()
	defer cancel()

	id, err := uuid.NewV7()
	if err != nil {
		logger.Printf("session id: %v", err)
		return exitConfig
	}
	sessionID := id.String()

	var (
		sinks    []coordinator.Sink
		recorder *record.Writer
	)
	if cfg.Record.Dir != "" {
		w, err := record.NewWriter(cfg.Record.Dir, sessionID)
		if err != nil {
			logger.Printf("recorder: %v", err)
			return exitConfig
		}
		defer w.Close()
		recorder = w
		sinks = append(sinks, w)
		logger.Printf("recording to %s", w.Path())
	}
	if cfg.Record.IndexDB != "" {
		idx, err := indexdb.OpenSQLite(cfg.Record.IndexDB)
		if err != nil {
			logger.Printf("open index db: %v", err)
			return exitConfig
		}
		defer func() {
			st := idx.Stats()
			if st.DropTickTotal > 0 {
				logger.Printf("index db dropped %d tick rows", st.DropTickTotal)
			}
			_ = idx.Close()
		}()
		sinks = append(sinks, idx)
	}

	conns, err := dialAll(ctx, cfg, logger)
	if err != nil {
		logger.Printf("%v", err)
		return exitDial
	}

	coord, err := coordinator.New(cfg.Session, conns, desc, coordinator.Options{
		Logger:    logger,
		SessionID: sessionID,
		Scenario:  sc.Name,
		Sinks:     sinks,
	})
	if err != nil {
		logger.Printf("coordinator: %v", err)
		return exitConfig
	}

	logger.Printf("session %s: scenario=%s agents=%s", sessionID, sc.Name, strings.Join(names, ","))
	res, err := coord.Run(ctx, sc.Tick)
	logger.Printf("session %s: %d ticks, %d decode errors, %s", res.SessionID, res.Ticks, res.DecodeErrors, res.Duration.Round(time.Millisecond))
	if recorder != nil {
		uploadRecording(recorder.Path(), logger)
	}
	if err != nil {
		msg, code := describe(err)
		logger.Printf("%s", msg)
		return code
	}
	return exitOK
}

// uploadRecording copies the finished recording to the configured bucket.
// Failures are logged; the session outcome does not depend on them.
func uploadRecording(path string, logger *log.Logger) {
	ucfg, ok := upload.ConfigFromEnv(os.Getenv)
	if !ok {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	c, err := upload.New(ucfg)
	if err != nil {
		logger.Printf("warn: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	if _, err := c.Recording(ctx, path, nil, logger); err != nil {
		logger.Printf("warn: upload %s: %v", path, err)
	}
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func dialAll(ctx context.Context, cfg config.Config, logger *log.Logger) ([]coordinator.AgentConn, error) {
	var out []coordinator.AgentConn
	for _, a := range cfg.Agents {
		dctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		c, err := engine.Dial(dctx, engine.ClientConfig{Name: a.Name, URL: a.URL}, logger)
		cancel()
		if err != nil {
			for _, o := range out {
				_ = o.Conn.Close()
			}
			return nil, fmt.Errorf("dial %s at %s: %w", a.Name, a.URL, err)
		}
		out = append(out, coordinator.AgentConn{Conn: c, Range: a.ObservableRange})
	}
	return out, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
