package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"missionloop.ai/internal/engine/sim"
	"missionloop.ai/internal/scenarios"
)

func main() {
	var (
		addrs    = flag.String("addr", "127.0.0.1:10000", "comma-separated listen addresses; every address serves the same world")
		cfgPath  = flag.String("config", "", "engine config path (optional)")
		scenario = flag.String("scenario", "", "lay the world out for a built-in scenario (ignored when -config is set)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[enginesim] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := loadConfig(*cfgPath, *scenario)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	w, err := sim.New(cfg, logger)
	if err != nil {
		logger.Fatalf("world: %v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	go func() {
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			logger.Printf("world stopped: %v", err)
		}
	}()

	handler := sim.NewServer(w, logger).Routes()
	var wg sync.WaitGroup
	for _, addr := range strings.Split(*addrs, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Printf("listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Printf("%s: %v", srv.Addr, err)
				cancel()
			}
		}()
		go func() {
			<-ctx.Done()
			ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel2()
			_ = srv.Shutdown(ctx2)
		}()
	}
	wg.Wait()
	logger.Printf("stopped at tick %d", w.CurrentTick())
}

func loadConfig(path, scenario string) (sim.Config, error) {
	if strings.TrimSpace(path) != "" || strings.TrimSpace(scenario) == "" {
		return sim.Load(path)
	}
	sc, ok := scenarios.Lookup(strings.ToLower(strings.TrimSpace(scenario)))
	if !ok {
		return sim.Config{}, fmt.Errorf("unknown scenario %q (have %s)", scenario, strings.Join(scenarios.Names(), ", "))
	}
	cfg := sc.Engine()
	return cfg, cfg.Validate()
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
