// Package coordinator drives a set of engine connections through one shared
// mission: start them in role order, wait for all to begin, then run a
// lockstep loop that hands every agent's fresh snapshot to a tick callback
// until the primary's mission ends.
package coordinator

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"missionloop.ai/internal/agent"
	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/config"
	"missionloop.ai/internal/engine"
	"missionloop.ai/internal/lifecycle"
	"missionloop.ai/internal/persistence/record"
	"missionloop.ai/internal/snapshot"
)

type Phase int32

const (
	Idle Phase = iota
	AllStarting
	AllRunning
	Draining
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AllStarting:
		return "all_starting"
	case AllRunning:
		return "all_running"
	case Draining:
		return "draining"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// TickFunc is called once per tick with every agent keyed by name. Returning
// an error stops the session.
type TickFunc func(ctx context.Context, tick uint64, agents map[string]*agent.Agent) error

// Sink receives the session's records. Both the compressed recorder and the
// SQLite index satisfy it.
type Sink interface {
	BeginSession(record.SessionHeader) error
	RecordTick(record.TickRecord) error
	EndSession(record.SessionFooter) error
}

// AgentConn binds a connection to the grid range its observations use.
// Order matters: the first AgentConn is the primary (role 0).
type AgentConn struct {
	Conn  engine.Connection
	Range snapshot.ObservableRange
}

type Options struct {
	Logger *log.Logger
	// SessionID doubles as the experiment id shared by every connection.
	// Empty means a fresh UUIDv7.
	SessionID string
	Scenario  string
	Sinks     []Sink
	// Sleep replaces real waiting between ticks and retries.
	Sleep lifecycle.SleepFunc
}

type Result struct {
	SessionID    string
	Ticks        uint64
	DecodeErrors int
	Duration     time.Duration
}

type Coordinator struct {
	cfg     config.Session
	mission []byte
	log     *log.Logger
	opts    Options

	conns  []*lifecycle.Conn
	ranges []snapshot.ObservableRange
	agents map[string]*agent.Agent

	phase atomic.Int32
}

func New(cfg config.Session, conns []AgentConn, mission []byte, opts Options) (*Coordinator, error) {
	if len(conns) == 0 {
		return nil, fmt.Errorf("coordinator: no connections")
	}
	if len(mission) == 0 {
		return nil, fmt.Errorf("coordinator: empty mission descriptor")
	}
	cfg.Normalize()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.SessionID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("coordinator: session id: %w", err)
		}
		opts.SessionID = id.String()
	}
	if opts.Sleep == nil {
		opts.Sleep = lifecycle.Sleep
	}

	c := &Coordinator{
		cfg:     cfg,
		mission: mission,
		log:     opts.Logger,
		opts:    opts,
		agents:  make(map[string]*agent.Agent, len(conns)),
	}
	law := cfg.Law()
	for role, ac := range conns {
		name := ac.Conn.Name()
		if _, dup := c.agents[name]; dup {
			return nil, fmt.Errorf("coordinator: duplicate agent name %q", name)
		}
		if err := ac.Range.Validate(); err != nil {
			return nil, fmt.Errorf("coordinator: agent %q: %w", name, err)
		}
		c.conns = append(c.conns, lifecycle.Track(ac.Conn, role))
		c.ranges = append(c.ranges, ac.Range)
		c.agents[name] = agent.New(name, ac.Conn, law, opts.Logger)
	}
	return c, nil
}

func (c *Coordinator) SessionID() string { return c.opts.SessionID }

func (c *Coordinator) Phase() Phase { return Phase(c.phase.Load()) }

func (c *Coordinator) setPhase(p Phase) {
	old := Phase(c.phase.Swap(int32(p)))
	if old != p {
		c.log.Printf("phase %s -> %s", old, p)
	}
}

func (c *Coordinator) primary() *lifecycle.Conn { return c.conns[0] }

// Run executes the whole session and closes every connection before
// returning. The error, if any, is the single terminal failure.
func (c *Coordinator) Run(ctx context.Context, fn TickFunc) (Result, error) {
	res := Result{SessionID: c.opts.SessionID}
	started := time.Now()

	if err := c.start(ctx); err != nil {
		return c.terminate(res, started, err)
	}
	c.setPhase(AllRunning)
	c.begin(started)

	for {
		fresh, err := c.barrier(ctx)
		if err != nil {
			return c.terminate(res, started, err)
		}
		if !fresh {
			break
		}

		res.Ticks++
		rec := record.TickRecord{SessionID: c.opts.SessionID, Tick: res.Ticks, At: time.Now().UTC()}
		for i, conn := range c.conns {
			at := c.syncAgent(res.Ticks, conn, c.ranges[i])
			if at.DecodeError != "" {
				res.DecodeErrors++
			}
			rec.Agents = append(rec.Agents, at)
		}

		if err := fn(ctx, res.Ticks, c.agents); err != nil {
			return c.terminate(res, started, fmt.Errorf("tick %d: %w", res.Ticks, err))
		}
		for i := range rec.Agents {
			rec.Agents[i].Commands = c.agents[rec.Agents[i].Name].DrainSent()
		}
		c.emitTick(rec)

		if err := c.opts.Sleep(ctx, c.cfg.TickInterval()); err != nil {
			return c.terminate(res, started, err)
		}
		if !c.primary().IsActive() {
			break
		}
	}
	return c.terminate(res, started, nil)
}

// start brings the primary up first, then every dependent, and waits for
// all of them to report the mission begun.
func (c *Coordinator) start(ctx context.Context) error {
	c.setPhase(AllStarting)
	policy := c.cfg.RetryPolicy()
	policy.Sleep = c.opts.Sleep
	m := engine.Mission{
		ExperimentID: c.opts.SessionID,
		Roles:        len(c.conns),
		Descriptor:   c.mission,
	}
	for _, conn := range c.conns {
		if err := policy.Start(ctx, conn, m, c.log); err != nil {
			return err
		}
		c.log.Printf("%s: start accepted (role %d)", conn.Name(), conn.Role())
	}

	wait := c.cfg.WaitOptions()
	wait.Sleep = c.opts.Sleep
	if err := lifecycle.WaitForStart(ctx, c.conns, wait); err != nil {
		return err
	}
	c.log.Printf("all %d connections running, experiment %s", len(c.conns), c.opts.SessionID)
	return nil
}

// barrier spins until every connection has at least one observation newer
// than the last poll. It reports false when the primary's mission ended
// while waiting.
func (c *Coordinator) barrier(ctx context.Context) (bool, error) {
	timeout := c.cfg.BarrierTimeout()
	deadline := time.Now().Add(timeout)
	for {
		var waiting []string
		for _, conn := range c.conns {
			if conn.Peek().ObservationsSinceLastPoll < 1 {
				waiting = append(waiting, conn.Name())
			}
		}
		if len(waiting) == 0 {
			return true, nil
		}
		if !c.primary().IsActive() {
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if time.Now().After(deadline) {
			return false, &lifecycle.BarrierTimeoutError{Phase: "tick barrier", Waiting: waiting, Timeout: timeout}
		}
		runtime.Gosched()
	}
}

// syncAgent polls one connection and decodes its observation. A decode
// failure is only a warning: the agent keeps its previous snapshot.
func (c *Coordinator) syncAgent(tick uint64, conn *lifecycle.Conn, rng snapshot.ObservableRange) record.AgentTick {
	ws := conn.Poll()
	at := record.AgentTick{
		Name:         conn.Name(),
		Seq:          ws.Seq,
		Observations: ws.ObservationsSinceLastPoll,
		EngineErrors: ws.Errors,
	}
	for _, e := range ws.Errors {
		c.log.Printf("warn: %s: engine error at tick %d: %s", conn.Name(), tick, e)
	}

	a := c.agents[conn.Name()]
	w, err := snapshot.Decode(ws.Observation, rng)
	if err != nil {
		c.log.Printf("warn: %s: tick %d: %v", conn.Name(), tick, err)
		at.DecodeError = err.Error()
	} else {
		a.Sync(w)
	}
	if st := a.State(); st != nil {
		at.Position = st.Position()
		at.POV = st.POV()
		at.Entities = len(st.AllEntities())
	}
	return at
}

func (c *Coordinator) begin(started time.Time) {
	h := record.SessionHeader{
		SessionID:      c.opts.SessionID,
		StartedAt:      started.UTC(),
		Scenario:       c.opts.Scenario,
		TickIntervalMs: c.cfg.TickIntervalMs,
		CatalogDigest:  catalog.Digest(),
	}
	for i, conn := range c.conns {
		h.Agents = append(h.Agents, record.AgentInfo{Name: conn.Name(), Role: conn.Role(), ObservableRange: c.ranges[i]})
	}
	for _, s := range c.opts.Sinks {
		if err := s.BeginSession(h); err != nil {
			c.log.Printf("warn: sink begin: %v", err)
		}
	}
}

func (c *Coordinator) emitTick(rec record.TickRecord) {
	for _, s := range c.opts.Sinks {
		if err := s.RecordTick(rec); err != nil {
			c.log.Printf("warn: sink tick %d: %v", rec.Tick, err)
		}
	}
}

// terminate drains: no more callbacks, every connection closed, sinks told
// how the session ended.
func (c *Coordinator) terminate(res Result, started time.Time, cause error) (Result, error) {
	c.setPhase(Draining)
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil {
			c.log.Printf("warn: close %s: %v", conn.Name(), err)
		}
	}
	res.Duration = time.Since(started)

	f := record.SessionFooter{
		SessionID:    c.opts.SessionID,
		EndedAt:      time.Now().UTC(),
		Ticks:        res.Ticks,
		DecodeErrors: res.DecodeErrors,
	}
	if cause != nil {
		f.Error = cause.Error()
	}
	for _, s := range c.opts.Sinks {
		if err := s.EndSession(f); err != nil {
			c.log.Printf("warn: sink end: %v", err)
		}
	}
	c.setPhase(Terminated)
	return res, cause
}
