// Package sim is a kinematic stand-in for a game engine. It speaks the
// engine link protocol, scripts mission-start refusals, integrates movement
// commands and streams observation records at a fixed tick rate.
package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/control"
	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/protocol"
)

const (
	dropDistance     = 1.5
	pickupRadius     = 1.2
	pickupDelayTicks = 10
	attackReach      = 3.0
	attackConeDeg    = 30.0
)

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseStarting Phase = "starting"
	PhaseRunning  Phase = "running"
	PhaseEnded    Phase = "ended"
)

type session struct {
	clientID string
	name     string
	ctrl     chan []byte
	obs      chan []byte
	seq      uint64
}

type joinRequest struct {
	Name string
	Ctrl chan []byte
	Obs  chan []byte
	Resp chan protocol.WelcomeMsg
}

type startRequest struct {
	ClientID string
	Msg      protocol.StartMissionMsg
}

type commandEnvelope struct {
	ClientID string
	Command  string
}

type stateRequest struct {
	Resp chan State
}

type experiment struct {
	id      string
	roles   int
	members map[int]string
	phase   Phase
	beginAt uint64
	begunAt uint64
}

func (e *experiment) roleOf(clientID string) (int, bool) {
	for r, id := range e.members {
		if id == clientID {
			return r, true
		}
	}
	return 0, false
}

type worldEntity struct {
	id          string
	name        string
	pos         geom.Vector
	quantity    int
	pickupAfter uint64
}

// World owns all simulation state. Everything is mutated on the Run
// goroutine; other goroutines talk to it through channels.
type World struct {
	cfg Config
	log *log.Logger

	tick atomic.Uint64

	sessions map[string]*session
	bodies   map[string]*body
	mobs     []*worldEntity
	items    []*worldEntity
	exp      *experiment

	warmupLeft       int
	insufficientLeft int
	nextClient       uint64
	nextEntity       uint64

	join  chan joinRequest
	leave chan string
	start chan startRequest
	inbox chan commandEnvelope
	state chan stateRequest
	stop  chan struct{}
}

func New(cfg Config, logger *log.Logger) (*World, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &World{
		cfg:              cfg,
		log:              logger,
		sessions:         map[string]*session{},
		bodies:           map[string]*body{},
		warmupLeft:       cfg.WarmupRefusals,
		insufficientLeft: cfg.InsufficientRefusals,
		join:             make(chan joinRequest, 64),
		leave:            make(chan string, 64),
		start:            make(chan startRequest, 64),
		inbox:            make(chan commandEnvelope, 1024),
		state:            make(chan stateRequest, 16),
		stop:             make(chan struct{}),
	}, nil
}

func (w *World) CurrentTick() uint64 { return w.tick.Load() }

func (w *World) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(w.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pending []commandEnvelope
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			return nil
		case req := <-w.join:
			req.Resp <- w.handleJoin(req)
		case id := <-w.leave:
			w.handleLeave(id)
		case req := <-w.start:
			w.handleStart(req)
		case req := <-w.state:
			req.Resp <- w.snapshotState()
		case env := <-w.inbox:
			pending = append(pending, env)
		case <-ticker.C:
			w.step(pending)
			pending = pending[:0]
		}
	}
}

func (w *World) Stop() { close(w.stop) }

// State asks the Run goroutine for a summary of the world.
func (w *World) State(ctx context.Context) (State, error) {
	resp := make(chan State, 1)
	select {
	case w.state <- stateRequest{Resp: resp}:
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
	select {
	case s := <-resp:
		return s, nil
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
}

func (w *World) handleJoin(req joinRequest) protocol.WelcomeMsg {
	w.nextClient++
	id := fmt.Sprintf("C%04d", w.nextClient)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "agent-" + id
	}
	w.sessions[id] = &session{clientID: id, name: name, ctrl: req.Ctrl, obs: req.Obs}
	w.log.Printf("client %s joined as %q", id, name)
	return protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		ClientID:        id,
		TickRateHz:      w.cfg.TickRateHz,
	}
}

func (w *World) handleLeave(id string) {
	s, ok := w.sessions[id]
	if !ok {
		return
	}
	delete(w.sessions, id)
	delete(w.bodies, id)
	w.log.Printf("client %s (%s) left", id, s.name)
	if w.exp == nil {
		return
	}
	role, member := w.exp.roleOf(id)
	if !member {
		return
	}
	delete(w.exp.members, role)
	if w.exp.phase == PhaseStarting || w.exp.phase == PhaseRunning {
		w.endMission(fmt.Sprintf("agent %s disconnected", s.name))
	}
}

func (w *World) handleStart(req startRequest) {
	s, ok := w.sessions[req.ClientID]
	if !ok {
		return
	}
	code, msg := w.admit(s, req.Msg)
	res := protocol.StartResultMsg{
		Type:            protocol.TypeStartResult,
		ProtocolVersion: protocol.Version,
		ReqID:           req.Msg.ReqID,
		OK:              code == "",
		Code:            code,
		Message:         msg,
	}
	if code != "" {
		w.log.Printf("start refused for %s role %d: %s", s.name, req.Msg.Role, code)
	}
	w.sendCtrl(s, res)
}

// admit decides a START_MISSION request. An empty code means accepted.
func (w *World) admit(s *session, m protocol.StartMissionMsg) (code, message string) {
	if m.Roles <= 0 || m.Role < 0 || m.Role >= m.Roles || strings.TrimSpace(m.Mission) == "" {
		return protocol.ErrBadMission, "role out of range or empty mission"
	}
	if w.warmupLeft > 0 {
		w.warmupLeft--
		return protocol.ErrServerWarmingUp, "engine is still warming up"
	}
	if w.insufficientLeft > 0 {
		w.insufficientLeft--
		return protocol.ErrInsufficientClients, "not enough clients available"
	}

	if w.exp != nil && w.exp.phase == PhaseEnded {
		w.exp = nil
	}
	if w.exp != nil && w.exp.id != m.ExperimentID {
		return protocol.ErrMissionRunning, "another experiment is in progress"
	}
	if w.exp == nil {
		if m.Role != 0 {
			return protocol.ErrServerNotFound, "no primary has started experiment " + m.ExperimentID
		}
		w.exp = &experiment{id: m.ExperimentID, roles: m.Roles, members: map[int]string{}, phase: PhaseStarting}
		w.resetEntities()
	}
	e := w.exp
	if e.roles != m.Roles {
		return protocol.ErrBadMission, fmt.Sprintf("experiment has %d roles, request says %d", e.roles, m.Roles)
	}
	if m.Role > 0 && e.members[0] == "" {
		return protocol.ErrServerNotFound, "primary has not started"
	}
	if holder, taken := e.members[m.Role]; taken && holder != s.clientID {
		return protocol.ErrMissionRunning, fmt.Sprintf("role %d already taken", m.Role)
	}
	if e.phase != PhaseStarting {
		return protocol.ErrMissionRunning, "mission already running"
	}

	e.members[m.Role] = s.clientID
	w.bodies[s.clientID] = w.spawn(s, m.Role)
	if len(e.members) == e.roles {
		e.beginAt = w.tick.Load() + uint64(w.cfg.BeginDelayTicks)
	}
	return "", ""
}

func (w *World) spawn(s *session, role int) *body {
	pos := geom.Vec(float64(role)*3+0.5, float64(w.cfg.GroundY+1), 0.5)
	yaw := 0.0
	spec, ok := w.cfg.agentSpec(s.name)
	if ok {
		pos, yaw = spec.Position, spec.Yaw
	}
	b := newBody("agent-"+s.clientID, s.name, pos, yaw)
	for _, it := range spec.Inventory {
		if it.Quantity > 0 {
			b.inv[it.Index] = stack{Type: it.Type, Quantity: it.Quantity}
		}
	}
	return b
}

func (w *World) resetEntities() {
	w.mobs = w.mobs[:0]
	w.items = w.items[:0]
	for _, m := range w.cfg.Mobs {
		w.mobs = append(w.mobs, &worldEntity{id: w.entityID("mob"), name: m.Name, pos: m.Position, quantity: 1})
	}
	for _, it := range w.cfg.Items {
		w.items = append(w.items, &worldEntity{id: w.entityID("item"), name: it.Name, pos: it.Position, quantity: it.Quantity})
	}
}

func (w *World) entityID(prefix string) string {
	w.nextEntity++
	return fmt.Sprintf("%s-%d", prefix, w.nextEntity)
}

func (w *World) step(cmds []commandEnvelope) {
	tick := w.tick.Add(1)
	e := w.exp
	if e == nil {
		return
	}

	if e.phase == PhaseStarting && len(e.members) == e.roles && tick >= e.beginAt {
		e.phase = PhaseRunning
		e.begunAt = tick
		w.log.Printf("experiment %s begun with %d roles", e.id, e.roles)
		w.broadcastStatus(nil)
	}
	if e.phase != PhaseRunning {
		return
	}

	for _, c := range cmds {
		b := w.bodies[c.ClientID]
		if b == nil {
			continue
		}
		if _, member := e.roleOf(c.ClientID); !member {
			continue
		}
		ok, drop := b.apply(c.Command)
		if !ok {
			w.log.Printf("ignoring command %q from %s", c.Command, b.name)
			continue
		}
		if drop != nil {
			w.items = append(w.items, &worldEntity{
				id:          w.entityID("item"),
				name:        drop.stack.Type,
				pos:         drop.at,
				quantity:    drop.stack.Quantity,
				pickupAfter: tick + pickupDelayTicks,
			})
		}
	}

	dt := 1 / float64(w.cfg.TickRateHz)
	for _, b := range w.memberBodies() {
		b.integrate(dt, w.cfg)
	}
	w.resolveAttacks()
	w.resolvePickups(tick)

	for role := 0; role < e.roles; role++ {
		s := w.sessions[e.members[role]]
		b := w.bodies[e.members[role]]
		if s == nil || b == nil {
			continue
		}
		w.sendObservation(s, w.observe(b))
	}

	if w.cfg.TimeLimitTicks > 0 && tick-e.begunAt >= uint64(w.cfg.TimeLimitTicks) {
		w.endMission("")
	}
}

func (w *World) memberBodies() []*body {
	if w.exp == nil {
		return nil
	}
	out := make([]*body, 0, w.exp.roles)
	for role := 0; role < w.exp.roles; role++ {
		if b := w.bodies[w.exp.members[role]]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

// resolveAttacks kills the closest mob in reach and roughly in front of each
// body that started an attack this tick.
func (w *World) resolveAttacks() {
	for _, b := range w.memberBodies() {
		if !b.attackEdge {
			continue
		}
		b.attackEdge = false
		best, bestDist := -1, math.Inf(1)
		for i, m := range w.mobs {
			d := geom.Distance(b.pos, m.pos)
			if d > attackReach || d >= bestDist {
				continue
			}
			diff, ok := control.AngleDiffs(b.pos, geom.Rotation{Yaw: b.yaw}, m.pos)
			if ok && math.Abs(diff.Yaw) > attackConeDeg {
				continue
			}
			best, bestDist = i, d
		}
		if best < 0 {
			continue
		}
		m := w.mobs[best]
		w.mobs = append(w.mobs[:best], w.mobs[best+1:]...)
		w.log.Printf("%s killed %s (%s)", b.name, m.name, m.id)
		if catalog.DropsFood(catalog.MobType(m.name)) {
			w.items = append(w.items, &worldEntity{
				id:       w.entityID("item"),
				name:     string(catalog.ItemCookedBeef),
				pos:      m.pos,
				quantity: 1,
			})
		}
	}
}

func (w *World) resolvePickups(tick uint64) {
	kept := w.items[:0]
	bodies := w.memberBodies()
	for _, it := range w.items {
		taken := false
		if tick >= it.pickupAfter {
			for _, b := range bodies {
				if geom.Distance(b.pos, it.pos) <= pickupRadius && b.pickUp(stack{Type: it.name, Quantity: it.quantity}) {
					w.log.Printf("%s picked up %d %s", b.name, it.quantity, it.name)
					taken = true
					break
				}
			}
		}
		if !taken {
			kept = append(kept, it)
		}
	}
	w.items = kept
}

func (w *World) endMission(reason string) {
	if w.exp == nil || w.exp.phase == PhaseEnded {
		return
	}
	w.exp.phase = PhaseEnded
	var errs []string
	if reason != "" {
		errs = []string{reason}
		w.log.Printf("experiment %s ended: %s", w.exp.id, reason)
	} else {
		w.log.Printf("experiment %s ended", w.exp.id)
	}
	w.broadcastStatus(errs)
}

func (w *World) broadcastStatus(errs []string) {
	if w.exp == nil {
		return
	}
	msg := protocol.StatusMsg{
		Type:            protocol.TypeStatus,
		ProtocolVersion: protocol.Version,
		MissionBegun:    w.exp.phase == PhaseRunning || w.exp.phase == PhaseEnded,
		MissionRunning:  w.exp.phase == PhaseRunning,
		Errors:          errs,
	}
	for _, id := range w.exp.members {
		if s := w.sessions[id]; s != nil {
			w.sendCtrl(s, msg)
		}
	}
}

func (w *World) sendCtrl(s *session, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.log.Printf("marshal control message: %v", err)
		return
	}
	select {
	case s.ctrl <- b:
	default:
		w.log.Printf("control queue full for %s; dropping message", s.name)
	}
}

func (w *World) sendObservation(s *session, obs protocol.Observation) {
	raw, err := json.Marshal(obs)
	if err != nil {
		w.log.Printf("marshal observation: %v", err)
		return
	}
	s.seq++
	b, err := json.Marshal(protocol.ObsMsg{
		Type:            protocol.TypeObs,
		ProtocolVersion: protocol.Version,
		Seq:             s.seq,
		Observation:     raw,
	})
	if err != nil {
		return
	}
	sendLatest(s.obs, b)
}

func sendLatest(ch chan []byte, b []byte) {
	select {
	case ch <- b:
		return
	default:
	}
	// Drop one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- b:
	default:
	}
}
