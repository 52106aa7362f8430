package scenarios

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"missionloop.ai/internal/agent"
	"missionloop.ai/internal/config"
	"missionloop.ai/internal/control"
	"missionloop.ai/internal/coordinator"
	"missionloop.ai/internal/engine"
	"missionloop.ai/internal/engine/sim"
	"missionloop.ai/internal/snapshot"
)

type fakeCommander struct{ sent []string }

func (f *fakeCommander) SendCommand(cmd string) error {
	f.sent = append(f.sent, cmd)
	return nil
}

type ent struct {
	id, name string
	x, z     float64
	quantity int
}

func world(t *testing.T, ents []ent, inv map[string]int) *snapshot.World {
	t.Helper()
	es := []map[string]any{}
	for _, e := range ents {
		m := map[string]any{"id": e.id, "name": e.name, "x": e.x, "y": 4.0, "z": e.z}
		if e.quantity > 0 {
			m["quantity"] = e.quantity
		}
		es = append(es, m)
	}
	is := []map[string]any{}
	for typ, idx := range inv {
		is = append(is, map[string]any{"type": typ, "index": idx, "quantity": 1})
	}
	raw, err := json.Marshal(map[string]any{
		"XPos": 0.0, "YPos": 4.0, "ZPos": 0.0, "Yaw": 0.0, "Pitch": 0.0,
		"blockgrid": []string{}, "nearby_entities": es, "inventory": is, "currentItemIndex": 0,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w, err := snapshot.Decode(raw, snapshot.ObservableRange{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return w
}

func newAgent(name string, w *snapshot.World) (*agent.Agent, *fakeCommander) {
	fc := &fakeCommander{}
	a := agent.New(name, fc, control.Default(), nil)
	a.Sync(w)
	return a, fc
}

func hasPrefix(cmds []string, prefix string) bool {
	for _, c := range cmds {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func TestRegistry(t *testing.T) {
	if got := Names(); !reflect.DeepEqual(got, []string{"duel", "follow", "gather", "spree"}) {
		t.Fatalf("Names=%v", got)
	}
	for _, n := range Names() {
		s, ok := Lookup(n)
		if !ok || s.Tick == nil {
			t.Fatalf("Lookup(%q)=%+v,%v", n, s, ok)
		}
		cfg := s.Engine()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: engine config: %v", n, err)
		}
		if len(cfg.Agents) != len(s.Agents) || cfg.TimeLimitTicks <= 0 {
			t.Fatalf("%s: engine agents=%d limit=%d", n, len(cfg.Agents), cfg.TimeLimitTicks)
		}
		if err := s.Check(s.Agents); err != nil {
			t.Fatalf("%s: Check: %v", n, err)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatalf("unknown scenario found")
	}
}

func TestCheck_MissingAgent(t *testing.T) {
	s, _ := Lookup("gather")
	if err := s.Check([]string{"computer"}); err == nil {
		t.Fatalf("expected missing human")
	}
}

func TestFollow(t *testing.T) {
	computer, fc := newAgent("computer", world(t, []ent{{id: "h", name: "human", z: 10}}, nil))
	human, _ := newAgent("human", nil)
	agents := map[string]*agent.Agent{"computer": computer, "human": human}

	if err := follow(context.Background(), 1, agents); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !hasPrefix(fc.sent, "move ") || !hasPrefix(fc.sent, "turn ") {
		t.Fatalf("sent=%v", fc.sent)
	}
	if err := follow(context.Background(), 1, map[string]*agent.Agent{"computer": computer}); err == nil {
		t.Fatalf("expected error without human")
	}
}

func TestDuel_EquipsBeforeAttacking(t *testing.T) {
	a1, fc1 := newAgent("agent1", world(t, []ent{{id: "b", name: "agent2", z: 2}}, map[string]int{"diamond_sword": 3}))
	a2, fc2 := newAgent("agent2", world(t, []ent{{id: "a", name: "agent1", z: 2}}, map[string]int{"diamond_sword": 0}))
	if err := duel(context.Background(), 1, map[string]*agent.Agent{"agent1": a1, "agent2": a2}); err != nil {
		t.Fatalf("duel: %v", err)
	}
	if !hasPrefix(fc1.sent, "hotbar.4 ") || hasPrefix(fc1.sent, "attack ") {
		t.Fatalf("agent1 should equip first: %v", fc1.sent)
	}
	if !hasPrefix(fc2.sent, "attack ") {
		t.Fatalf("agent2 already armed should attack: %v", fc2.sent)
	}
}

func TestSpree(t *testing.T) {
	computer, fc := newAgent("computer", world(t, nil, nil))
	agents := map[string]*agent.Agent{"computer": computer}
	if err := spree(context.Background(), 1, agents); err != nil {
		t.Fatalf("spree: %v", err)
	}
	if !hasPrefix(fc.sent, "attack 0") || hasPrefix(fc.sent, "attack 1") {
		t.Fatalf("no villager: sent=%v", fc.sent)
	}

	computer, fc = newAgent("computer", world(t, []ent{
		{id: "v1", name: "Villager", z: 8},
		{id: "v2", name: "Villager", z: 2},
	}, nil))
	if err := spree(context.Background(), 1, map[string]*agent.Agent{"computer": computer}); err != nil {
		t.Fatalf("spree: %v", err)
	}
	if !hasPrefix(fc.sent, "attack 1") {
		t.Fatalf("closest villager in reach should be hit: %v", fc.sent)
	}

	computer, fc = newAgent("computer", world(t, []ent{
		{id: "z1", name: "Zombie", z: 2},
		{id: "c1", name: "Cow", x: 6},
	}, nil))
	if err := spree(context.Background(), 1, map[string]*agent.Agent{"computer": computer}); err != nil {
		t.Fatalf("spree: %v", err)
	}
	if hasPrefix(fc.sent, "attack 1") || !hasPrefix(fc.sent, "turn -1") {
		t.Fatalf("hostile zombie hit instead of turning to the cow: %v", fc.sent)
	}
}

func TestGather(t *testing.T) {
	cases := []struct {
		name   string
		ents   []ent
		inv    map[string]int
		expect string
	}{
		{"holding food goes to equip", []ent{{id: "h", name: "human", z: 5}}, map[string]int{"baked_potato": 12}, "swapInventoryItems "},
		{"other food held", []ent{{id: "h", name: "human", z: 5}}, map[string]int{"bread": 20}, "swapInventoryItems "},
		{"food on the ground", []ent{{id: "p", name: "baked_potato", z: 5, quantity: 2}}, nil, "move "},
		{"only non-food on the ground", []ent{{id: "s", name: "diamond_sword", z: 5}}, nil, "attack 0"},
		{"nothing to do", nil, nil, "attack 0"},
	}
	for _, tc := range cases {
		computer, fc := newAgent("computer", world(t, tc.ents, tc.inv))
		human, _ := newAgent("human", nil)
		if err := gather(context.Background(), 1, map[string]*agent.Agent{"computer": computer, "human": human}); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !hasPrefix(fc.sent, tc.expect) {
			t.Fatalf("%s: sent=%v want %q", tc.name, fc.sent, tc.expect)
		}
	}
}

func TestSpree_AgainstSimulatedEngine(t *testing.T) {
	s, _ := Lookup("spree")
	cfg := s.Engine()
	cfg.TickRateHz = 100
	cfg.BeginDelayTicks = 1
	cfg.TimeLimitTicks = 150
	w, err := sim.New(cfg, nil)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	srv := httptest.NewServer(sim.NewServer(w, nil).Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/engine"
	conn, err := engine.Dial(ctx, engine.ClientConfig{Name: "computer", URL: url}, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}

	session := config.DefaultSession()
	session.TickIntervalMs = 0
	c, err := coordinator.New(session, []coordinator.AgentConn{{Conn: conn, Range: cfg.ObservableRange}}, []byte("<Mission/>"), coordinator.Options{Scenario: s.Name})
	if err != nil {
		t.Fatalf("coordinator.New: %v", err)
	}
	res, err := c.Run(ctx, s.Tick)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks == 0 || res.DecodeErrors != 0 {
		t.Fatalf("res=%+v", res)
	}
}
