// Package scenarios holds the built-in tick callbacks and the simulated
// worlds they are meant to run in.
package scenarios

import (
	"context"
	"fmt"
	"sort"

	"missionloop.ai/internal/agent"
	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/coordinator"
	"missionloop.ai/internal/engine/sim"
	"missionloop.ai/internal/geom"
)

const timeLimitSeconds = 30

type Scenario struct {
	Name        string
	Description string
	// Agents lists the agent names in role order; the first is the primary.
	Agents []string
	Tick   coordinator.TickFunc
	// World fills a simulated engine config with the scenario's layout.
	World func(cfg *sim.Config)
}

// Check reports whether names covers every agent the scenario drives.
func (s Scenario) Check(names []string) error {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, want := range s.Agents {
		if !have[want] {
			return fmt.Errorf("scenario %s: needs agent %q", s.Name, want)
		}
	}
	return nil
}

// Engine returns a simulated engine config laid out for this scenario.
func (s Scenario) Engine() sim.Config {
	cfg := sim.Defaults()
	cfg.TimeLimitTicks = timeLimitSeconds * cfg.TickRateHz
	if s.World != nil {
		s.World(&cfg)
	}
	cfg.Normalize()
	return cfg
}

var registry = map[string]Scenario{}

func register(s Scenario) { registry[s.Name] = s }

func Lookup(name string) (Scenario, bool) {
	s, ok := registry[name]
	return s, ok
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func init() {
	register(Scenario{
		Name:        "follow",
		Description: "computer keeps close to human",
		Agents:      []string{"computer", "human"},
		Tick:        follow,
		World: func(cfg *sim.Config) {
			cfg.Agents = []sim.AgentSpec{
				{Name: "computer", Position: geom.Vec(0, 4, 0)},
				{Name: "human", Position: geom.Vec(10, 4, 10)},
			}
		},
	})
	register(Scenario{
		Name:        "duel",
		Description: "two armed agents attack each other",
		Agents:      []string{"agent1", "agent2"},
		Tick:        duel,
		World: func(cfg *sim.Config) {
			sword := []sim.SlotSpec{{Type: string(catalog.ItemDiamondSword), Index: 0, Quantity: 1}}
			cfg.Agents = []sim.AgentSpec{
				{Name: "agent1", Position: geom.Vec(0, 4, 0), Inventory: sword},
				{Name: "agent2", Position: geom.Vec(10, 4, 0), Inventory: sword},
			}
		},
	})
	register(Scenario{
		Name:        "spree",
		Description: "computer hunts the closest peaceful mob",
		Agents:      []string{"computer"},
		Tick:        spree,
		World: func(cfg *sim.Config) {
			cfg.Agents = []sim.AgentSpec{{
				Name:      "computer",
				Position:  geom.Vec(0, 4, 0),
				Inventory: []sim.SlotSpec{{Type: string(catalog.ItemDiamondSword), Index: 0, Quantity: 1}},
			}}
			for _, p := range []geom.Vector{geom.Vec(8, 4, 8), geom.Vec(-8, 4, -8), geom.Vec(8, 4, -8)} {
				cfg.Mobs = append(cfg.Mobs, sim.EntitySpec{Name: string(catalog.MobVillager), Position: p})
			}
		},
	})
	register(Scenario{
		Name:        "gather",
		Description: "computer collects food and hands it to human",
		Agents:      []string{"computer", "human"},
		Tick:        gather,
		World: func(cfg *sim.Config) {
			cfg.Agents = []sim.AgentSpec{
				{Name: "computer", Position: geom.Vec(0, 4, 0), Inventory: []sim.SlotSpec{
					{Type: string(catalog.ItemBakedPotato), Index: 1, Quantity: 1},
				}},
				{Name: "human", Position: geom.Vec(8, 4, 8)},
			}
			cfg.Items = []sim.EntitySpec{
				{Name: string(catalog.ItemBakedPotato), Position: geom.Vec(-4, 4, 3), Quantity: 3},
			}
		},
	})
}

func need(agents map[string]*agent.Agent, names ...string) ([]*agent.Agent, error) {
	out := make([]*agent.Agent, 0, len(names))
	for _, n := range names {
		a, ok := agents[n]
		if !ok {
			return nil, fmt.Errorf("no agent %q", n)
		}
		out = append(out, a)
	}
	return out, nil
}

func follow(_ context.Context, _ uint64, agents map[string]*agent.Agent) error {
	as, err := need(agents, "computer", "human")
	if err != nil {
		return err
	}
	computer := as[0]
	human := agent.ByName("human")
	computer.LookAt(human)
	computer.MoveTo(human, 3)
	return nil
}

func duel(_ context.Context, _ uint64, agents map[string]*agent.Agent) error {
	as, err := need(agents, "agent1", "agent2")
	if err != nil {
		return err
	}
	for i, a := range as {
		if !a.Equipped(catalog.ItemDiamondSword) {
			a.Equip(catalog.ItemDiamondSword)
			continue
		}
		a.Attack(agent.ByName(as[1-i].Name()))
	}
	return nil
}

func spree(_ context.Context, _ uint64, agents map[string]*agent.Agent) error {
	as, err := need(agents, "computer")
	if err != nil {
		return err
	}
	computer := as[0]
	st := computer.State()
	if st == nil {
		computer.DoNothing()
		return nil
	}
	if m, ok := st.ClosestMob(catalog.IsPeaceful); ok {
		computer.Attack(agent.ByEntity(m))
	} else {
		computer.DoNothing()
	}
	return nil
}

func gather(_ context.Context, _ uint64, agents map[string]*agent.Agent) error {
	as, err := need(agents, "computer", "human")
	if err != nil {
		return err
	}
	computer := as[0]
	st := computer.State()
	if st == nil {
		computer.DoNothing()
		return nil
	}
	if held, ok := st.FindInventoryItem(catalog.IsFood); ok {
		computer.GiveItem(held.Type, agent.ByName("human"))
		return nil
	}
	if e, ok := st.ClosestItem(catalog.IsFood); ok {
		food := agent.ByEntity(e)
		computer.LookAt(food)
		computer.MoveTo(food, 0.5)
		return nil
	}
	computer.DoNothing()
	return nil
}
