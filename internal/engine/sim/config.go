package sim

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/snapshot"
)

type Config struct {
	TickRateHz int `yaml:"tick_rate_hz"`

	// Start script: the first WarmupRefusals START_MISSION requests are
	// refused as warming up, the next InsufficientRefusals as lacking
	// clients.
	WarmupRefusals       int `yaml:"warmup_refusals"`
	InsufficientRefusals int `yaml:"insufficient_refusals"`

	// BeginDelayTicks separates the last role starting from the mission
	// beginning. TimeLimitTicks ends the mission; 0 means no limit.
	BeginDelayTicks int `yaml:"begin_delay_ticks"`
	TimeLimitTicks  int `yaml:"time_limit_ticks"`

	GroundY         int                      `yaml:"ground_y"`
	SurfaceBlock    string                   `yaml:"surface_block"`
	ObservableRange snapshot.ObservableRange `yaml:"observable_range"`
	EntityRange     float64                  `yaml:"entity_range"`

	// Speeds at a command rate of 1.
	TurnSpeedDeg float64 `yaml:"turn_speed_deg"`
	WalkSpeed    float64 `yaml:"walk_speed"`

	Agents []AgentSpec  `yaml:"agents"`
	Mobs   []EntitySpec `yaml:"mobs"`
	Items  []EntitySpec `yaml:"items"`
}

// AgentSpec places a named agent when its role starts. Agents without a spec
// spawn in a row along x.
type AgentSpec struct {
	Name      string      `yaml:"name"`
	Position  geom.Vector `yaml:"position"`
	Yaw       float64     `yaml:"yaw"`
	Inventory []SlotSpec  `yaml:"inventory"`
}

type SlotSpec struct {
	Type     string `yaml:"type"`
	Index    int    `yaml:"index"`
	Quantity int    `yaml:"quantity"`
}

type EntitySpec struct {
	Name     string      `yaml:"name"`
	Position geom.Vector `yaml:"position"`
	Quantity int         `yaml:"quantity"`
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
		return cfg, fmt.Errorf("enginesim config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("enginesim config: %w", err)
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		TickRateHz:      20,
		BeginDelayTicks: 2,
		TimeLimitTicks:  20 * 60,
		GroundY:         3,
		SurfaceBlock:    string(catalog.BlockGrass),
		ObservableRange: snapshot.ObservableRange{X: 2, Y: 2, Z: 2},
		EntityRange:     20,
		TurnSpeedDeg:    180,
		WalkSpeed:       4.3,
	}
}

func (c *Config) Normalize() {
	d := Defaults()
	if c.TickRateHz <= 0 {
		c.TickRateHz = d.TickRateHz
	}
	if c.BeginDelayTicks < 0 {
		c.BeginDelayTicks = 0
	}
	if c.TimeLimitTicks < 0 {
		c.TimeLimitTicks = 0
	}
	c.SurfaceBlock = strings.TrimSpace(c.SurfaceBlock)
	if c.SurfaceBlock == "" {
		c.SurfaceBlock = d.SurfaceBlock
	}
	if c.EntityRange <= 0 {
		c.EntityRange = d.EntityRange
	}
	if c.TurnSpeedDeg <= 0 {
		c.TurnSpeedDeg = d.TurnSpeedDeg
	}
	if c.WalkSpeed <= 0 {
		c.WalkSpeed = d.WalkSpeed
	}
	for i := range c.Agents {
		c.Agents[i].Name = strings.TrimSpace(c.Agents[i].Name)
		c.Agents[i].Yaw = geom.NormalizeYaw(c.Agents[i].Yaw)
	}
	for i := range c.Items {
		if c.Items[i].Quantity <= 0 {
			c.Items[i].Quantity = 1
		}
	}
}

func (c Config) Validate() error {
	if err := c.ObservableRange.Validate(); err != nil {
		return err
	}
	if !catalog.IsBlock(c.SurfaceBlock) {
		return fmt.Errorf("unknown surface block %q", c.SurfaceBlock)
	}
	if c.WarmupRefusals < 0 || c.InsufficientRefusals < 0 {
		return fmt.Errorf("refusal counts must be non-negative")
	}
	seen := map[string]bool{}
	for _, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate agent %q", a.Name)
		}
		seen[a.Name] = true
		for _, s := range a.Inventory {
			if _, ok := snapshot.ResolveSlot(s.Index); !ok {
				return fmt.Errorf("agent %q: inventory index %d out of range", a.Name, s.Index)
			}
			if !catalog.IsItem(s.Type) {
				return fmt.Errorf("agent %q: unknown item %q", a.Name, s.Type)
			}
		}
	}
	for _, m := range c.Mobs {
		if !catalog.IsMob(m.Name) {
			return fmt.Errorf("unknown mob %q", m.Name)
		}
	}
	for _, it := range c.Items {
		if !catalog.IsItem(it.Name) {
			return fmt.Errorf("unknown item %q", it.Name)
		}
	}
	return nil
}

func (c Config) agentSpec(name string) (AgentSpec, bool) {
	for _, a := range c.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentSpec{}, false
}
