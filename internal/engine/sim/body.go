package sim

import (
	"math"
	"strconv"
	"strings"

	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/snapshot"
)

const inventorySlots = snapshot.ArmorLast + 1

type stack struct {
	Type     string
	Quantity int
}

// body is the kinematic state of one agent. Continuous rates persist until
// the next command changes them.
type body struct {
	name  string
	id    string
	pos   geom.Vector
	yaw   float64
	pitch float64

	turn, pitchRate, move, strafe float64
	attack                        bool
	attackEdge                    bool

	inv      [inventorySlots]stack
	equipped int
}

func newBody(id, name string, pos geom.Vector, yaw float64) *body {
	return &body{id: id, name: name, pos: pos, yaw: geom.NormalizeYaw(yaw)}
}

func forward(yaw float64) geom.Vector {
	r := geom.Radians(yaw)
	return geom.Vec(-math.Sin(r), 0, math.Cos(r))
}

func right(yaw float64) geom.Vector {
	r := geom.Radians(yaw)
	return geom.Vec(-math.Cos(r), 0, -math.Sin(r))
}

func (b *body) integrate(dt float64, cfg Config) {
	b.yaw = geom.NormalizeYaw(b.yaw + b.turn*cfg.TurnSpeedDeg*dt)
	b.pitch = math.Max(-90, math.Min(90, b.pitch+b.pitchRate*cfg.TurnSpeedDeg*dt))
	step := forward(b.yaw).Scale(b.move).Add(right(b.yaw).Scale(b.strafe))
	b.pos = b.pos.Add(step.Scale(cfg.WalkSpeed * dt))
}

// dropped is what a discardCurrentItem command released.
type dropped struct {
	stack stack
	at    geom.Vector
}

// apply executes one text command. It reports whether the command was
// recognised; the drop is non-nil only for discardCurrentItem on a
// non-empty slot.
func (b *body) apply(cmd string) (ok bool, drop *dropped) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false, nil
	}
	verb := fields[0]
	arg := func(i int) (float64, bool) {
		if len(fields) <= i {
			return 0, false
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		return v, err == nil
	}
	clamp := func(v float64) float64 { return math.Max(-1, math.Min(1, v)) }

	switch verb {
	case "turn", "pitch", "move", "strafe":
		v, good := arg(1)
		if !good {
			return false, nil
		}
		switch verb {
		case "turn":
			b.turn = clamp(v)
		case "pitch":
			b.pitchRate = clamp(v)
		case "move":
			b.move = clamp(v)
		case "strafe":
			b.strafe = clamp(v)
		}
		return true, nil
	case "attack":
		v, good := arg(1)
		if !good {
			return false, nil
		}
		on := v != 0
		if on && !b.attack {
			b.attackEdge = true
		}
		b.attack = on
		return true, nil
	case "swapInventoryItems":
		a, good1 := arg(1)
		c, good2 := arg(2)
		i, j := int(a), int(c)
		if !good1 || !good2 || i < 0 || j < 0 || i >= inventorySlots || j >= inventorySlots {
			return false, nil
		}
		b.inv[i], b.inv[j] = b.inv[j], b.inv[i]
		return true, nil
	case "discardCurrentItem":
		s := b.inv[b.equipped]
		if s.Quantity <= 0 {
			return true, nil
		}
		b.inv[b.equipped] = stack{}
		return true, &dropped{stack: s, at: b.pos.Add(forward(b.yaw).Scale(dropDistance))}
	}

	if n, found := strings.CutPrefix(verb, "hotbar."); found {
		slot, err := strconv.Atoi(n)
		v, good := arg(1)
		if err != nil || !good || slot < 1 || slot > snapshot.HotBarSize {
			return false, nil
		}
		if v != 0 {
			b.equipped = slot - 1
		}
		return true, nil
	}
	return false, nil
}

// pickUp merges a stack into the inventory: onto a matching stack first,
// then into the lowest empty slot. It reports false when nothing fits.
func (b *body) pickUp(s stack) bool {
	for i := range b.inv {
		if b.inv[i].Type == s.Type && b.inv[i].Quantity > 0 {
			b.inv[i].Quantity += s.Quantity
			return true
		}
	}
	for i := range b.inv {
		if b.inv[i].Quantity <= 0 {
			b.inv[i] = s
			return true
		}
	}
	return false
}

func (b *body) inventoryRecords() []slotRecord {
	var out []slotRecord
	for i, s := range b.inv {
		if s.Quantity > 0 {
			out = append(out, slotRecord{index: i, stack: s})
		}
	}
	return out
}

type slotRecord struct {
	index int
	stack stack
}
