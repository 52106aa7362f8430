package sim

import (
	"math"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/protocol"
)

// observe builds the raw record for one body. The world is flat: stone below
// ground level, grass at it, air above.
func (w *World) observe(b *body) protocol.Observation {
	rng := w.cfg.ObservableRange
	grid := make([]string, 0, rng.GridSize())
	baseY := int(math.Floor(b.pos.Y))
	for x := -rng.X; x < rng.X; x++ {
		for z := -rng.Z; z < rng.Z; z++ {
			for y := -rng.Y; y < rng.Y; y++ {
				grid = append(grid, string(w.blockAt(baseY+y)))
			}
		}
	}

	var ents []protocol.EntityRecord
	near := func(p geom.Vector) bool { return geom.Distance(b.pos, p) <= w.cfg.EntityRange }
	for _, o := range w.memberBodies() {
		if near(o.pos) {
			ents = append(ents, protocol.EntityRecord{ID: o.id, Name: o.name, X: o.pos.X, Y: o.pos.Y, Z: o.pos.Z})
		}
	}
	for _, m := range w.mobs {
		if near(m.pos) {
			ents = append(ents, protocol.EntityRecord{ID: m.id, Name: m.name, X: m.pos.X, Y: m.pos.Y, Z: m.pos.Z})
		}
	}
	for _, it := range w.items {
		if near(it.pos) {
			q := it.quantity
			ents = append(ents, protocol.EntityRecord{ID: it.id, Name: it.name, X: it.pos.X, Y: it.pos.Y, Z: it.pos.Z, Quantity: &q})
		}
	}
	if ents == nil {
		ents = []protocol.EntityRecord{}
	}

	inv := []protocol.InventoryRecord{}
	for _, r := range b.inventoryRecords() {
		inv = append(inv, protocol.InventoryRecord{Type: r.stack.Type, Index: r.index, Quantity: r.stack.Quantity})
	}

	return protocol.Observation{
		XPos:             b.pos.X,
		YPos:             b.pos.Y,
		ZPos:             b.pos.Z,
		Yaw:              b.yaw,
		Pitch:            b.pitch,
		BlockGrid:        grid,
		NearbyEntities:   ents,
		Inventory:        inv,
		CurrentItemIndex: b.equipped,
	}
}

func (w *World) blockAt(y int) catalog.BlockType {
	switch {
	case y < w.cfg.GroundY:
		return catalog.BlockStone
	case y == w.cfg.GroundY:
		return catalog.BlockType(w.cfg.SurfaceBlock)
	default:
		return catalog.BlockAir
	}
}

// State is a read-only summary served over HTTP.
type State struct {
	Tick         uint64       `json:"tick"`
	ExperimentID string       `json:"experiment_id,omitempty"`
	Phase        Phase        `json:"phase"`
	Clients      int          `json:"clients"`
	Agents       []AgentState `json:"agents"`
	Mobs         int          `json:"mobs"`
	Items        int          `json:"items"`
}

type AgentState struct {
	Name     string      `json:"name"`
	Role     int         `json:"role"`
	Position geom.Vector `json:"position"`
	Yaw      float64     `json:"yaw"`
	Pitch    float64     `json:"pitch"`
	Equipped int         `json:"equipped"`
}

func (w *World) snapshotState() State {
	st := State{
		Tick:    w.tick.Load(),
		Phase:   PhaseIdle,
		Clients: len(w.sessions),
		Agents:  []AgentState{},
		Mobs:    len(w.mobs),
		Items:   len(w.items),
	}
	if w.exp == nil {
		return st
	}
	st.ExperimentID = w.exp.id
	st.Phase = w.exp.phase
	for role := 0; role < w.exp.roles; role++ {
		b := w.bodies[w.exp.members[role]]
		if b == nil {
			continue
		}
		st.Agents = append(st.Agents, AgentState{
			Name:     b.name,
			Role:     role,
			Position: b.pos,
			Yaw:      b.yaw,
			Pitch:    b.pitch,
			Equipped: b.equipped,
		})
	}
	return st
}
