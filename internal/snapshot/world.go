// Package snapshot decodes a connection's raw per-tick observation into an
// immutable World and answers queries against it.
package snapshot

import (
	"sort"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/geom"
)

// World is the decoded state of one connection as of one tick. It is built in
// one step by Decode and never modified afterwards; accessors return copies.
type World struct {
	position geom.Vector
	pov      geom.Rotation

	grid      map[Offset]catalog.BlockType
	entities  map[catalog.Kind][]Entity
	inventory map[catalog.ItemType][]InventoryItem
	equipped  int
}

func (w *World) Position() geom.Vector { return w.position }

func (w *World) POV() geom.Rotation { return w.pov }

// EquippedSlot is the hotbar index currently held, as reported by the engine.
func (w *World) EquippedSlot() int { return w.equipped }

// Block returns the block at a position relative to the agent.
func (w *World) Block(off Offset) (catalog.BlockType, bool) {
	b, ok := w.grid[off]
	return b, ok
}

func (w *World) GridLen() int { return len(w.grid) }

// Entities returns the nearby entities of one kind in arrival order.
func (w *World) Entities(kind catalog.Kind) []Entity {
	return append([]Entity(nil), w.entities[kind]...)
}

// AllEntities returns every nearby entity, grouped by kind in a stable order.
func (w *World) AllEntities() []Entity {
	kinds := make([]catalog.Kind, 0, len(w.entities))
	for k := range w.entities {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].Class != kinds[j].Class {
			return kinds[i].Class < kinds[j].Class
		}
		return kinds[i].Type < kinds[j].Type
	})
	var out []Entity
	for _, k := range kinds {
		out = append(out, w.entities[k]...)
	}
	return out
}

func (w *World) HasEntity(kind catalog.Kind) bool {
	return len(w.entities[kind]) > 0
}

// ClosestEntity returns the entity of the given kind nearest to the agent.
// Entities named exclude are skipped so an agent never targets itself.
func (w *World) ClosestEntity(kind catalog.Kind, exclude string) (Entity, bool) {
	return w.closest(w.entities[kind], func(e Entity) bool { return e.Name != exclude })
}

// EntityByName returns the closest entity whose name matches.
func (w *World) EntityByName(name string) (Entity, bool) {
	var cands []Entity
	for _, es := range w.entities {
		for _, e := range es {
			if e.Name == name {
				cands = append(cands, e)
			}
		}
	}
	return w.closest(cands, nil)
}

// ClosestMob returns the nearest mob accepted by filter; a nil filter accepts
// every mob.
func (w *World) ClosestMob(filter func(catalog.MobType) bool) (Entity, bool) {
	var cands []Entity
	for k, es := range w.entities {
		if k.Class != catalog.ClassMob {
			continue
		}
		if filter != nil && !filter(catalog.MobType(k.Type)) {
			continue
		}
		cands = append(cands, es...)
	}
	return w.closest(cands, nil)
}

// ClosestItem returns the nearest item lying on the ground whose type is
// accepted by filter.
func (w *World) ClosestItem(filter func(catalog.ItemType) bool) (Entity, bool) {
	var cands []Entity
	for k, es := range w.entities {
		if k.Class != catalog.ClassItem {
			continue
		}
		if filter != nil && !filter(catalog.ItemType(k.Type)) {
			continue
		}
		cands = append(cands, es...)
	}
	return w.closest(cands, nil)
}

func (w *World) closest(es []Entity, keep func(Entity) bool) (Entity, bool) {
	var (
		best  Entity
		bestD float64
		found bool
	)
	for _, e := range es {
		if keep != nil && !keep(e) {
			continue
		}
		d := geom.SquaredDistance(w.position, e.Position)
		// Equal distances resolve to the lower id so map order never decides.
		if !found || d < bestD || (d == bestD && e.ID < best.ID) {
			best, bestD, found = e, d, true
		}
	}
	return best, found
}

// InventoryItem returns the first stack of the given type, preferring hotbar
// stacks so equipping it needs no swap.
func (w *World) InventoryItem(t catalog.ItemType) (InventoryItem, bool) {
	items := w.inventory[t]
	for _, it := range items {
		if it.Quantity > 0 && it.Slot.IsHotBar() {
			return it, true
		}
	}
	for _, it := range items {
		if it.Quantity > 0 {
			return it, true
		}
	}
	return InventoryItem{}, false
}

func (w *World) HasInventoryItem(t catalog.ItemType) bool {
	_, ok := w.InventoryItem(t)
	return ok
}

// FindInventoryItem returns a held stack whose type is accepted by filter.
// Hotbar stacks win, then the lowest slot index.
func (w *World) FindInventoryItem(filter func(catalog.ItemType) bool) (InventoryItem, bool) {
	var (
		best  InventoryItem
		found bool
	)
	for t, items := range w.inventory {
		if !filter(t) {
			continue
		}
		for _, it := range items {
			if it.Quantity <= 0 {
				continue
			}
			if !found || better(it, best) {
				best, found = it, true
			}
		}
	}
	return best, found
}

func better(a, b InventoryItem) bool {
	if a.Slot.IsHotBar() != b.Slot.IsHotBar() {
		return a.Slot.IsHotBar()
	}
	return a.Slot.Index < b.Slot.Index
}

// InventoryItems returns every stack of the given type in arrival order.
func (w *World) InventoryItems(t catalog.ItemType) []InventoryItem {
	return append([]InventoryItem(nil), w.inventory[t]...)
}

// OccupiedHotbar reports, per hotbar index, whether a non-empty stack sits
// there.
func (w *World) OccupiedHotbar() [HotBarSize]bool {
	var occ [HotBarSize]bool
	for t, items := range w.inventory {
		if t == catalog.ItemType(catalog.BlockAir) {
			continue
		}
		for _, it := range items {
			if it.Slot.IsHotBar() && it.Quantity > 0 {
				occ[it.Slot.Index-HotBarFirst] = true
			}
		}
	}
	return occ
}

// AvailableHotbarSlot returns the lowest-numbered empty hotbar slot.
func (w *World) AvailableHotbarSlot() (int, bool) {
	occ := w.OccupiedHotbar()
	for i, used := range occ {
		if !used {
			return HotBarFirst + i, true
		}
	}
	return 0, false
}
