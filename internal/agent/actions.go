package agent

import (
	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/control"
	"missionloop.ai/internal/geom"
)

// LookAt turns the camera toward the target and reports whether the agent
// already faces it. Call it every tick until it returns true.
func (a *Agent) LookAt(t Target) bool {
	e, ok := a.Resolve(t)
	if !ok {
		return false
	}
	return a.lookAt(e.Position)
}

func (a *Agent) lookAt(p geom.Vector) bool {
	w := a.state
	r, _ := a.law.TurnRates(w.Position(), w.POV(), p)
	aligned := true
	if geom.ApproxEqual(r.Yaw, 0, control.AlignTolerance) {
		a.send("turn", 0)
	} else {
		a.send("turn", r.Yaw)
		aligned = false
	}
	if geom.ApproxEqual(r.Pitch, 0, control.AlignTolerance) {
		a.send("pitch", 0)
	} else {
		a.send("pitch", r.Pitch)
		aligned = false
	}
	return aligned
}

// MoveTo walks toward the target until it is within keepDistance, and
// reports whether it is. A negative keepDistance uses the control law's stop
// distance.
func (a *Agent) MoveTo(t Target, keepDistance float64) bool {
	e, ok := a.Resolve(t)
	if !ok {
		a.stopMoving()
		return false
	}
	return a.moveTo(e.Position, keepDistance)
}

func (a *Agent) moveTo(p geom.Vector, keepDistance float64) bool {
	w := a.state
	if keepDistance < 0 {
		keepDistance = a.law.StopDistance
		if keepDistance <= 0 {
			keepDistance = control.DefaultStopDistance
		}
	}
	m := a.law.MoveRates(w.Position(), w.POV(), p, keepDistance)
	a.send("strafe", m.Strafe)
	a.send("move", m.Move)
	return control.Arrived(w.Position(), p, keepDistance)
}

// Attack faces and approaches the target, and swings once it is aligned and
// within AttackReach. It reports whether a swing was made this tick.
func (a *Agent) Attack(t Target) bool {
	e, ok := a.Resolve(t)
	if !ok {
		a.sendRaw("attack 0")
		return false
	}
	aligned := a.lookAt(e.Position)
	a.moveTo(e.Position, -1)
	if !aligned || geom.Distance(a.state.Position(), e.Position) > AttackReach {
		a.sendRaw("attack 0")
		return false
	}
	a.sendRaw("attack 1")
	a.sendRaw("attack 0")
	return true
}

// Equip brings an item from the inventory into the hand. It reports false
// when the agent holds no such item.
func (a *Agent) Equip(item catalog.ItemType) bool {
	w := a.state
	if w == nil {
		return false
	}
	it, ok := w.InventoryItem(item)
	if !ok {
		return false
	}
	plan := control.ResolveEquipTarget(it.Slot, w.OccupiedHotbar(), w.EquippedSlot())
	if plan.Swap {
		a.sendf("swapInventoryItems %d %d", plan.Target, plan.From)
	}
	a.sendf("hotbar.%d 1", plan.Target+1)
	a.sendf("hotbar.%d 0", plan.Target+1)
	return true
}

// Equipped reports whether the held hotbar slot carries the item.
func (a *Agent) Equipped(item catalog.ItemType) bool {
	w := a.state
	if w == nil {
		return false
	}
	for _, it := range w.InventoryItems(item) {
		if it.Quantity > 0 && it.Slot.IsHotBar() && it.Slot.Index == w.EquippedSlot() {
			return true
		}
	}
	return false
}

// GiveItem equips the item, walks up to the target facing it, and drops the
// held stack in front of it. It reports whether the item was dropped.
func (a *Agent) GiveItem(item catalog.ItemType, t Target) bool {
	if a.state == nil || !a.state.HasInventoryItem(item) {
		return false
	}
	if !a.Equipped(item) {
		a.Equip(item)
		return false
	}
	e, ok := a.Resolve(t)
	if !ok {
		a.stopMoving()
		return false
	}
	aligned := a.lookAt(e.Position)
	arrived := a.moveTo(e.Position, -1)
	if !aligned || !arrived {
		return false
	}
	a.sendRaw("discardCurrentItem")
	return true
}

// DoNothing zeroes every continuous rate and releases attack.
func (a *Agent) DoNothing() {
	a.send("turn", 0)
	a.send("pitch", 0)
	a.stopMoving()
	a.sendRaw("attack 0")
}

func (a *Agent) stopMoving() {
	a.send("strafe", 0)
	a.send("move", 0)
}
