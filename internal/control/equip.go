package control

import "missionloop.ai/internal/snapshot"

// EquipPlan says where an item must sit before the hotbar key for Target is
// pressed. When Swap is set the stack at From has to be swapped into Target
// first.
type EquipPlan struct {
	Target int
	Swap   bool
	From   int
}

// ResolveEquipTarget picks the hotbar slot an item should be equipped from.
// An item already in the hotbar stays put. Otherwise the lowest free hotbar
// slot is used, and when the hotbar is full the currently equipped slot is
// swapped out.
func ResolveEquipTarget(item snapshot.Slot, occupied [snapshot.HotBarSize]bool, equipped int) EquipPlan {
	if item.IsHotBar() {
		return EquipPlan{Target: item.Index, From: item.Index}
	}
	for i, used := range occupied {
		if !used {
			return EquipPlan{Target: snapshot.HotBarFirst + i, Swap: true, From: item.Index}
		}
	}
	if equipped < snapshot.HotBarFirst || equipped > snapshot.HotBarLast {
		equipped = snapshot.HotBarFirst
	}
	return EquipPlan{Target: equipped, Swap: true, From: item.Index}
}
