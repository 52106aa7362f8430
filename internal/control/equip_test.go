package control

import (
	"testing"

	"missionloop.ai/internal/snapshot"
)

func slot(i int) snapshot.Slot {
	s, ok := snapshot.ResolveSlot(i)
	if !ok {
		panic("bad slot")
	}
	return s
}

func TestResolveEquipTarget(t *testing.T) {
	var empty [snapshot.HotBarSize]bool
	full := [snapshot.HotBarSize]bool{true, true, true, true, true, true, true, true, true}
	partial := [snapshot.HotBarSize]bool{true, true, false, true}

	cases := []struct {
		name     string
		item     snapshot.Slot
		occupied [snapshot.HotBarSize]bool
		equipped int
		want     EquipPlan
	}{
		{"already in hotbar", slot(4), full, 0, EquipPlan{Target: 4, From: 4}},
		{"first free slot", slot(20), partial, 0, EquipPlan{Target: 2, Swap: true, From: 20}},
		{"empty hotbar", slot(9), empty, 5, EquipPlan{Target: 0, Swap: true, From: 9}},
		{"hotbar full swaps equipped", slot(30), full, 6, EquipPlan{Target: 6, Swap: true, From: 30}},
		{"bad equipped index", slot(30), full, 12, EquipPlan{Target: 0, Swap: true, From: 30}},
		{"armor slot", slot(38), partial, 0, EquipPlan{Target: 2, Swap: true, From: 38}},
	}
	for _, c := range cases {
		got := ResolveEquipTarget(c.item, c.occupied, c.equipped)
		if got != c.want {
			t.Fatalf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
}

func TestResolveEquipTarget_NeverEvictsWhenFree(t *testing.T) {
	for free := 0; free < snapshot.HotBarSize; free++ {
		var occ [snapshot.HotBarSize]bool
		for i := range occ {
			occ[i] = i != free
		}
		p := ResolveEquipTarget(slot(15), occ, 3)
		if occ[p.Target] {
			t.Fatalf("free=%d: targeted occupied slot %d", free, p.Target)
		}
	}
}
