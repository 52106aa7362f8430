package agent

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/control"
	"missionloop.ai/internal/snapshot"
)

type fakeCommander struct {
	sent []string
	err  error
}

func (f *fakeCommander) SendCommand(cmd string) error {
	f.sent = append(f.sent, cmd)
	return f.err
}

type ent struct {
	id, name string
	x, y, z  float64
}

type slot struct {
	typ      string
	index    int
	quantity int
}

func world(t *testing.T, yaw float64, equipped int, ents []ent, inv []slot) *snapshot.World {
	t.Helper()
	es := []map[string]any{{"id": "self", "name": "computer", "x": 0.0, "y": 4.0, "z": 0.0}}
	for _, e := range ents {
		es = append(es, map[string]any{"id": e.id, "name": e.name, "x": e.x, "y": e.y, "z": e.z})
	}
	is := []map[string]any{}
	for _, s := range inv {
		is = append(is, map[string]any{"type": s.typ, "index": s.index, "quantity": s.quantity})
	}
	raw, err := json.Marshal(map[string]any{
		"XPos": 0.0, "YPos": 4.0, "ZPos": 0.0,
		"Yaw": yaw, "Pitch": 0.0,
		"blockgrid":        []string{},
		"nearby_entities":  es,
		"inventory":        is,
		"currentItemIndex": equipped,
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

func newAgent(w *snapshot.World) (*Agent, *fakeCommander) {
	fc := &fakeCommander{}
	a := New("computer", fc, control.Default(), nil)
	a.Sync(w)
	return a, fc
}

func expectSent(t *testing.T, fc *fakeCommander, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(fc.sent, want) {
		t.Fatalf("sent=%q want %q", fc.sent, want)
	}
	fc.sent = nil
}

func TestLookAt(t *testing.T) {
	a, fc := newAgent(world(t, 0, 0, []ent{{"h", "human", 0, 4, 5}}, nil))
	if !a.LookAt(ByName("human")) {
		t.Fatalf("target straight ahead should be aligned")
	}
	expectSent(t, fc, "turn 0", "pitch 0")

	a, fc = newAgent(world(t, 0, 0, []ent{{"h", "human", 5, 4, 0}}, nil))
	if a.LookAt(ByName("human")) {
		t.Fatalf("target to the side should not be aligned")
	}
	expectSent(t, fc, "turn -1", "pitch 0")
}

func TestLookAt_NeverTargetsSelf(t *testing.T) {
	a, fc := newAgent(world(t, 0, 0, nil, nil))
	if a.LookAt(ByName("computer")) {
		t.Fatalf("looking at self should fail")
	}
	if _, ok := a.Resolve(ByKind(catalog.AgentKind)); ok {
		t.Fatalf("own entity resolved by kind")
	}
	expectSent(t, fc)
}

func TestActions_NoSnapshot(t *testing.T) {
	fc := &fakeCommander{}
	a := New("computer", fc, control.Default(), nil)
	if a.LookAt(ByName("human")) || a.Equip(catalog.ItemApple) || a.GiveItem(catalog.ItemApple, ByName("human")) {
		t.Fatalf("actions without a snapshot must fail")
	}
}

func TestMoveTo(t *testing.T) {
	a, fc := newAgent(world(t, 0, 0, []ent{{"h", "human", 0, 4, 10}}, nil))
	if a.MoveTo(ByName("human"), 3) {
		t.Fatalf("far target reported arrived")
	}
	expectSent(t, fc, "strafe 0", "move 1")

	a, fc = newAgent(world(t, 0, 0, []ent{{"h", "human", 0, 4, 2.5}}, nil))
	if !a.MoveTo(ByName("human"), 3) {
		t.Fatalf("target within keep distance not arrived")
	}
	expectSent(t, fc, "strafe 0", "move 0")

	if a.MoveTo(ByName("nobody"), 3) {
		t.Fatalf("missing target reported arrived")
	}
	expectSent(t, fc, "strafe 0", "move 0")
}

func TestAttack(t *testing.T) {
	villager := ent{"v1", string(catalog.MobVillager), 0, 4, 2}
	a, fc := newAgent(world(t, 0, 0, []ent{villager}, nil))
	if !a.Attack(ByKind(catalog.MobKind(catalog.MobVillager))) {
		t.Fatalf("aligned target in reach should be attacked")
	}
	expectSent(t, fc, "turn 0", "pitch 0", "strafe 0", "move 0", "attack 1", "attack 0")

	villager.z = 6
	a, fc = newAgent(world(t, 0, 0, []ent{villager}, nil))
	if a.Attack(ByKind(catalog.MobKind(catalog.MobVillager))) {
		t.Fatalf("target out of reach attacked")
	}
	expectSent(t, fc, "turn 0", "pitch 0", "strafe 0", "move 1", "attack 0")
}

func TestEquip(t *testing.T) {
	inv := []slot{
		{string(catalog.ItemDiamondSword), 0, 1},
		{string(catalog.ItemBakedPotato), 12, 3},
		{string(catalog.ItemApple), 3, 1},
	}
	a, fc := newAgent(world(t, 0, 0, nil, inv))

	if !a.Equip(catalog.ItemBakedPotato) {
		t.Fatalf("Equip from main inventory failed")
	}
	expectSent(t, fc, "swapInventoryItems 1 12", "hotbar.2 1", "hotbar.2 0")

	if !a.Equip(catalog.ItemApple) {
		t.Fatalf("Equip from hotbar failed")
	}
	expectSent(t, fc, "hotbar.4 1", "hotbar.4 0")

	if a.Equip(catalog.ItemBread) {
		t.Fatalf("Equip of missing item succeeded")
	}
	expectSent(t, fc)

	if !a.Equipped(catalog.ItemDiamondSword) || a.Equipped(catalog.ItemApple) {
		t.Fatalf("Equipped reports wrong slot")
	}
}

func TestGiveItem(t *testing.T) {
	human := ent{"h", "human", 0, 4, 1.5}
	potato := slot{string(catalog.ItemBakedPotato), 2, 1}

	a, fc := newAgent(world(t, 0, 0, []ent{human}, []slot{potato}))
	if a.GiveItem(catalog.ItemBakedPotato, ByName("human")) {
		t.Fatalf("give before equipping should not drop")
	}
	expectSent(t, fc, "hotbar.3 1", "hotbar.3 0")

	a, fc = newAgent(world(t, 0, 2, []ent{human}, []slot{potato}))
	if !a.GiveItem(catalog.ItemBakedPotato, ByName("human")) {
		t.Fatalf("equipped, aligned and close: should drop")
	}
	expectSent(t, fc, "turn 0", "pitch 0", "strafe 0", "move 0", "discardCurrentItem")
}

func TestResolve_ByEntityTracksID(t *testing.T) {
	first := world(t, 0, 0, []ent{{"p1", string(catalog.MobPig), 0, 4, 5}}, nil)
	a, _ := newAgent(first)
	pig, ok := a.Resolve(ByKind(catalog.MobKind(catalog.MobPig)))
	if !ok {
		t.Fatalf("pig not found")
	}

	a.Sync(world(t, 0, 0, []ent{{"p1", string(catalog.MobPig), 1, 4, 6}}, nil))
	got, ok := a.Resolve(ByEntity(pig))
	if !ok || got.Position.X != 1 {
		t.Fatalf("tracked pig=%+v ok=%v", got, ok)
	}

	a.Sync(world(t, 0, 0, nil, nil))
	if _, ok := a.Resolve(ByEntity(pig)); ok {
		t.Fatalf("vanished entity still resolved")
	}
}

func TestSync_NilKeepsPrevious(t *testing.T) {
	w := world(t, 0, 0, nil, nil)
	a, _ := newAgent(w)
	a.Sync(nil)
	if a.State() != w {
		t.Fatalf("nil sync replaced the snapshot")
	}
}

func TestDoNothingAndDrainSent(t *testing.T) {
	fc := &fakeCommander{err: errors.New("closed")}
	a := New("computer", fc, control.Default(), nil)
	a.DoNothing()
	want := []string{"turn 0", "pitch 0", "strafe 0", "move 0", "attack 0"}
	if got := a.DrainSent(); !reflect.DeepEqual(got, want) {
		t.Fatalf("DrainSent=%q", got)
	}
	if len(a.DrainSent()) != 0 {
		t.Fatalf("DrainSent did not reset")
	}
	if a.Err() == nil {
		t.Fatalf("send error not recorded")
	}
}
