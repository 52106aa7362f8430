package catalog

import "testing"

func TestClassify_ItemBeforeMob(t *testing.T) {
	cases := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"baked_potato", ItemKind(ItemBakedPotato), true},
		{"Villager", MobKind(MobVillager), true},
		{"chicken", ItemKind(ItemChicken), true},
		{"Chicken", MobKind(MobChicken), true},
		{"human", AgentKind, false},
		{"", AgentKind, false},
	}
	for _, c := range cases {
		got, ok := Classify(c.name)
		if got != c.want || ok != c.ok {
			t.Fatalf("Classify(%q)=(%v,%v) want (%v,%v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestMobSets(t *testing.T) {
	if !IsHostile(MobZombie) || IsHostile(MobCow) {
		t.Fatalf("hostile set mismatch")
	}
	if !IsPeaceful(MobVillager) || IsPeaceful(MobCreeper) {
		t.Fatalf("peaceful set mismatch")
	}
	if !DropsFood(MobPig) || DropsFood(MobWolf) {
		t.Fatalf("food mob set mismatch")
	}
	for m := range hostileMobs {
		if IsPeaceful(m) {
			t.Fatalf("%s is both hostile and peaceful", m)
		}
	}
}

func TestItemAndBlockTables(t *testing.T) {
	if !IsFood(ItemBread) || IsFood(ItemDiamondSword) {
		t.Fatalf("food item set mismatch")
	}
	if !IsItem("diamond_sword") || IsItem("Zombie") {
		t.Fatalf("item table mismatch")
	}
	if !IsBlock("air") || !IsBlock("stone") || IsBlock("diamond_sword") {
		t.Fatalf("block table mismatch")
	}
	if !IsMob("Zombie") || IsMob("zombie") {
		t.Fatalf("mob table mismatch")
	}
}

func TestDigestStable(t *testing.T) {
	a, b := Digest(), Digest()
	if a != b || len(a) != 64 {
		t.Fatalf("unstable digest %q vs %q", a, b)
	}
}
