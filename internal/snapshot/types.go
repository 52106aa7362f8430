package snapshot

import (
	"fmt"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/geom"
)

// ObservableRange fixes the half-extents of the block grid around an agent.
// The grid holds (2X)(2Y)(2Z) cells, each axis covering [-extent, extent).
type ObservableRange struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	Z int `yaml:"z" json:"z"`
}

func (r ObservableRange) GridSize() int {
	return (2 * r.X) * (2 * r.Y) * (2 * r.Z)
}

func (r ObservableRange) Validate() error {
	if r.X < 0 || r.Y < 0 || r.Z < 0 {
		return fmt.Errorf("observable range must be non-negative: %+v", r)
	}
	return nil
}

// Offset is a block position relative to the agent.
type Offset struct {
	X, Y, Z int
}

type Entity struct {
	ID       string
	Kind     catalog.Kind
	Name     string
	Position geom.Vector
	Quantity uint
}

// SlotCategory tells which part of the inventory a slot index belongs to.
type SlotCategory uint8

const (
	HotBar SlotCategory = iota + 1
	MainInventory
	Armor
)

func (c SlotCategory) String() string {
	switch c {
	case HotBar:
		return "hotbar"
	case MainInventory:
		return "main"
	case Armor:
		return "armor"
	default:
		return "unknown"
	}
}

// Inventory layout. Ranges are contiguous and non-overlapping.
const (
	HotBarFirst = 0
	HotBarLast  = 8
	MainFirst   = 9
	MainLast    = 35
	ArmorFirst  = 36
	ArmorLast   = 39

	HotBarSize = HotBarLast - HotBarFirst + 1
)

// Armor slot indices.
const (
	ArmorBoots      = 36
	ArmorLeggings   = 37
	ArmorChestplate = 38
	ArmorHelmet     = 39
)

// Slot is a discriminated inventory slot reference.
type Slot struct {
	Category SlotCategory
	Index    int
}

// ResolveSlot maps a raw numeric inventory index to its slot category.
func ResolveSlot(index int) (Slot, bool) {
	switch {
	case index >= HotBarFirst && index <= HotBarLast:
		return Slot{Category: HotBar, Index: index}, true
	case index >= MainFirst && index <= MainLast:
		return Slot{Category: MainInventory, Index: index}, true
	case index >= ArmorFirst && index <= ArmorLast:
		return Slot{Category: Armor, Index: index}, true
	}
	return Slot{}, false
}

func (s Slot) IsHotBar() bool { return s.Category == HotBar }

func (s Slot) String() string {
	if s.Category == Armor {
		switch s.Index {
		case ArmorBoots:
			return "armor:boots"
		case ArmorLeggings:
			return "armor:leggings"
		case ArmorChestplate:
			return "armor:chestplate"
		case ArmorHelmet:
			return "armor:helmet"
		}
	}
	return fmt.Sprintf("%s:%d", s.Category, s.Index)
}

type InventoryItem struct {
	Type     catalog.ItemType
	Quantity int
	Slot     Slot
}
