// Package catalog holds the static identifier tables for mobs, items and
// blocks, and classifies raw entity names against them.
//
// The tables are built once at package init and never mutated; lookups are
// plain map probes.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

type (
	MobType   string
	ItemType  string
	BlockType string
)

// Class is the broad category of a nearby entity.
type Class uint8

const (
	ClassAgent Class = iota
	ClassMob
	ClassItem
)

func (c Class) String() string {
	switch c {
	case ClassMob:
		return "mob"
	case ClassItem:
		return "item"
	default:
		return "agent"
	}
}

// Kind identifies a bucket of nearby entities. All other agents share the
// single Kind{Class: ClassAgent}.
type Kind struct {
	Class Class
	Type  string
}

// AgentKind is the kind given to any entity whose name is in neither the item
// nor the mob table.
var AgentKind = Kind{Class: ClassAgent}

func MobKind(m MobType) Kind   { return Kind{Class: ClassMob, Type: string(m)} }
func ItemKind(i ItemType) Kind { return Kind{Class: ClassItem, Type: string(i)} }

func (k Kind) String() string {
	if k.Class == ClassAgent {
		return "agent"
	}
	return k.Class.String() + ":" + k.Type
}

type mobSet map[MobType]struct{}

func newMobSet(ms ...MobType) mobSet {
	s := make(mobSet, len(ms))
	for _, m := range ms {
		s[m] = struct{}{}
	}
	return s
}

type itemSet map[ItemType]struct{}

func newItemSet(is ...ItemType) itemSet {
	s := make(itemSet, len(is))
	for _, i := range is {
		s[i] = struct{}{}
	}
	return s
}

var (
	mobIndex   = newMobSet(mobTypes...)
	itemIndex  = newItemSet(itemTypes...)
	blockIndex = func() map[BlockType]struct{} {
		m := make(map[BlockType]struct{}, len(blockTypes))
		for _, b := range blockTypes {
			m[b] = struct{}{}
		}
		return m
	}()
)

// Classify maps a raw entity name to its kind. Items are probed before mobs so
// that a name present in both tables is treated as a dropped item. Names found
// in neither are other agents; ok is false in that case.
func Classify(name string) (k Kind, ok bool) {
	if _, hit := itemIndex[ItemType(name)]; hit {
		return ItemKind(ItemType(name)), true
	}
	if _, hit := mobIndex[MobType(name)]; hit {
		return MobKind(MobType(name)), true
	}
	return AgentKind, false
}

func IsMob(name string) bool {
	_, ok := mobIndex[MobType(name)]
	return ok
}

func IsItem(name string) bool {
	_, ok := itemIndex[ItemType(name)]
	return ok
}

func IsBlock(name string) bool {
	_, ok := blockIndex[BlockType(name)]
	return ok
}

func IsHostile(m MobType) bool {
	_, ok := hostileMobs[m]
	return ok
}

func IsPeaceful(m MobType) bool {
	_, ok := peacefulMobs[m]
	return ok
}

func DropsFood(m MobType) bool {
	_, ok := foodMobs[m]
	return ok
}

func IsFood(i ItemType) bool {
	_, ok := foodItems[i]
	return ok
}

// Digest is a stable sha256 over all three tables, recorded alongside each
// session so recordings can be matched to the catalog they were decoded with.
func Digest() string {
	names := make([]string, 0, len(mobTypes)+len(itemTypes)+len(blockTypes))
	for _, m := range mobTypes {
		names = append(names, "mob:"+string(m))
	}
	for _, i := range itemTypes {
		names = append(names, "item:"+string(i))
	}
	for _, b := range blockTypes {
		names = append(names, "block:"+string(b))
	}
	sort.Strings(names)
	sum := sha256.Sum256([]byte(strings.Join(names, "\n")))
	return hex.EncodeToString(sum[:])
}
