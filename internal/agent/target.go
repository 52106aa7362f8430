package agent

import (
	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/snapshot"
)

type selector uint8

const (
	byName selector = iota + 1
	byKind
	byEntity
)

// Target names what an action is aimed at. Build one with ByName, ByKind or
// ByEntity.
type Target struct {
	by     selector
	name   string
	kind   catalog.Kind
	entity snapshot.Entity
}

// ByName targets the closest entity with the given name.
func ByName(name string) Target { return Target{by: byName, name: name} }

// ByKind targets the closest entity of a kind, such as a mob or item type.
func ByKind(k catalog.Kind) Target { return Target{by: byKind, kind: k} }

// ByEntity targets a specific entity, tracked by id in later snapshots.
func ByEntity(e snapshot.Entity) Target { return Target{by: byEntity, entity: e} }

func (t Target) String() string {
	switch t.by {
	case byName:
		return "name:" + t.name
	case byKind:
		return "kind:" + t.kind.String()
	case byEntity:
		return "entity:" + t.entity.ID
	default:
		return "none"
	}
}

// Resolve finds the target in the current snapshot. The agent's own entity
// never matches.
func (a *Agent) Resolve(t Target) (snapshot.Entity, bool) {
	w := a.state
	if w == nil {
		return snapshot.Entity{}, false
	}
	switch t.by {
	case byName:
		if t.name == a.name {
			return snapshot.Entity{}, false
		}
		return w.EntityByName(t.name)
	case byKind:
		return w.ClosestEntity(t.kind, a.name)
	case byEntity:
		for _, e := range w.Entities(t.entity.Kind) {
			if e.ID == t.entity.ID && e.Name != a.name {
				return e, true
			}
		}
	}
	return snapshot.Entity{}, false
}
