package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"missionloop.ai/internal/catalog"
	"missionloop.ai/internal/geom"
	"missionloop.ai/internal/protocol"
)

// Decode turns one raw observation record into a World. The record is checked
// against the observation schema first, so a missing or mistyped field fails
// the whole decode before anything is built.
func Decode(raw []byte, rng ObservableRange) (*World, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DecodeError{Reason: Malformed, Err: err}
	}
	if vs := protocol.ValidateObservation(doc); len(vs) > 0 {
		return nil, violationError(vs)
	}
	var obs protocol.Observation
	if err := json.Unmarshal(raw, &obs); err != nil {
		return nil, &DecodeError{Reason: InvalidField, Err: err}
	}
	return build(obs, rng)
}

func violationError(vs []protocol.Violation) *DecodeError {
	reason := InvalidField
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if v.Missing {
			reason = MissingField
		}
		loc := v.Location
		if loc == "" {
			loc = "/"
		}
		parts = append(parts, loc+": "+v.Message)
	}
	return &DecodeError{Reason: reason, Detail: strings.Join(parts, "; ")}
}

func build(obs protocol.Observation, rng ObservableRange) (*World, error) {
	if err := rng.Validate(); err != nil {
		return nil, &DecodeError{Reason: InvalidField, Err: err}
	}
	grid, err := buildGrid(obs.BlockGrid, rng)
	if err != nil {
		return nil, err
	}
	inventory, err := buildInventory(obs.Inventory)
	if err != nil {
		return nil, err
	}

	w := &World{
		position: geom.Vec(obs.XPos, obs.YPos, obs.ZPos),
		pov: geom.Rotation{
			Yaw:   geom.NormalizeYaw(obs.Yaw),
			Pitch: obs.Pitch,
		},
		grid:      grid,
		entities:  buildEntities(obs.NearbyEntities),
		inventory: inventory,
		equipped:  obs.CurrentItemIndex,
	}
	return w, nil
}

func buildGrid(cells []string, rng ObservableRange) (map[Offset]catalog.BlockType, error) {
	want := rng.GridSize()
	if len(cells) != want {
		return nil, &DecodeError{
			Reason: GridSizeMismatch,
			Detail: fmt.Sprintf("got %d cells, want %d for range %d,%d,%d", len(cells), want, rng.X, rng.Y, rng.Z),
		}
	}
	grid := make(map[Offset]catalog.BlockType, want)
	i := 0
	for x := -rng.X; x < rng.X; x++ {
		for z := -rng.Z; z < rng.Z; z++ {
			for y := -rng.Y; y < rng.Y; y++ {
				grid[Offset{X: x, Y: y, Z: z}] = catalog.BlockType(cells[i])
				i++
			}
		}
	}
	return grid, nil
}

// GridIndex returns the flat blockgrid index of off under the x, z, y
// iteration order, or -1 when off lies outside rng.
func GridIndex(off Offset, rng ObservableRange) int {
	if off.X < -rng.X || off.X >= rng.X || off.Y < -rng.Y || off.Y >= rng.Y || off.Z < -rng.Z || off.Z >= rng.Z {
		return -1
	}
	xi := off.X + rng.X
	zi := off.Z + rng.Z
	yi := off.Y + rng.Y
	return (xi*(2*rng.Z)+zi)*(2*rng.Y) + yi
}

func buildEntities(recs []protocol.EntityRecord) map[catalog.Kind][]Entity {
	out := make(map[catalog.Kind][]Entity)
	for _, r := range recs {
		kind, _ := catalog.Classify(r.Name)
		qty := uint(1)
		if r.Quantity != nil && *r.Quantity >= 0 {
			qty = uint(*r.Quantity)
		}
		out[kind] = append(out[kind], Entity{
			ID:       r.ID,
			Kind:     kind,
			Name:     r.Name,
			Position: geom.Vec(r.X, r.Y, r.Z),
			Quantity: qty,
		})
	}
	return out
}

func buildInventory(recs []protocol.InventoryRecord) (map[catalog.ItemType][]InventoryItem, error) {
	out := make(map[catalog.ItemType][]InventoryItem)
	for _, r := range recs {
		slot, ok := ResolveSlot(r.Index)
		if !ok {
			return nil, &DecodeError{Reason: InvalidSlot, Detail: fmt.Sprintf("inventory index %d for %q", r.Index, r.Type)}
		}
		t := catalog.ItemType(r.Type)
		out[t] = append(out[t], InventoryItem{Type: t, Quantity: r.Quantity, Slot: slot})
	}
	return out, nil
}
