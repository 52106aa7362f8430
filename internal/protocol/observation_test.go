package protocol

import (
	"encoding/json"
	"testing"
)

func decodeAny(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return v
}

func TestValidateObservation_OK(t *testing.T) {
	doc := decodeAny(t, `{
	  "XPos": 0.5, "YPos": 4, "ZPos": -2.5, "Yaw": -90, "Pitch": 10,
	  "blockgrid": ["air", "stone"],
	  "nearby_entities": [{"id": "e1", "name": "Villager", "x": 1, "y": 4, "z": 2}],
	  "inventory": [{"type": "diamond_sword", "index": 0, "quantity": 1}],
	  "currentItemIndex": 0
	}`)
	if v := ValidateObservation(doc); v != nil {
		t.Fatalf("expected valid, got %+v", v)
	}
}

func TestValidateObservation_MissingField(t *testing.T) {
	doc := decodeAny(t, `{
	  "XPos": 0, "YPos": 4, "ZPos": 0, "Yaw": 0, "Pitch": 0,
	  "nearby_entities": [], "inventory": [], "currentItemIndex": 0
	}`)
	v := ValidateObservation(doc)
	if len(v) == 0 {
		t.Fatalf("expected violations")
	}
	missing := false
	for _, x := range v {
		if x.Missing {
			missing = true
		}
	}
	if !missing {
		t.Fatalf("expected a missing-field violation, got %+v", v)
	}
}

func TestValidateObservation_WrongType(t *testing.T) {
	doc := decodeAny(t, `{
	  "XPos": "zero", "YPos": 4, "ZPos": 0, "Yaw": 0, "Pitch": 0,
	  "blockgrid": [], "nearby_entities": [], "inventory": [], "currentItemIndex": 1.5
	}`)
	v := ValidateObservation(doc)
	if len(v) == 0 {
		t.Fatalf("expected violations")
	}
	for _, x := range v {
		if x.Missing {
			t.Fatalf("did not expect missing-field violation: %+v", x)
		}
	}
}
