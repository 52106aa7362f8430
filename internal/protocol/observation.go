package protocol

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Observation is the raw per-tick record an engine produces for one
// connection. Field names follow the engine's own JSON keys.
type Observation struct {
	XPos  float64 `json:"XPos"`
	YPos  float64 `json:"YPos"`
	ZPos  float64 `json:"ZPos"`
	Yaw   float64 `json:"Yaw"`
	Pitch float64 `json:"Pitch"`

	// BlockGrid is flattened x-outer, then z, then y.
	BlockGrid        []string          `json:"blockgrid"`
	NearbyEntities   []EntityRecord    `json:"nearby_entities"`
	Inventory        []InventoryRecord `json:"inventory"`
	CurrentItemIndex int               `json:"currentItemIndex"`
}

type EntityRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Quantity *int    `json:"quantity,omitempty"`
}

type InventoryRecord struct {
	Type     string `json:"type"`
	Index    int    `json:"index"`
	Quantity int    `json:"quantity"`
}

const observationSchemaURL = "observation.schema.json"

const observationSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["XPos", "YPos", "ZPos", "Yaw", "Pitch", "blockgrid", "nearby_entities", "inventory", "currentItemIndex"],
  "properties": {
    "XPos": {"type": "number"},
    "YPos": {"type": "number"},
    "ZPos": {"type": "number"},
    "Yaw": {"type": "number"},
    "Pitch": {"type": "number"},
    "blockgrid": {"type": "array", "items": {"type": "string"}},
    "nearby_entities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "x", "y", "z"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "z": {"type": "number"},
          "quantity": {"type": "integer", "minimum": 0}
        }
      }
    },
    "inventory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "index", "quantity"],
        "properties": {
          "type": {"type": "string"},
          "index": {"type": "integer"},
          "quantity": {"type": "integer", "minimum": 0}
        }
      }
    },
    "currentItemIndex": {"type": "integer"}
  }
}`

var (
	obsSchemaOnce sync.Once
	obsSchema     *jsonschema.Schema
)

func observationValidator() *jsonschema.Schema {
	obsSchemaOnce.Do(func() {
		obsSchema = jsonschema.MustCompileString(observationSchemaURL, observationSchema)
	})
	return obsSchema
}

// Violation is one structural problem found in a raw observation.
type Violation struct {
	// Location is a JSON pointer into the observation ("" for the root).
	Location string
	// Missing is set when a required field is absent.
	Missing bool
	Message string
}

// ValidateObservation checks doc, a value produced by json.Unmarshal into an
// interface{}, against the observation schema. It returns nil when doc is
// well formed.
func ValidateObservation(doc any) []Violation {
	err := observationValidator().Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Violation{{Message: err.Error()}}
	}
	var out []Violation
	collectLeaves(ve, &out)
	if len(out) == 0 {
		out = append(out, Violation{Location: ve.InstanceLocation, Message: ve.Message})
	}
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{
			Location: ve.InstanceLocation,
			Missing:  strings.HasSuffix(ve.KeywordLocation, "/required"),
			Message:  ve.Message,
		})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}
