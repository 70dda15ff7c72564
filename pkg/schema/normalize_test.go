package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"Inner": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"value": map[string]any{"type": "string"},
				},
			},
			"Outer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inner": map[string]any{"$ref": "#/$defs/Inner"},
				},
			},
		},
		"properties": map[string]any{
			"outer": map[string]any{"$ref": "#/$defs/Outer"},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/Inner"},
			},
		},
	}
}

func hasRefs(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		if _, ok := t["$ref"]; ok {
			return true
		}
		for _, child := range t {
			if hasRefs(child) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if hasRefs(child) {
				return true
			}
		}
	}
	return false
}

func TestNormalizeInlinesMultiLevelRefs(t *testing.T) {
	got := Normalize(refSchema())

	assert.False(t, hasRefs(got), "normalized schema must contain no $ref pointers")
	assert.NotContains(t, got, "$defs")

	// Outer's inner ref must be resolved through to Inner's actual shape.
	outer := got["properties"].(map[string]any)["outer"].(map[string]any)
	inner := outer["properties"].(map[string]any)["inner"].(map[string]any)
	value := inner["properties"].(map[string]any)["value"].(map[string]any)
	assert.Equal(t, "string", value["type"])
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(refSchema())
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := refSchema()
	before, err := json.Marshal(in)
	require.NoError(t, err)

	_ = Normalize(in)

	after, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestNormalizeWithoutDefs(t *testing.T) {
	in := map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	}
	got := Normalize(in)
	assert.Equal(t, in, got)
}

func TestPlanSchemaNormalizes(t *testing.T) {
	got := Normalize(Plan())

	require.False(t, hasRefs(got))

	// The scene definition must be inlined into the scenes array.
	scenes := got["properties"].(map[string]any)["scenes"].(map[string]any)
	items := scenes["items"].(map[string]any)
	props := items["properties"].(map[string]any)
	for _, field := range []string{"scene_number", "duration_seconds", "generation_method", "video_prompt"} {
		assert.Contains(t, props, field)
	}

	method := props["generation_method"].(map[string]any)
	assert.ElementsMatch(t, []any{"t2i_i2v", "t2v"}, method["enum"])

	// Sanity: the whole thing must survive a JSON round trip for the API call.
	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "$ref"))
}
