package schema

import "strings"

// Normalize returns a deep copy of the schema with every $ref pointer
// replaced by an inline copy of its target definition and the $defs table
// removed. Nested references (a definition referencing another definition)
// are resolved recursively. The input is never mutated.
func Normalize(schema map[string]any) map[string]any {
	out := deepCopyMap(schema)

	defs, ok := out["$defs"].(map[string]any)
	if !ok || len(defs) == 0 {
		delete(out, "$defs")
		return out
	}
	delete(out, "$defs")

	resolved, _ := resolve(out, defs).(map[string]any)
	return resolved
}

// resolve walks the copied schema and inlines references. A $ref node is
// replaced wholesale by its (recursively resolved) definition, matching the
// pydantic-style "#/$defs/Name" pointer format.
func resolve(node any, defs map[string]any) any {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok {
			name := ref[strings.LastIndex(ref, "/")+1:]
			if def, ok := defs[name]; ok {
				return resolve(deepCopy(def), defs)
			}
			// Unknown target: drop the pointer rather than ship a $ref
			// the backend will reject.
			return map[string]any{}
		}
		for k, child := range v {
			v[k] = resolve(child, defs)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = resolve(child, defs)
		}
		return v
	default:
		return v
	}
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return t
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}
