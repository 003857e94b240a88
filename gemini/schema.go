package gemini

// TranslateSchema converts a JSON-Schema-like parameter object (the shape
// host tools describe themselves with) into the Gemini-native Schema.
// Property names, types, descriptions and the required list are preserved
// verbatim. Unknown or malformed constructs are skipped rather than
// rejected, so a tool with an exotic schema stays available to the model.
func TranslateSchema(schema map[string]any) *Schema {
	if len(schema) == 0 {
		return nil
	}

	out := &Schema{}
	if v, ok := schema["type"].(string); ok {
		out.Type = v
	}
	if v, ok := schema["format"].(string); ok {
		out.Format = v
	}
	if v, ok := schema["description"].(string); ok {
		out.Description = v
	}
	if v, ok := schema["nullable"].(bool); ok {
		out.Nullable = v
	}
	out.Enum = stringList(schema["enum"])
	out.Required = stringList(schema["required"])

	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = TranslateSchema(items)
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*Schema, len(props))
		for name, raw := range props {
			prop, ok := raw.(map[string]any)
			if !ok {
				// Non-object property definition. Keep the name with an
				// empty schema instead of dropping the tool.
				out.Properties[name] = &Schema{}
				continue
			}
			out.Properties[name] = TranslateSchema(prop)
		}
	}

	return out
}

// stringList coerces a decoded JSON array into []string, skipping
// non-string elements. Accepts []string directly for hand-built schemas.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}
