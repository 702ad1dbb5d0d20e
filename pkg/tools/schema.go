package tools

// Schema helpers for building tool input schemas as plain maps.

// Object builds an object schema. additionalProperties is left open.
func Object(properties map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// String is a string property
func String(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

// NonEmptyString is a string property with minLength 1
func NonEmptyString(description string) map[string]interface{} {
	s := String(description)
	s["minLength"] = 1
	return s
}

// Pattern is a string property matching a regular expression
func Pattern(description, pattern string) map[string]interface{} {
	s := String(description)
	s["pattern"] = pattern
	return s
}

// Format is a string property with a JSON Schema format (email, uri, date, date-time)
func Format(description, format string) map[string]interface{} {
	s := String(description)
	s["format"] = format
	return s
}

// Enum is a string property restricted to values
func Enum(description string, values ...string) map[string]interface{} {
	s := String(description)
	s["enum"] = values
	return s
}

// Integer is an integer property
func Integer(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

// PositiveInteger is an integer property with minimum 1
func PositiveInteger(description string) map[string]interface{} {
	s := Integer(description)
	s["minimum"] = 1
	return s
}

// Boolean is a boolean property
func Boolean(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

// Array is an array property of items
func Array(description string, items map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "array", "description": description, "items": items}
}

// NonEmptyArray is an array property with at least one item
func NonEmptyArray(description string, items map[string]interface{}) map[string]interface{} {
	s := Array(description, items)
	s["minItems"] = 1
	return s
}

// FreeObject is an object property with arbitrary keys
func FreeObject(description string) map[string]interface{} {
	return map[string]interface{}{"type": "object", "description": description}
}
