// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// FieldTypeError is returned when decoding an employee object whose id, name
// or department member is neither a string nor null.
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("employee field %q must be a string, got %s", e.Field, jsonKind(e.Value))
}

// jsonKind names the JSON type of a value produced by decoding into any.
func jsonKind(v any) string {
	switch v.(type) {
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
