// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
)

// ErrNotAnObject is returned when an employee payload is valid JSON but not
// an object (null, an array or a scalar).
var ErrNotAnObject = errors.New("employee payload must be a JSON object")

// JSON member names that map to dedicated [Employee] fields. Any other member
// of an employee object is kept in Attributes.
const (
	fieldID         = "id"
	fieldName       = "name"
	fieldDepartment = "department"
)

// Employee is a single record of the employee registry.
//
// On the wire an employee is a flat JSON object. The id, name and department
// members are decoded into their own fields; every other member is preserved
// verbatim in Attributes and written back at the top level on encoding.
type Employee struct {
	// ID is the registry-wide unique identifier. An empty ID on creation
	// means the store assigns one.
	ID string

	// Name is the employee's display name. An empty name is treated as
	// absent and left out of the JSON form.
	Name string

	// Department is the only field the list operation can filter by.
	// Matching is exact and case-sensitive. Like Name, an empty department
	// is left out of the JSON form.
	Department string

	// Attributes holds all other members of the employee object. Numbers
	// are kept as [json.Number] so large integers survive a round trip.
	Attributes map[string]any
}

// Clone returns a copy of e whose Attributes, including nested objects and
// arrays, share no memory with the original.
func (e Employee) Clone() Employee {
	e.Attributes = cloneAttributes(e.Attributes)
	return e
}

// Apply merges the fields present in u into e. Fields absent from u are left
// unchanged; attribute members present in u overwrite the ones in e.
func (e *Employee) Apply(u EmployeeUpdate) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if len(u.Attributes) == 0 {
		return
	}
	if e.Attributes == nil {
		e.Attributes = make(map[string]any, len(u.Attributes))
	}
	for k, v := range u.Attributes {
		e.Attributes[k] = cloneValue(v)
	}
}

func (e Employee) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Attributes)+3)
	maps.Copy(out, e.Attributes)

	if e.ID != "" {
		out[fieldID] = e.ID
	}
	if e.Name != "" {
		out[fieldName] = e.Name
	}
	if e.Department != "" {
		out[fieldDepartment] = e.Department
	}

	return json.Marshal(out)
}

func (e *Employee) UnmarshalJSON(b []byte) error {
	raw, err := decodeObject(b)
	if err != nil {
		return err
	}

	var decoded Employee
	if decoded.ID, err = takeString(raw, fieldID); err != nil {
		return err
	}
	if decoded.Name, err = takeString(raw, fieldName); err != nil {
		return err
	}
	if decoded.Department, err = takeString(raw, fieldDepartment); err != nil {
		return err
	}
	if len(raw) > 0 {
		decoded.Attributes = raw
	}

	*e = decoded
	return nil
}

// EmployeeUpdate is a partial employee used by the update operation.
// Only non-nil fields are applied (partial update support).
type EmployeeUpdate struct {
	// Name is the new display name. If nil, the field is not updated.
	Name *string

	// Department is the new department. If nil, the field is not updated.
	Department *string

	// Attributes holds the other members to overwrite.
	Attributes map[string]any
}

// UnmarshalJSON decodes a partial employee object. An id member is dropped:
// identifiers cannot be changed after creation.
func (u *EmployeeUpdate) UnmarshalJSON(b []byte) error {
	raw, err := decodeObject(b)
	if err != nil {
		return err
	}
	delete(raw, fieldID)

	var decoded EmployeeUpdate
	if decoded.Name, err = takeOptionalString(raw, fieldName); err != nil {
		return err
	}
	if decoded.Department, err = takeOptionalString(raw, fieldDepartment); err != nil {
		return err
	}
	if len(raw) > 0 {
		decoded.Attributes = raw
	}

	*u = decoded
	return nil
}

func (u EmployeeUpdate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Attributes)+2)
	maps.Copy(out, u.Attributes)

	if u.Name != nil {
		out[fieldName] = *u.Name
	}
	if u.Department != nil {
		out[fieldDepartment] = *u.Department
	}

	return json.Marshal(out)
}

// EmployeeFilter narrows the list operation. A nil Department means no
// filtering.
type EmployeeFilter struct {
	Department *string
}

// Matches reports whether e passes the filter.
func (f EmployeeFilter) Matches(e Employee) bool {
	return f.Department == nil || e.Department == *f.Department
}

// decodeObject decodes b into a generic JSON object. Numbers are decoded as
// [json.Number].
func decodeObject(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotAnObject
	}

	return raw, nil
}

func cloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}

	cloned := make(map[string]any, len(attrs))
	for k, v := range attrs {
		cloned[k] = cloneValue(v)
	}
	return cloned
}

// cloneValue copies the containers produced by JSON decoding. Other values
// are immutable and returned as is.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneAttributes(value)
	case []any:
		cloned := make([]any, len(value))
		for i, item := range value {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return v
	}
}

func takeString(raw map[string]any, key string) (string, error) {
	v, err := takeOptionalString(raw, key)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

// takeOptionalString removes key from raw and returns its string value.
// A missing key or a JSON null yields nil.
func takeOptionalString(raw map[string]any, key string) (*string, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	delete(raw, key)

	switch value := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &value, nil
	default:
		return nil, &FieldTypeError{Field: key, Value: v}
	}
}
