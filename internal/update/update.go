// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package update builds partial-update assignment lists from sparse
// payloads. It is a pure transformation: the store layer is responsible
// for rendering assignments into a parameterized statement and for binding
// the target row's identifier.
package update

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNoFields is returned when every field in the payload is absent.
// Callers surface it as a client error — a no-op write is never issued.
var ErrNoFields = errors.New("no fields supplied")

// Field is one updatable column with an optional value.
type Field struct {
	Column string
	Value  any
	Set    bool
}

// String describes an optional string field. A nil pointer means the caller
// omitted the field entirely.
func String(column string, v *string) Field {
	f := Field{Column: column}
	if v != nil {
		f.Value = *v
		f.Set = true
	}
	return f
}

// Optional is a JSON string field that distinguishes absent from null.
// An explicit null counts as supplied and maps to the empty string.
type Optional struct {
	Present bool
	Value   string
}

// UnmarshalJSON records that the field appeared in the payload.
func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Field converts the optional into an updatable field for Build.
func (o Optional) Field(column string) Field {
	if !o.Present {
		return Field{Column: column}
	}
	return Field{Column: column, Value: o.Value, Set: true}
}

// Assignment is a column/value pair to apply.
type Assignment struct {
	Column string
	Value  any
}

// Build filters the supplied fields down to the ones that are set,
// preserving their relative order. Returns ErrNoFields when nothing is set.
func Build(fields ...Field) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(fields))
	for _, f := range fields {
		if f.Set {
			assignments = append(assignments, Assignment{Column: f.Column, Value: f.Value})
		}
	}
	if len(assignments) == 0 {
		return nil, ErrNoFields
	}
	return assignments, nil
}
