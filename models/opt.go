// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Opt is a JSON field wrapper that distinguishes three cases a plain
// pointer cannot: the key was absent, the key was explicitly null, or the
// key carried a value. UnmarshalJSON only runs when the key is present, so
// the zero Opt means "absent".
type Opt[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Apply merges the wrapped change onto a nullable field: absent leaves the
// field untouched, null clears it, a value replaces it.
func (o Opt[T]) Apply(dst **T) {
	if !o.Present {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}
