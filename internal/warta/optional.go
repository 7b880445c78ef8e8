package warta

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent patch field from an explicit null
// and from a concrete value: absent means "leave unchanged", null means
// "clear the field".
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns an Optional carrying a concrete value.
func Set[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// UnmarshalJSON is only invoked for fields present in the input, so
// Present is true whenever it runs.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value as a nullable pointer, nil when the field was
// explicitly set to null. Callers check Present first.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}
