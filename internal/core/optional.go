// AngelaMos | 2026
// optional.go

package core

import (
	"encoding/json"
)

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// Partial-update payloads use it for nullable columns so that an explicit
// null clears the stored value while an absent key leaves it untouched.
// UnmarshalJSON only runs for keys present in the payload, which is what
// makes presence observable.
type Optional[T any] struct {
	value   *T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: &v, present: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{present: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true

	if string(data) == "null" {
		o.value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	o.value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// Present reports whether the key appeared in the payload at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// Get returns the value pointer; nil means "clear the field". Only
// meaningful when Present is true.
func (o Optional[T]) Get() *T {
	return o.value
}

// Apply merges the optional into dst following partial-update semantics.
func (o Optional[T]) Apply(dst **T) {
	if !o.present {
		return
	}
	*dst = o.value
}
