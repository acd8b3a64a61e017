package model

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells apart a JSON key that is missing, one set to null and one
// set to a string. Set is false only when the key was absent.
type OptionalString struct {
	Set   bool
	Value *string
}

// Some returns an optional holding s.
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns an optional explicitly cleared to null.
func Null() OptionalString {
	return OptionalString{Set: true}
}

// UnmarshalJSON is only invoked when the key is present.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// MarshalJSON writes the value or null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
