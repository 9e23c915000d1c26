package dsgo

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"

	"github.com/hupe1980/dsgo/internal/diag"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Assert serialization implementations.
var (
	_ json.Marshaler   = (*Vector[int])(nil)
	_ json.Unmarshaler = (*Vector[int])(nil)
)

// ToJSON outputs the JSON representation of the live elements as a JSON
// array.
func (v *Vector[T]) ToJSON() ([]byte, error) {
	if !v.valid() {
		diag.Fail("sig == signature")
		return nil, ErrInvalidHandle
	}
	return jsonAPI.Marshal(v.data[:v.count])
}

// FromJSON replaces the vector's contents with the decoded elements.
// Existing elements are destroyed first, from the end backwards. The
// capacity is kept and grown as needed, never shrunk.
func (v *Vector[T]) FromJSON(data []byte) error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}

	var elems []T
	if err := jsonAPI.Unmarshal(data, &elems); err != nil {
		return err
	}

	if v.gc != nil {
		for i := v.count - 1; i >= 0; i-- {
			v.gc(&v.data[i])
		}
	}
	v.count = 0

	for _, e := range elems {
		if err := v.Push(e); err != nil {
			return err
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return v.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	return v.FromJSON(data)
}
