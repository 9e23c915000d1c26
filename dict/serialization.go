package dict

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"

	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/internal/diag"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Assert serialization implementations.
var (
	_ json.Marshaler   = (*Dict[int])(nil)
	_ json.Unmarshaler = (*Dict[int])(nil)
)

// ToJSON outputs the JSON representation of the dictionary as an object.
func (d *Dict[V]) ToJSON() ([]byte, error) {
	if !d.valid() {
		diag.Fail("buckets.Valid()")
		return nil, dsgo.ErrInvalidHandle
	}

	m := make(map[string]V, d.count)
	d.Each(func(key string, val V) {
		m[key] = val
	})

	return jsonAPI.Marshal(m)
}

// FromJSON replaces the dictionary's contents with the decoded object.
// Existing entries are cleared first, destructor included.
func (d *Dict[V]) FromJSON(data []byte) error {
	if !d.valid() {
		diag.Fail("buckets.Valid()")
		return dsgo.ErrInvalidHandle
	}

	var m map[string]V
	if err := jsonAPI.Unmarshal(data, &m); err != nil {
		return err
	}

	d.Clear()
	for key, val := range m {
		if err := d.Set(key, val); err != nil {
			return err
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d *Dict[V]) MarshalJSON() ([]byte, error) {
	return d.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dict[V]) UnmarshalJSON(data []byte) error {
	return d.FromJSON(data)
}
