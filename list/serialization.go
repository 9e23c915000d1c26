package list

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Assert serialization implementations.
var (
	_ json.Marshaler   = (*List[int])(nil)
	_ json.Unmarshaler = (*List[int])(nil)
)

// ToJSON outputs the JSON representation of the list as an array, front
// to back.
func (l *List[T]) ToJSON() ([]byte, error) {
	return jsonAPI.Marshal(l.Values())
}

// FromJSON replaces the list's contents with the decoded elements.
// Existing elements are cleared first, destructor included.
func (l *List[T]) FromJSON(data []byte) error {
	var elems []T
	if err := jsonAPI.Unmarshal(data, &elems); err != nil {
		return err
	}

	l.Clear()
	for _, e := range elems {
		l.Push(e)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return l.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	return l.FromJSON(data)
}
