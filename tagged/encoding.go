package tagged

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/amp-tagged/numeric"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler. The stored value is marshaled as
// is, so New(42) becomes 42 rather than an object.
func (w Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.value)
}

// UnmarshalJSON implements json.Unmarshaler. On error the stored value is
// left unchanged.
func (w *Value[T]) UnmarshalJSON(data []byte) error {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	w.value = value

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w Value[T]) MarshalYAML() (any, error) {
	return w.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. On error the stored value is
// left unchanged.
func (w *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}

	w.value = value

	return nil
}

// MarshalText implements encoding.TextMarshaler using the stored value's
// string form.
func (w Value[T]) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprint(w.value)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for integer and
// floating-point T. Other types fail with numeric.ErrNotReal.
func (w *Value[T]) UnmarshalText(text []byte) error {
	value, err := numeric.ParseAny[T](string(text))
	if err != nil {
		return err
	}

	w.value = value

	return nil
}
