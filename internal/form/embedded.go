package form

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Embedded carries a value that is serialized as a JSON-encoded string
// instead of a nested structure.
type Embedded[T any] struct {
	Value T
}

// Embed wraps v for string-typed serialization.
func Embed[T any](v T) *Embedded[T] {
	return &Embedded[T]{Value: v}
}

// Text returns the compact JSON encoding of the wrapped value.
func (e Embedded[T]) Text() (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(e.Value)
	if err != nil {
		return "", fmt.Errorf("encoding embedded value: %w", err)
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// MarshalJSON encodes the wrapped value as a JSON string.
func (e Embedded[T]) MarshalJSON() ([]byte, error) {
	text, err := e.Text()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err = enc.Encode(text)
	if err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a JSON string holding the encoded value.
func (e *Embedded[T]) UnmarshalJSON(data []byte) error {
	var text string

	err := json.Unmarshal(data, &text)
	if err != nil {
		return fmt.Errorf("embedded value must be a JSON string: %w", err)
	}

	return e.decode(text)
}

// MarshalYAML encodes the wrapped value as a YAML string scalar.
func (e Embedded[T]) MarshalYAML() (any, error) {
	return e.Text()
}

// UnmarshalYAML decodes a YAML string scalar holding the encoded value.
func (e *Embedded[T]) UnmarshalYAML(node *yaml.Node) error {
	var text string

	err := node.Decode(&text)
	if err != nil {
		return fmt.Errorf("embedded value must be a string: %w", err)
	}

	return e.decode(text)
}

func (e *Embedded[T]) decode(text string) error {
	var v T

	err := json.Unmarshal([]byte(text), &v)
	if err != nil {
		return fmt.Errorf("decoding embedded value: %w", err)
	}

	e.Value = v

	return nil
}
