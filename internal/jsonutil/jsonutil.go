// Package jsonutil holds the small decoding helpers shared by the lookup
// client and the picker's selection handlers.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeArray reads a JSON array from r. An empty array is not an error;
// the lookup service answers [] for unknown codes.
func DecodeArray[T any](r io.Reader, context string) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", context, err)
	}
	entries := []T{}
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// Pluck maps each entry to a single field, preserving order.
func Pluck[T any](entries []T, field func(T) string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = field(e)
	}
	return out
}

// ToString converts a raw selection value to its string form.
// nil becomes the empty string; whole floats drop the fraction.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
