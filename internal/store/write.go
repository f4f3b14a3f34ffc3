package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"draftscan/internal/fileutil"
)

// EncodeJSON renders v with two-space indentation, literal UTF-8 and a
// trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal store: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON persists v at path atomically.
func WriteJSON(path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("persist store %s: %w", path, err)
	}
	return nil
}
