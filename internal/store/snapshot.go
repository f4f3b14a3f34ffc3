package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Status classifies the outcome of loading a persisted store.
type Status int

const (
	StatusAbsent Status = iota
	StatusValid
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusCorrupt:
		return "corrupt"
	default:
		return "absent"
	}
}

// Snapshot is the result of loading a persisted store. Value is only
// populated for StatusValid; Err is only set for StatusCorrupt.
type Snapshot[T any] struct {
	Value  T
	Status Status
	Err    error
}

// Usable reports whether the snapshot carries persisted data.
func (s Snapshot[T]) Usable() bool {
	return s.Status == StatusValid
}

// Load reads path and decodes it. A missing file yields StatusAbsent; read
// or decode failures yield StatusCorrupt with a zero Value.
func Load[T any](path string, decode func([]byte) (T, error)) Snapshot[T] {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot[T]{Status: StatusAbsent}
		}
		return Snapshot[T]{Status: StatusCorrupt, Err: fmt.Errorf("read store: %w", err)}
	}

	value, err := decode(data)
	if err != nil {
		var zero T
		return Snapshot[T]{Value: zero, Status: StatusCorrupt, Err: fmt.Errorf("parse store: %w", err)}
	}
	return Snapshot[T]{Value: value, Status: StatusValid}
}
