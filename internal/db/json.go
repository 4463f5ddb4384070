package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores any JSON-serialisable value in a MySQL JSON column.
// A NULL column scans into the zero value of T.
type JSON[T any] struct {
	V T
}

func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{V: v}
}

func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSON[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.V = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("json column: unsupported type %T", src)
	}
	if len(raw) == 0 {
		var zero T
		j.V = zero
		return nil
	}
	return json.Unmarshal(raw, &j.V)
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSON[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.V)
}
