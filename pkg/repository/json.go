package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores a value in a json/jsonb column.
type JSON[T any] struct {
	V T
}

func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSON[T]) Scan(src any) error {
	var zero T
	j.V = zero

	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, &j.V)
	case string:
		return json.Unmarshal([]byte(v), &j.V)
	default:
		return fmt.Errorf("scan json: unsupported type %T", src)
	}
}
