package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JSONMap maps a free-form JSON payload onto a jsonb column.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal jsonb payload")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil

		return nil
	}

	raw, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(raw, m), "failed to unmarshal jsonb payload")
}

// UUIDSlice maps a UUID list onto a jsonb column.
type UUIDSlice []uuid.UUID

// Value implements driver.Valuer.
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal jsonb uuid list")
	}

	return string(raw), nil
}

// Scan implements sql.Scanner.
func (s *UUIDSlice) Scan(value any) error {
	if value == nil {
		*s = nil

		return nil
	}

	raw, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(raw, s), "failed to unmarshal jsonb uuid list")
}

func jsonbBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported jsonb source type %T", value)
	}
}
