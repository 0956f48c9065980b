package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a []string stored as a jsonb column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// ErrorList is a list of transaction error entries stored as jsonb.
type ErrorList []TransactionError

// Value implements the driver.Valuer interface
func (l ErrorList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]TransactionError{})
	}
	return json.Marshal([]TransactionError(l))
}

// Scan implements the sql.Scanner interface
func (l *ErrorList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Value implements the driver.Valuer interface
func (s AccessibilitySettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *AccessibilitySettings) Scan(value interface{}) error {
	if s == nil {
		return errors.New("nil pointer")
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}
