package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jonathan/interview-assistant/internal/types"
)

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// ResponseMap handles the JSONB responses column, keyed by stringified
// question number or question text.
type ResponseMap map[string]string

// Scan implements the Scanner interface for ResponseMap
func (m *ResponseMap) Scan(src interface{}) error {
	if src == nil {
		*m = ResponseMap{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, m)
}

// Value implements the Valuer interface for ResponseMap
func (m ResponseMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// RatingList handles the JSONB performance_ratings column
type RatingList []types.PerformanceRating

// Scan implements the Scanner interface for RatingList
func (l *RatingList) Scan(src interface{}) error {
	if src == nil {
		*l = RatingList{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for RatingList
func (l RatingList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}
