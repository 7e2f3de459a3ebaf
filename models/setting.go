package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ValueKind tags the logical type of a setting value.
type ValueKind string

const (
	ValueKindString ValueKind = "string"
	ValueKindNumber ValueKind = "number"
	ValueKindBool   ValueKind = "bool"
)

// TypedValue is a tagged string/number/bool variant. Settings travel over
// the wire and sit in the database as plain strings; TypedValue keeps the
// decoded form in process so call sites do not coerce types ad hoc.
type TypedValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// ParseTypedValue decodes a wire string into a TypedValue. "true"/"false"
// become bools, anything strconv accepts as a float becomes a number, and
// everything else stays a string.
func ParseTypedValue(s string) TypedValue {
	switch s {
	case "true":
		return TypedValue{Kind: ValueKindBool, Bool: true}
	case "false":
		return TypedValue{Kind: ValueKindBool, Bool: false}
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return TypedValue{Kind: ValueKindNumber, Num: n}
	}

	return TypedValue{Kind: ValueKindString, Str: s}
}

// WireString encodes the value back to its canonical wire form.
func (v TypedValue) WireString() string {
	switch v.Kind {
	case ValueKindBool:
		return strconv.FormatBool(v.Bool)
	case ValueKindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}

// MarshalJSON serializes the value as its wire string, keeping the API
// contract of string-typed setting values.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.WireString())
}

// UnmarshalJSON accepts a JSON string and decodes it into the variant.
func (v *TypedValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("setting value must be a string: %w", err)
	}

	*v = ParseTypedValue(s)
	return nil
}

// Value implements driver.Valuer; the database stores the wire string.
func (v TypedValue) Value() (driver.Value, error) {
	return v.WireString(), nil
}

// Scan implements sql.Scanner.
func (v *TypedValue) Scan(src any) error {
	switch s := src.(type) {
	case string:
		*v = ParseTypedValue(s)
		return nil
	case []byte:
		*v = ParseTypedValue(string(s))
		return nil
	case nil:
		*v = TypedValue{Kind: ValueKindString}
		return nil
	default:
		return errors.New("unsupported source type for setting value")
	}
}

// Setting is a key/value configuration entry grouped by category.
// Key is globally unique; Category groups entries for display and acts as a
// lightweight namespace.
type Setting struct {
	ID        uuid.UUID  `json:"id"`
	Key       string     `json:"key"`
	Value     TypedValue `json:"value"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Setting model.
func (Setting) TableName() string {
	return "settings"
}

// SettingUpsert is the canonical write payload: create the key if absent,
// otherwise replace its value and category.
type SettingUpsert struct {
	Key      string     `json:"key"`
	Value    TypedValue `json:"value"`
	Category string     `json:"category"`
}

// SettingUpdate is a partial update applied only to an existing key.
type SettingUpdate struct {
	Value    *TypedValue `json:"value"`
	Category *string     `json:"category"`
}
