package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ISOTime is a UTC instant persisted as an ISO-8601 (RFC 3339) string.
// Malformed column content fails the read with a decode error instead of
// silently yielding a zero time.
type ISOTime time.Time

// NewISOTime truncates to seconds so the value round-trips through the
// string column without losing precision.
func NewISOTime(t time.Time) ISOTime {
	return ISOTime(t.UTC().Truncate(time.Second))
}

func (t ISOTime) Time() time.Time {
	return time.Time(t)
}

func (t ISOTime) IsZero() bool {
	return time.Time(t).IsZero()
}

// Value implements driver.Valuer.
func (t ISOTime) Value() (driver.Value, error) {
	return time.Time(t).UTC().Format(time.RFC3339), nil
}

// Scan implements sql.Scanner.
func (t *ISOTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ISOTime{}
		return nil
	case time.Time:
		*t = ISOTime(v.UTC())
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ISOTime", src)
	}
}

func (t *ISOTime) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid ISO-8601 timestamp %q: %w", s, err)
	}
	*t = ISOTime(parsed.UTC())
	return nil
}

// GormDataType stores the value as a string column on every dialect.
func (ISOTime) GormDataType() string {
	return "string"
}

// MarshalJSON renders the RFC 3339 form clients expect.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON accepts an RFC 3339 string.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid ISO-8601 timestamp literal %s", data)
	}
	return t.parse(string(data[1 : len(data)-1]))
}

// IntBool is a boolean persisted as INTEGER 0/1, matching the wire schema
// across sqlite, mysql and postgres.
type IntBool bool

// Value implements driver.Valuer.
func (b IntBool) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner.
func (b *IntBool) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case int64:
		*b = v != 0
	case bool:
		*b = IntBool(v)
	case []byte:
		*b = len(v) > 0 && v[0] != '0'
	default:
		return fmt.Errorf("cannot scan %T into IntBool", src)
	}
	return nil
}

// GormDataType keeps the column an integer on every dialect.
func (IntBool) GormDataType() string {
	return "int"
}
