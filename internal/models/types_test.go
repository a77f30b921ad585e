package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOTimeRoundTrip(t *testing.T) {
	now := NewISOTime(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))

	value, err := now.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T10:30:00Z", value)

	var scanned ISOTime
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, now, scanned)
}

func TestISOTimeScanMalformed(t *testing.T) {
	var ts ISOTime
	err := ts.Scan("not-a-timestamp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ISO-8601 timestamp")
}

func TestISOTimeScanNil(t *testing.T) {
	var ts ISOTime
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestISOTimeJSON(t *testing.T) {
	ts := NewISOTime(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))

	data, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01T10:30:00Z"`, string(data))

	var decoded ISOTime
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, ts, decoded)
}

func TestIntBool(t *testing.T) {
	value, err := IntBool(true).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)

	value, err = IntBool(false).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	var b IntBool
	require.NoError(t, b.Scan(int64(1)))
	assert.True(t, bool(b))

	require.NoError(t, b.Scan(int64(0)))
	assert.False(t, bool(b))
}
