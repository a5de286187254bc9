package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 20)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-20"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"2026-13-01", "20260120", "not-a-date", "2026-01-20T12:00:00Z"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestDateAfter(t *testing.T) {
	earlier := NewDate(2026, time.January, 19)
	later := NewDate(2026, time.January, 20)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, later.After(later))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.January, 20, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-01-20", d.String())

	require.NoError(t, d.Scan("2026-02-01"))
	assert.Equal(t, "2026-02-01", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	d := NewDate(2026, time.January, 20)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, v)
}
