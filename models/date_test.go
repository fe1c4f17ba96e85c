package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31"`), &parsed))
	assert.Equal(t, "2024-12-31", parsed.String())

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"31/12/2024"`), &parsed))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 15, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2023-07-01")))
	assert.Equal(t, "2023-07-01", d.String())

	require.NoError(t, d.Scan("2023-07-02 00:00:00"))
	assert.Equal(t, "2023-07-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewDate(2024, time.May, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), v)
}
