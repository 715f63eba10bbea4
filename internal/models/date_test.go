package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSON(t *testing.T) {
	d, err := ParseDate("1994-06-24")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1994-06-24"`, string(raw))

	var back DateOnly
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "1994-06-24", back.String())
}

func TestDateOnlyRejectsBadInput(t *testing.T) {
	_, err := ParseDate("24/06/1994")
	assert.Error(t, err)

	var d DateOnly
	assert.Error(t, json.Unmarshal([]byte(`"June 24, 1994"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly

	require.NoError(t, d.Scan(time.Date(1994, 6, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1994-06-24", d.String())

	require.NoError(t, d.Scan("1997-06-27"))
	assert.Equal(t, "1997-06-27", d.String())

	require.NoError(t, d.Scan([]byte("1940-11-13")))
	assert.Equal(t, "1940-11-13", d.String())

	assert.Error(t, d.Scan(42))
}
