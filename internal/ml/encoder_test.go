package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodebookFirstSeenOrder(t *testing.T) {
	cb := NewCodebook([]string{"Robbery", "Theft", "Robbery", "Murder", "Theft"})

	assert.Equal(t, 3, cb.Len())
	assert.Equal(t, []string{"Robbery", "Theft", "Murder"}, cb.Values())

	code, ok := cb.Code("Murder")
	require.True(t, ok)
	assert.Equal(t, 2, code)

	_, ok = cb.Code("Arson")
	assert.False(t, ok)
}

func TestCodebookValueRoundTrip(t *testing.T) {
	cb := NewCodebook([]string{"HARARE", "BULAWAYO", "GWERU"})

	for code, want := range cb.Values() {
		got, err := cb.Value(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCodebookValueOutOfRange(t *testing.T) {
	cb := NewCodebook([]string{"HARARE"})

	_, err := cb.Value(-1)
	assert.Error(t, err)
	_, err = cb.Value(1)
	assert.Error(t, err)
}

func TestLocationCodeSubstringMatch(t *testing.T) {
	cb := NewCodebook([]string{"Harare Central", "Bulawayo CBD", "Gweru"})

	assert.Equal(t, 0, cb.LocationCode("HARARE"))
	assert.Equal(t, 1, cb.LocationCode("bulawayo"))
	assert.Equal(t, 2, cb.LocationCode("GWERU"))

	// unmatched keys fall back to the first code
	assert.Equal(t, 0, cb.LocationCode("NOWHERE_TOWN"))
}
