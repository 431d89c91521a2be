package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	assert.NoError(t, Identifier("012345678901"))
	assert.NoError(t, Identifier("https://www.amazon.com/dp/B08N5WRWNW"))
	assert.Error(t, Identifier(""))
	assert.Error(t, Identifier("   "))
}

func TestIdentifiersJoinsBatch(t *testing.T) {
	joined, err := Identifiers([]string{"012345678901", "B08N5WRWNW"})
	require.NoError(t, err)
	assert.Equal(t, "012345678901,B08N5WRWNW", joined)
}

func TestIdentifiersRejectsEmpty(t *testing.T) {
	_, err := Identifiers(nil)
	assert.Error(t, err)

	_, err = Identifiers([]string{"012345678901", ""})
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-01-31", true},
		{"2024-1-31", false},
		{"01-31-2024", false},
		{"2024-13-01", false},
		{"yesterday", false},
		{"", false},
	}
	for _, tt := range tests {
		err := Date("start_date", tt.value)
		if tt.ok {
			assert.NoError(t, err, tt.value)
		} else {
			assert.Error(t, err, tt.value)
		}
	}
}

func TestFrequency(t *testing.T) {
	assert.NoError(t, Frequency("hourly"))
	assert.NoError(t, Frequency("daily"))
	assert.NoError(t, Frequency("weekly"))

	assert.Error(t, Frequency("monthly"))
	assert.Error(t, Frequency("Daily"))
	assert.Error(t, Frequency(""))
}

func TestRetailer(t *testing.T) {
	assert.NoError(t, Retailer("amazon.com"))
	assert.Error(t, Retailer(""))
}
