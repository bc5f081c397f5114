package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"10", "10"},
		{"103", "10/3"},
		{"1003", "10/03"},
		{"10032", "10/03/2"},
		{"10032024", "10/03/2024"},
		{"100320249999", "10/03/2024"}, // extra digits dropped
		{"10/03/2024", "10/03/2024"},   // already masked
		{"1a0b0c3d2024", "10/03/2024"}, // non-digits stripped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDateInput(tt.raw), "raw=%q", tt.raw)
		assert.LessOrEqual(t, len(FormatDateInput(tt.raw)), 10)
	}
}

func TestToISODate(t *testing.T) {
	got, err := ToISODate("10/03/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", got)

	// string rewrite only: impossible day-of-month still converts
	got, err = ToISODate("31/02/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-31", got)

	for _, bad := range []string{"", "10/03/24", "10-03-2024", "1/03/20245", "aa/bb/cccc"} {
		_, err := ToISODate(bad)
		assert.Error(t, err, "input=%q", bad)
	}
}

func TestFromISODate(t *testing.T) {
	got, err := FromISODate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, "10/03/2024", got)

	_, err = FromISODate("10/03/2024")
	assert.Error(t, err)
}

// Masking then converting round-trips to the same calendar date whenever
// the raw input carries a full date's worth of digits.
func TestMaskRoundTrip(t *testing.T) {
	for _, raw := range []string{"10032024", "10/03/2024", "1.0.0.3.2024", "010119991234"} {
		masked := FormatDateInput(raw)
		require.Len(t, masked, 10, "raw=%q", raw)

		iso, err := ToISODate(masked)
		require.NoError(t, err, "raw=%q", raw)

		back, err := FromISODate(iso)
		require.NoError(t, err)
		assert.Equal(t, masked, back, "raw=%q", raw)
	}
}
