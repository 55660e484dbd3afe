package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"utc without fraction", "2026-03-01T19:30:00Z", "2026-03-01T19:30:00.000Z"},
		{"utc with millis", "2026-03-01T19:30:00.250Z", "2026-03-01T19:30:00.250Z"},
		{"offset is converted", "2026-03-01T22:30:00+03:00", "2026-03-01T19:30:00.000Z"},
		{"crosses midnight", "2026-03-01T23:30:00-02:00", "2026-03-02T01:30:00.000Z"},
		{"local minutes", "2026-03-01T19:00", "2026-03-01T19:00:00.000Z"},
		{"local seconds", "2026-03-01T19:00:30", "2026-03-01T19:00:30.000Z"},
		{"local millis", "2026-03-01T19:00:30.125", "2026-03-01T19:00:30.125Z"},
		{"date only", "2026-03-01", "2026-03-01T00:00:00.000Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize("tomorrow at seven")
	assert.Error(t, err)

	_, err = Normalize("2026-03-01T25:00")
	assert.Error(t, err)

	_, err = Normalize("03/01/2026")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T00:00:00.000Z", start)
	assert.Equal(t, "2026-03-02T00:00:00.000Z", end)

	assert.True(t, "2026-03-01T23:59:59.999Z" < end)
	assert.False(t, "2026-03-02T00:00:00.000Z" < end)
}

func TestDayBoundsInvalid(t *testing.T) {
	_, _, err := DayBounds("03/01/2026")
	assert.Error(t, err)
}
