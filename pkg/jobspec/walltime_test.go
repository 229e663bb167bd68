package jobspec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"7:00:00", 7 * time.Hour},
		{"30:00:00", 30 * time.Hour},
		{"0:30:00", 30 * time.Minute},
		{"90", 90 * time.Minute},
		{"30:15", 30*time.Minute + 15*time.Second},
		{"2-12:00:00", 60 * time.Hour},
		{"1-0", 24 * time.Hour},
		{"1-6:30", 30*time.Hour + 30*time.Minute},
		{"0-12", 12 * time.Hour},
		{"0-12:30", 12*time.Hour + 30*time.Minute},
		{"0-12:30:15", 12*time.Hour + 30*time.Minute + 15*time.Second},
	}

	for _, c := range cases {
		got, err := ParseWallTime(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseWallTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "-5", "1-", "1:xx"} {
		_, err := ParseWallTime(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatWallTime(t *testing.T) {
	assert.Equal(t, "7:00:00", FormatWallTime(7*time.Hour))
	assert.Equal(t, "0:30:00", FormatWallTime(30*time.Minute))
	assert.Equal(t, "1-06:00:00", FormatWallTime(30*time.Hour))
	assert.Equal(t, "0:00:45", FormatWallTime(45*time.Second))
}

func TestWallTimeRoundTrip(t *testing.T) {
	for _, in := range []string{"7:00:00", "0:30:00", "2-12:00:00"} {
		parsed, err := ParseWallTime(in)
		require.NoError(t, err)
		assert.Equal(t, in, FormatWallTime(parsed))
	}
}
