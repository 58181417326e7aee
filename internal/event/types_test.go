// AngelaMos | 2026
// types_test.go

package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.October, 27)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-27"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"27/10/2026"`), &d))
}

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("16:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 16, Minute: 30}, parsed)

	parsed, err = ParseTimeOfDay("09:05:59")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 5, Second: 59}, parsed)
}

func TestParseTimeOfDayRanges(t *testing.T) {
	cases := []string{"24:00", "-1:30", "12:60", "12:30:61", "noon", "12"}
	for _, c := range cases {
		_, err := ParseTimeOfDay(c)
		assert.Error(t, err, "expected %q to be rejected", c)
	}

	// Boundaries of the valid range.
	_, err := ParseTimeOfDay("00:00")
	assert.NoError(t, err)
	_, err = ParseTimeOfDay("23:59")
	assert.NoError(t, err)
}

func TestDurationFormat(t *testing.T) {
	cases := map[time.Duration]string{
		90 * time.Minute:               "PT1H30M",
		time.Second:                    "PT1S",
		0:                              "PT0S",
		25*time.Hour + 30*time.Second:  "P1DT1H30S",
		48 * time.Hour:                 "P2D",
	}

	for d, want := range cases {
		assert.Equal(t, want, Duration{Duration: d}.String())
	}
}

func TestParseDuration(t *testing.T) {
	parsed, err := ParseDuration("PT1H30M")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, parsed.Duration)

	parsed, err = ParseDuration("P1DT2H")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour, parsed.Duration)

	parsed, err = ParseDuration("PT1S")
	require.NoError(t, err)
	assert.Equal(t, time.Second, parsed.Duration)
}

func TestParseDurationRejectsInvalid(t *testing.T) {
	cases := []string{"1H30M", "P1Y", "PT", "PTH", "PT90"}
	for _, c := range cases {
		_, err := ParseDuration(c)
		assert.Error(t, err, "expected %q to be rejected", c)
	}
}

func TestDurationJSONRoundTrip(t *testing.T) {
	d := Duration{Duration: 90 * time.Minute}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"PT1H30M"`, string(data))

	var parsed Duration
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDurationScan(t *testing.T) {
	var d Duration
	require.NoError(t, d.Scan(int64(5400)))
	assert.Equal(t, 90*time.Minute, d.Duration)

	value, err := Duration{Duration: time.Hour}.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(3600), value)
}
