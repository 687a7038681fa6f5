package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/date"
)

func TestParse(t *testing.T) {
	d, err := date.Parse("2025-07-04")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", d.String())

	_, err = date.Parse("04/07/2025")
	assert.Error(t, err)
}

func TestDate_SameMonth(t *testing.T) {
	d := date.New(2025, time.July, 4)

	assert.True(t, d.SameMonth(time.Date(2025, time.July, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameMonth(time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameMonth(time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)))
}

func TestDate_DaysSince(t *testing.T) {
	a := date.New(2025, time.January, 1)
	b := date.New(2025, time.January, 31)

	assert.InDelta(t, 30, b.DaysSince(a), 0.001)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "date only", in: `"2025-07-04"`, want: "2025-07-04"},
		{name: "legacy timestamp", in: `"2025-07-04T12:30:00Z"`, want: "2025-07-04"},
		{name: "empty string", in: `""`, want: ""},
		{name: "null", in: `null`, want: ""},
		{name: "garbage", in: `"not-a-date"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d date.Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(date.New(2025, time.July, 4))
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-04"`, string(out))

	out, err = json.Marshal(date.Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}
