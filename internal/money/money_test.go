package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    money.Amount
		wantErr bool
	}{
		{name: "Integer", input: "100", want: money.FromInt(100)},
		{name: "Fraction", input: "12.50", want: money.FromFloat(12.5)},
		{name: "Whitespace", input: " 7 ", want: money.FromInt(7)},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestAmount_JSON(t *testing.T) {
	data, err := json.Marshal(money.FromFloat(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(data))

	var a money.Amount

	require.NoError(t, json.Unmarshal([]byte(`42`), &a))
	assert.True(t, a.Equal(money.FromInt(42)))

	require.NoError(t, json.Unmarshal([]byte(`"9.99"`), &a))
	assert.True(t, a.Equal(money.FromFloat(9.99)))
}

func TestAmount_JSON_LenientFallback(t *testing.T) {
	for _, raw := range []string{`"not-a-number"`, `null`, `{}`, `""`} {
		var a money.Amount

		assert.NoError(t, json.Unmarshal([]byte(raw), &a), "input %s", raw)
		assert.True(t, a.IsZero(), "input %s should decode as zero", raw)
	}
}
