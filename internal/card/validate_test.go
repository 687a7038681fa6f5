package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/money"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		budget   string
		wantNet  card.Network
		wantKind card.ValidationKind
	}{
		{
			name:    "VisaNoBudget",
			number:  "4123456789012345",
			wantNet: card.NetworkVisa,
		},
		{
			name:    "MezaWithBudget",
			number:  "5018123456789012",
			budget:  "1000",
			wantNet: card.NetworkMeza,
		},
		{
			name:    "BudgetZeroAllowed",
			number:  "4123456789012345",
			budget:  "0",
			wantNet: card.NetworkVisa,
		},
		{
			name:     "UnknownNumber",
			number:   "1234567890123456",
			wantKind: card.KindInvalidCardNumber,
		},
		{
			name:     "EmptyNumber",
			number:   "",
			wantKind: card.KindInvalidCardNumber,
		},
		{
			name:     "NegativeBudget",
			number:   "4123456789012345",
			budget:   "-50",
			wantKind: card.KindInvalidBudget,
		},
		{
			name:     "NonNumericBudget",
			number:   "4123456789012345",
			budget:   "lots",
			wantKind: card.KindInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := card.Validate(tt.number, tt.budget)

			if tt.wantKind != "" {
				var verr *card.ValidationError

				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantKind, verr.Kind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNet, got.Network)
			assert.NotContains(t, got.MaskedNumber[:len(got.MaskedNumber)-4], tt.number[4:8],
				"masked number must not retain middle digits")

			if tt.budget == "" {
				assert.Nil(t, got.MonthlyBudget)
			} else {
				require.NotNil(t, got.MonthlyBudget)

				want, _ := money.Parse(tt.budget)
				assert.True(t, got.MonthlyBudget.Equal(want))
			}
		})
	}
}

func TestValidate_MasksLastFour(t *testing.T) {
	got, err := card.Validate("4123456789012345", "")
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 2345", got.MaskedNumber)
}
