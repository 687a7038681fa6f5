package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moneta-dev/moneta/internal/card"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   card.Network
	}{
		{name: "Visa13", number: "4123456789012", want: card.NetworkVisa},
		{name: "Visa16", number: "4123456789012345", want: card.NetworkVisa},
		{name: "VisaTooShort", number: "412345678901", want: card.NetworkUnknown},
		{name: "VisaTooLong", number: "41234567890123456", want: card.NetworkUnknown},
		{name: "MasterCardLegacyLow", number: "5112345678901234", want: card.NetworkMasterCard},
		{name: "MasterCardLegacyHigh", number: "5512345678901234", want: card.NetworkMasterCard},
		{name: "MasterCardBin229", number: "222900000000000", want: card.NetworkMasterCard},
		{name: "MasterCardBin25", number: "2520000000000001", want: card.NetworkMasterCard},
		{name: "MasterCardBin270", number: "2701000000000003", want: card.NetworkMasterCard},
		{name: "MasterCardBin2720", number: "2720990000000007", want: card.NetworkMasterCard},
		{name: "MasterCardBin2121Miss", number: "2121000000000009", want: card.NetworkUnknown},
		{name: "Amex34", number: "341234567890123", want: card.NetworkAmex},
		{name: "Amex37", number: "371234567890123", want: card.NetworkAmex},
		{name: "AmexWrongLength", number: "3412345678901234", want: card.NetworkUnknown},
		{name: "Discover6011", number: "6011123456789012", want: card.NetworkDiscover},
		{name: "Discover65", number: "6512341234567890", want: card.NetworkDiscover},
		{name: "JCB3528", number: "3528123456789012", want: card.NetworkJCB},
		{name: "JCB358", number: "3581123456789012", want: card.NetworkJCB},
		{name: "JCB359Miss", number: "3591123456789012", want: card.NetworkUnknown},
		{name: "Meza5018Short", number: "501812345678", want: card.NetworkMeza},
		{name: "Meza6763Long", number: "6763123456789012345", want: card.NetworkMeza},
		// 6759 prefixes keep Meza behind MasterCard-range misses; first match wins.
		{name: "Meza6759", number: "675912345678", want: card.NetworkMeza},
		{name: "Empty", number: "", want: card.NetworkUnknown},
		{name: "Letters", number: "4abc456789012", want: card.NetworkUnknown},
		{name: "Spaces", number: "4123 4567 8901 2345", want: card.NetworkUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.Detect(tt.number))
		})
	}
}

// Meza BINs 5018/5020/5038 sit inside the 5xxx space but outside MasterCard's
// 51-55 range at 16 digits, so evaluation order decides. MasterCard is checked
// first and must not claim them.
func TestDetect_OrderOnMezaBins(t *testing.T) {
	assert.Equal(t, card.NetworkMeza, card.Detect("5018123456789012"))
	assert.Equal(t, card.NetworkMeza, card.Detect("5038123456789012"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "**** **** **** 2345", card.Mask("4123456789012345"))
	assert.Equal(t, "**** **** **** 123", card.Mask("123"))
}
