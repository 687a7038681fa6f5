package card

import (
	"fmt"
	"strings"

	"github.com/moneta-dev/moneta/internal/money"
)

// ValidationKind is a stable token callers map to a user-facing message.
type ValidationKind string

const (
	KindInvalidCardNumber ValidationKind = "InvalidCardNumber"
	KindInvalidBudget     ValidationKind = "InvalidBudget"
)

type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validated carries the fields fixed at validation time. The network label and
// masked number are not re-derived later.
type Validated struct {
	Network       Network
	MaskedNumber  string
	MonthlyBudget *money.Amount
}

// Validate checks a raw card number and optional monthly budget from the form.
//
// Visa and MasterCard classifications are re-checked against the strict
// pattern as a second gate. The re-check is deliberate and kept as a separate
// step; do not fold it into Detect.
func Validate(rawNumber, monthlyBudget string) (*Validated, error) {
	network := Detect(rawNumber)
	if network == NetworkUnknown {
		return nil, &ValidationError{
			Kind:    KindInvalidCardNumber,
			Message: "Please enter a valid Visa or MasterCard number.",
		}
	}

	if network == NetworkVisa && !visaPattern.MatchString(rawNumber) {
		return nil, &ValidationError{
			Kind:    KindInvalidCardNumber,
			Message: "Visa card numbers must be 13-16 digits and start with 4.",
		}
	}

	if network == NetworkMasterCard && !masterCardPattern.MatchString(rawNumber) {
		return nil, &ValidationError{
			Kind:    KindInvalidCardNumber,
			Message: "MasterCard numbers must be 16 digits and start with 51-55 or 2221-2720.",
		}
	}

	v := &Validated{
		Network:      network,
		MaskedNumber: Mask(rawNumber),
	}

	if strings.TrimSpace(monthlyBudget) != "" {
		budget, err := money.Parse(monthlyBudget)
		if err != nil || budget.IsNegative() {
			return nil, &ValidationError{
				Kind:    KindInvalidBudget,
				Message: "Monthly budget must be a positive number.",
			}
		}

		v.MonthlyBudget = &budget
	}

	return v, nil
}
