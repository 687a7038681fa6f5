package ledger

import "fmt"

// Kind is the stable failure token surfaced to the caller. These are
// user-input rejections, not system faults; none are retried.
type Kind string

const (
	KindInvalidAmount     Kind = "InvalidAmount"
	KindNoCardSelected    Kind = "NoCardSelected"
	KindCardNotFound      Kind = "CardNotFound"
	KindInsufficientFunds Kind = "InsufficientFunds"
	KindExceedsSaved      Kind = "ExceedsSaved"
	KindExceedsRemaining  Kind = "ExceedsRemaining"
)

var kindMessages = map[Kind]string{
	KindInvalidAmount:     "Please enter a valid amount.",
	KindNoCardSelected:    "Please select a card.",
	KindCardNotFound:      "Card not found.",
	KindInsufficientFunds: "Not enough funds on selected card.",
	KindExceedsSaved:      "Cannot withdraw more than saved.",
	KindExceedsRemaining:  "Cannot repay more than owed.",
}

// Failure is a rejected transfer. The attempt has already been recorded as a
// failed history entry by the time a Failure is returned.
type Failure struct {
	Kind Kind
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message())
}

func (f *Failure) Message() string {
	return kindMessages[f.Kind]
}
