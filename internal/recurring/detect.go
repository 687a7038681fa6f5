// Package recurring infers repeating transactions from the ledger. Detection
// is re-derived from scratch on every call; nothing is persisted.
package recurring

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/moneta-dev/moneta/internal/money"
	"github.com/moneta-dev/moneta/internal/transaction"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyDaily   Frequency = "daily"
)

// Pattern describes one detected cadence. Display fields come from the
// group's most recent transaction.
type Pattern struct {
	Name      string           `json:"name"`
	Amount    money.Amount     `json:"amount"`
	Type      transaction.Type `json:"type"`
	CardID    int64            `json:"cardId"`
	Frequency Frequency        `json:"frequency"`
	LastDate  string           `json:"lastDate"`
	Note      string           `json:"note"`
}

// Detect groups transactions by exact (amount, card, type) and reports each
// group whose consecutive day-gaps all land in the same cadence bucket:
// monthly 27-31, weekly 6-8, daily 0.9-1.1 days. Groups under three members,
// mixed cadences and out-of-range gaps are dropped entirely.
func Detect(txs []transaction.Transaction) []Pattern {
	if len(txs) == 0 {
		return nil
	}

	groups := make(map[string][]transaction.Transaction)

	var order []string

	for _, tx := range txs {
		key := tx.Amount.String() + "|" + strconv.FormatInt(tx.CardID, 10) + "|" + string(tx.Type)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], tx)
	}

	var patterns []Pattern

	for _, key := range order {
		group := groups[key]
		if len(group) < 3 {
			// Three observations is the minimum to infer a cadence.
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		freq, ok := classifyGaps(group)
		if !ok {
			continue
		}

		last := group[len(group)-1]

		name := last.Note
		if name == "" {
			name = fmt.Sprintf("%s $%s", last.Type, last.Amount)
		}

		patterns = append(patterns, Pattern{
			Name:      name,
			Amount:    last.Amount,
			Type:      last.Type,
			CardID:    last.CardID,
			Frequency: freq,
			LastDate:  last.Date.String(),
			Note:      last.Note,
		})
	}

	return patterns
}

func classifyGaps(group []transaction.Transaction) (Frequency, bool) {
	var freq Frequency

	for i := 1; i < len(group); i++ {
		gap := group[i].Date.DaysSince(group[i-1].Date)

		bucket, ok := bucketFor(gap)
		if !ok {
			return "", false
		}

		if freq == "" {
			freq = bucket
		} else if freq != bucket {
			return "", false
		}
	}

	return freq, freq != ""
}

func bucketFor(days float64) (Frequency, bool) {
	switch {
	case days >= 27 && days <= 31:
		return FrequencyMonthly, true
	case days >= 6 && days <= 8:
		return FrequencyWeekly, true
	case days >= 0.9 && days <= 1.1:
		return FrequencyDaily, true
	default:
		return "", false
	}
}
