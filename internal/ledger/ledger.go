// Package ledger performs cross-entity balance transfers: funding or drawing
// down a savings goal and repaying a debt, always paid from a stored card.
// Every attempt, rejected or not, leaves one history record on the target
// entity; only successful transfers move money and reach the activity log.
package ledger

import (
	"time"

	"github.com/moneta-dev/moneta/internal/date"
	"github.com/moneta-dev/moneta/internal/money"
)

// Status marks whether an attempted transfer went through.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Operation labels on history entries.
const (
	OpDeposit  = "Deposit"
	OpWithdraw = "Withdraw"
	OpRepay    = "Repay"
)

// GoalHistoryEntry is one attempted goal transfer, newest first in storage.
type GoalHistoryEntry struct {
	ID     int64        `json:"id"`
	GoalID int64        `json:"goalId"`
	Type   string       `json:"type"`
	Amount money.Amount `json:"amount"`
	Note   string       `json:"note"`
	Date   date.Date    `json:"date"`
	Status Status       `json:"status"`
}

// DebtHistoryEntry is one attempted repayment, newest first in storage.
type DebtHistoryEntry struct {
	ID     int64        `json:"id"`
	DebtID int64        `json:"debtId"`
	Amount money.Amount `json:"amount"`
	Note   string       `json:"note"`
	Date   date.Date    `json:"date"`
	Status Status       `json:"status"`
}

// Activity is one entry in the global ring log of successful transfers.
type Activity struct {
	Type   string       `json:"type"`
	Amount money.Amount `json:"amount"`
	Note   string       `json:"note"`
	Date   time.Time    `json:"date"`
	Name   string       `json:"name"`
	Card   string       `json:"card"`
}

// Activity types.
const (
	ActivityGoalDeposit   = "Goal Deposit"
	ActivityGoalWithdraw  = "Goal Withdraw"
	ActivityDebtRepayment = "Debt Repayment"
)

// activityLimit caps the ring log at the most recent entries.
const activityLimit = 20
