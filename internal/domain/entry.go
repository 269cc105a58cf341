package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntry holds one immutable row of an account's ledger.
// Amount is negative for withdrawals and fees, positive for deposits.
type RegisterEntry struct {
	ID        int64
	AccountID int64
	EntryName string
	Amount    decimal.Decimal
	Date      time.Time
}

// Monetary reports whether the entry records a cash movement. The END CHECK
// marker stores the check counter and must not count toward the balance.
func (e RegisterEntry) Monetary() bool {
	return e.EntryName != MemoEndCheck
}
