package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNotCheckingAccount indicates a checking-only operation on a savings account.
	ErrNotCheckingAccount = errors.New("not a checking account")
)

// AccountKind discriminates the two account variants.
type AccountKind string

// Account variants.
const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

// Memos written to the register by account operations.
const (
	MemoMinimumBalanceCharge = "MINIMUM BALANCE CHARGE"
	MemoEndCheck             = "END CHECK"
	MemoInterest             = "INTEREST"
	MemoDeposit              = "DEPOSIT"
)

// Account holds balance and ledger data for a single customer account.
// CheckNumber is meaningful only for checking accounts, InterestRate only
// for savings accounts.
//
// Accounts have a single-writer assumption: callers must not invoke
// mutating operations on the same account concurrently.
type Account struct {
	ID              int64
	Name            string
	Balance         decimal.Decimal
	OwnerID         int64
	MinimumBalance  decimal.Decimal
	BelowMinimumFee decimal.Decimal
	Kind            AccountKind
	CheckNumber     int64
	InterestRate    decimal.Decimal // yearly rate, e.g. 0.05
	Register        []RegisterEntry
}

// NewChecking returns a checking account with the given starting balance
// and check counter.
func NewChecking(id int64, name string, balance decimal.Decimal, checkNumber, ownerID int64) Account {
	return Account{
		ID:          id,
		Name:        name,
		Balance:     balance,
		OwnerID:     ownerID,
		Kind:        KindChecking,
		CheckNumber: checkNumber,
	}
}

// NewSavings returns a savings account with the given starting balance
// and yearly interest rate.
func NewSavings(id int64, name string, balance, interestRate decimal.Decimal, ownerID int64) Account {
	return Account{
		ID:           id,
		Name:         name,
		Balance:      balance,
		OwnerID:      ownerID,
		Kind:         KindSavings,
		InterestRate: interestRate,
	}
}

// post appends a register entry recording the given amount under the given memo.
func (a *Account) post(memo string, amount decimal.Decimal) {
	a.Register = append(a.Register, RegisterEntry{
		ID:        int64(len(a.Register) + 1),
		AccountID: a.ID,
		EntryName: memo,
		Amount:    amount,
		Date:      time.Now().Truncate(time.Second).UTC(),
	})
}

// Withdraw decreases the balance by amount and posts a negative register
// entry under the given memo. It fails with ErrInsufficientBalance if the
// withdrawal would drive the balance negative; the account is left
// untouched in that case.
func (a *Account) Withdraw(amount decimal.Decimal, memo string) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	next := a.Balance.Sub(amount)
	if next.IsNegative() {
		return fmt.Errorf("balance %s, withdrawal %s: %w", a.Balance, amount, ErrInsufficientBalance)
	}

	a.Balance = next
	a.post(memo, amount.Neg())

	return nil
}

// Deposit increases the balance by amount and posts a positive register entry.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.post(MemoDeposit, amount)

	return nil
}

// WriteCheck withdraws amount under a "Check <n>" memo and returns the
// check number used, then advances the counter by one. Checking accounts only.
func (a *Account) WriteCheck(name string, amount decimal.Decimal) (int64, error) {
	if a.Kind != KindChecking {
		return 0, ErrNotCheckingAccount
	}

	if err := a.Withdraw(amount, fmt.Sprintf("Check %d", a.CheckNumber)); err != nil {
		return 0, err
	}

	n := a.CheckNumber
	a.CheckNumber++

	return n, nil
}

// MonthEnd applies the variant's end-of-cycle rule.
//
// Checking: charge BelowMinimumFee if the balance is under MinimumBalance,
// then post an END CHECK marker entry holding the current check counter.
// The marker is bookkeeping metadata, not a cash movement, and is posted
// even when the fee cannot be charged; the failed charge is still reported
// to the caller.
//
// Savings: deposit one month of simple interest, Balance * InterestRate / 12,
// rounded to 2 decimal places.
func (a *Account) MonthEnd() error {
	switch a.Kind {
	case KindChecking:
		var feeErr error

		if a.Balance.LessThan(a.MinimumBalance) {
			feeErr = a.Withdraw(a.BelowMinimumFee, MemoMinimumBalanceCharge)
		}

		a.post(MemoEndCheck, decimal.NewFromInt(a.CheckNumber))

		return feeErr
	case KindSavings:
		interest := a.Balance.Mul(a.InterestRate).Div(decimal.NewFromInt(12)).Round(2)

		a.Balance = a.Balance.Add(interest)
		a.post(MemoInterest, interest)
	}

	return nil
}

// NetRegisterAmount sums the monetary register entries, skipping markers.
// For an account whose register holds its full history it equals the balance
// net of the starting balance.
func (a *Account) NetRegisterAmount() decimal.Decimal {
	net := decimal.Zero

	for _, e := range a.Register {
		if e.Monetary() {
			net = net.Add(e.Amount)
		}
	}

	return net
}

// Clone returns a copy of the account with its own register slice.
// The register is owned exclusively by one account value and must never
// be aliased between two copies.
func (a Account) Clone() Account {
	c := a
	c.Register = make([]RegisterEntry, len(a.Register))
	copy(c.Register, a.Register)

	return c
}
