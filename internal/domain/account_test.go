package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(v)
	require.NoError(t, err)

	return d
}

func TestWithdraw(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		amount      string
		wantErr     error
		wantBalance string
	}{
		{
			name:        "OK",
			balance:     "100",
			amount:      "60",
			wantBalance: "40",
		},
		{
			name:        "ExactBalance",
			balance:     "100",
			amount:      "100",
			wantBalance: "0",
		},
		{
			name:        "InsufficientBalance",
			balance:     "100",
			amount:      "100.01",
			wantErr:     ErrInsufficientBalance,
			wantBalance: "100",
		},
		{
			name:        "NegativeAmount",
			balance:     "100",
			amount:      "-1",
			wantErr:     ErrNegativeAmount,
			wantBalance: "100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := NewChecking(1, "test", dec(t, tc.balance), 0, 1)

			err := account.Withdraw(dec(t, tc.amount), "withdrawal")

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.True(t, account.Balance.Equal(dec(t, tc.wantBalance)))
				require.Empty(t, account.Register)

				return
			}

			require.NoError(t, err)
			require.True(t, account.Balance.Equal(dec(t, tc.wantBalance)))
			require.Len(t, account.Register, 1)
			require.Equal(t, "withdrawal", account.Register[0].EntryName)
			require.True(t, account.Register[0].Amount.Equal(dec(t, tc.amount).Neg()))
		})
	}
}

func TestDeposit(t *testing.T) {
	account := NewSavings(1, "test", dec(t, "10"), dec(t, "0.05"), 1)

	require.NoError(t, account.Deposit(dec(t, "90.50")))
	require.True(t, account.Balance.Equal(dec(t, "100.50")))
	require.Len(t, account.Register, 1)
	require.Equal(t, "DEPOSIT", account.Register[0].EntryName)
	require.True(t, account.Register[0].Amount.Equal(dec(t, "90.50")))

	require.ErrorIs(t, account.Deposit(dec(t, "-5")), ErrNegativeAmount)
	require.True(t, account.Balance.Equal(dec(t, "100.50")))
	require.Len(t, account.Register, 1)
}

func TestWriteCheck(t *testing.T) {
	account := NewChecking(1, "test", dec(t, "100"), 5, 1)

	n, err := account.WriteCheck("Alice", dec(t, "20"))
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, int64(6), account.CheckNumber)
	require.True(t, account.Balance.Equal(dec(t, "80")))
	require.Len(t, account.Register, 1)
	require.Equal(t, "Check 5", account.Register[0].EntryName)
	require.True(t, account.Register[0].Amount.Equal(dec(t, "-20")))

	n, err = account.WriteCheck("Bob", dec(t, "30"))
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, int64(7), account.CheckNumber)
}

func TestWriteCheckFailures(t *testing.T) {
	savings := NewSavings(1, "test", dec(t, "100"), dec(t, "0.05"), 1)

	_, err := savings.WriteCheck("Alice", dec(t, "20"))
	require.ErrorIs(t, err, ErrNotCheckingAccount)

	checking := NewChecking(1, "test", dec(t, "10"), 5, 1)

	_, err = checking.WriteCheck("Alice", dec(t, "20"))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	require.Equal(t, int64(5), checking.CheckNumber)
	require.Empty(t, checking.Register)
}

func TestMonthEndChecking(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		wantErr     error
		wantBalance string
		wantEntries int
	}{
		{
			name:        "BelowMinimum",
			balance:     "40",
			wantBalance: "30",
			wantEntries: 2,
		},
		{
			name:        "AtMinimum",
			balance:     "50",
			wantBalance: "50",
			wantEntries: 1,
		},
		{
			name:        "AboveMinimum",
			balance:     "100",
			wantBalance: "100",
			wantEntries: 1,
		},
		{
			// The fee cannot be charged, but the marker is still posted.
			name:        "FeeExceedsBalance",
			balance:     "5",
			wantErr:     ErrInsufficientBalance,
			wantBalance: "5",
			wantEntries: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := NewChecking(1, "test", dec(t, tc.balance), 3, 1)
			account.MinimumBalance = dec(t, "50")
			account.BelowMinimumFee = dec(t, "10")

			err := account.MonthEnd()

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.True(t, account.Balance.Equal(dec(t, tc.wantBalance)))
			require.Len(t, account.Register, tc.wantEntries)

			if tc.wantEntries == 2 {
				require.Equal(t, MemoMinimumBalanceCharge, account.Register[0].EntryName)
				require.True(t, account.Register[0].Amount.Equal(dec(t, "-10")))
			}

			marker := account.Register[len(account.Register)-1]
			require.Equal(t, MemoEndCheck, marker.EntryName)
			require.True(t, marker.Amount.Equal(dec(t, "3")))
			require.False(t, marker.Monetary())
		})
	}
}

func TestMonthEndSavings(t *testing.T) {
	account := NewSavings(1, "test", dec(t, "1200"), dec(t, "0.05"), 1)

	require.NoError(t, account.MonthEnd())
	require.True(t, account.Balance.Equal(dec(t, "1205")), "balance %s", account.Balance)
	require.Len(t, account.Register, 1)
	require.Equal(t, MemoInterest, account.Register[0].EntryName)
	require.True(t, account.Register[0].Amount.Equal(dec(t, "5")))
}

func TestSavingsScenarios(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		rate        string
		withdrawals []string
		deposits    []string
		monthEnds   int
		wantBalance string
	}{
		{
			name:        "NoActivity",
			balance:     "100",
			rate:        "0.12",
			wantBalance: "100",
		},
		{
			name:        "WithdrawalsAndDeposits",
			balance:     "100",
			rate:        "0.12",
			withdrawals: []string{"10", "10"},
			deposits:    []string{"50"},
			monthEnds:   1,
			wantBalance: "131.30",
		},
		{
			name:        "TwoMonths",
			balance:     "1000",
			rate:        "0.06",
			monthEnds:   2,
			wantBalance: "1010.03",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := NewSavings(1, "test", dec(t, tc.balance), dec(t, tc.rate), 1)

			for _, w := range tc.withdrawals {
				require.NoError(t, account.Withdraw(dec(t, w), "withdrawal"))
			}

			for _, d := range tc.deposits {
				require.NoError(t, account.Deposit(dec(t, d)))
			}

			for i := 0; i < tc.monthEnds; i++ {
				require.NoError(t, account.MonthEnd())
			}

			require.True(t, account.Balance.Equal(dec(t, tc.wantBalance)), "balance %s", account.Balance)
		})
	}
}

func TestNetRegisterAmount(t *testing.T) {
	account := NewChecking(1, "test", dec(t, "100"), 9, 1)
	account.MinimumBalance = dec(t, "50")
	account.BelowMinimumFee = dec(t, "10")

	require.NoError(t, account.Deposit(dec(t, "25")))
	require.NoError(t, account.Withdraw(dec(t, "90"), "withdrawal"))
	require.NoError(t, account.MonthEnd())

	// The END CHECK marker stores the counter, not money; the net of the
	// monetary entries must equal the balance change since construction.
	require.True(t, account.NetRegisterAmount().Equal(account.Balance.Sub(dec(t, "100"))))
}

func TestClone(t *testing.T) {
	account := NewChecking(1, "test", dec(t, "100"), 0, 1)
	require.NoError(t, account.Deposit(dec(t, "10")))

	clone := account.Clone()
	require.NoError(t, account.Deposit(dec(t, "20")))

	require.Len(t, clone.Register, 1)
	require.Len(t, account.Register, 2)
	require.True(t, clone.Balance.Equal(dec(t, "110")))
}
