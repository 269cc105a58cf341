package recordcsv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bank-obfuscator/internal/domain"
	"github.com/go-petr/bank-obfuscator/internal/recordcsv"
	"github.com/go-petr/bank-obfuscator/internal/test"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestParseChecking(t *testing.T) {
	account, err := recordcsv.ParseChecking("7, Jane Doe, 120.500000, 3, 42, v1")
	require.NoError(t, err)

	require.Equal(t, int64(7), account.ID)
	require.Equal(t, "Jane Doe", account.Name)
	require.True(t, account.Balance.Equal(decimal.RequireFromString("120.5")))
	require.Equal(t, int64(3), account.CheckNumber)
	require.Equal(t, int64(42), account.OwnerID)
	require.Equal(t, domain.KindChecking, account.Kind)
}

func TestParseCheckingErrors(t *testing.T) {
	testCases := []struct {
		name    string
		record  string
		wantErr error
	}{
		{
			name:    "WrongVersion",
			record:  "7, Jane Doe, 120.500000, 3, 42, v2",
			wantErr: recordcsv.ErrUnsupportedVersion,
		},
		{
			name:    "MissingVersion",
			record:  "7, Jane Doe, 120.500000, 3, 42",
			wantErr: recordcsv.ErrUnsupportedVersion,
		},
		{
			name:    "TooFewFields",
			record:  "7, Jane Doe, 120.500000, 42, v1",
			wantErr: recordcsv.ErrFieldCount,
		},
		{
			name:    "TooManyFields",
			record:  "7, Jane Doe, 120.500000, 3, 42, extra, v1",
			wantErr: recordcsv.ErrFieldCount,
		},
		{
			name:    "MalformedID",
			record:  "x, Jane Doe, 120.500000, 3, 42, v1",
			wantErr: recordcsv.ErrMalformedField,
		},
		{
			name:    "MalformedBalance",
			record:  "7, Jane Doe, 12f.5, 3, 42, v1",
			wantErr: recordcsv.ErrMalformedField,
		},
		{
			name:    "MalformedCheckNumber",
			record:  "7, Jane Doe, 120.500000, 3.5, 42, v1",
			wantErr: recordcsv.ErrMalformedField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := recordcsv.ParseChecking(tc.record)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, account)
		})
	}
}

func TestParseSavings(t *testing.T) {
	account, err := recordcsv.ParseSavings("8, Joe Doe, 500.000000, 0.050000, 42, v1")
	require.NoError(t, err)

	require.Equal(t, int64(8), account.ID)
	require.True(t, account.InterestRate.Equal(decimal.RequireFromString("0.05")))
	require.Equal(t, domain.KindSavings, account.Kind)

	_, err = recordcsv.ParseSavings("8, Joe Doe, 500.000000, rate, 42, v1")
	require.ErrorIs(t, err, recordcsv.ErrMalformedField)
}

func TestAccountRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		account domain.Account
		parse   func(string) (domain.Account, error)
	}{
		{
			name:    "Checking",
			account: test.RandomChecking(7, 42),
			parse:   recordcsv.ParseChecking,
		},
		{
			name:    "Savings",
			account: test.RandomSavings(8, 42),
			parse:   recordcsv.ParseSavings,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := tc.parse(recordcsv.MarshalAccount(tc.account))
			require.NoError(t, err)

			require.Empty(t, cmp.Diff(tc.account, parsed, decimalComparer))
		})
	}
}
