package recordcsv

import (
	"fmt"

	"github.com/go-petr/bank-obfuscator/internal/domain"
)

const entryFieldCount = 6

// MarshalEntry renders a register entry record:
// `id, accountId, entryName, amount, date, v1`.
func MarshalEntry(e domain.RegisterEntry) string {
	return fmt.Sprintf("%d, %d, %s, %s, %s, %s",
		e.ID, e.AccountID, e.EntryName, e.Amount.StringFixed(moneyPlaces), e.Date.Format(DateLayout), Version)
}

// ParseEntry parses a register entry record.
func ParseEntry(record string) (domain.RegisterEntry, error) {
	fields, err := split(record, entryFieldCount)
	if err != nil {
		return domain.RegisterEntry{}, err
	}

	id, err := parseID("id", fields[0])
	if err != nil {
		return domain.RegisterEntry{}, err
	}

	accountID, err := parseID("accountId", fields[1])
	if err != nil {
		return domain.RegisterEntry{}, err
	}

	amount, err := parseMoney("amount", fields[3])
	if err != nil {
		return domain.RegisterEntry{}, err
	}

	date, err := parseDate("date", fields[4])
	if err != nil {
		return domain.RegisterEntry{}, err
	}

	return domain.RegisterEntry{
		ID:        id,
		AccountID: accountID,
		EntryName: fields[2],
		Amount:    amount,
		Date:      date,
	}, nil
}
