package recordcsv

import (
	"fmt"

	"github.com/go-petr/bank-obfuscator/internal/domain"
)

// Field counts including the version tag.
const (
	checkingFieldCount = 6
	savingsFieldCount  = 6
)

// MarshalAccount renders an account in its variant's column order:
// checking `id, name, balance, checkNumber, ownerId, v1`,
// savings `id, name, balance, interestRate, ownerId, v1`.
func MarshalAccount(a domain.Account) string {
	if a.Kind == domain.KindSavings {
		return fmt.Sprintf("%d, %s, %s, %s, %d, %s",
			a.ID, a.Name, a.Balance.StringFixed(moneyPlaces), a.InterestRate.StringFixed(moneyPlaces), a.OwnerID, Version)
	}

	return fmt.Sprintf("%d, %s, %s, %d, %d, %s",
		a.ID, a.Name, a.Balance.StringFixed(moneyPlaces), a.CheckNumber, a.OwnerID, Version)
}

// ParseChecking parses a checking account record.
func ParseChecking(record string) (domain.Account, error) {
	fields, err := split(record, checkingFieldCount)
	if err != nil {
		return domain.Account{}, err
	}

	id, err := parseID("id", fields[0])
	if err != nil {
		return domain.Account{}, err
	}

	balance, err := parseMoney("balance", fields[2])
	if err != nil {
		return domain.Account{}, err
	}

	checkNumber, err := parseID("checkNumber", fields[3])
	if err != nil {
		return domain.Account{}, err
	}

	ownerID, err := parseID("ownerId", fields[4])
	if err != nil {
		return domain.Account{}, err
	}

	return domain.NewChecking(id, fields[1], balance, checkNumber, ownerID), nil
}

// ParseSavings parses a savings account record.
func ParseSavings(record string) (domain.Account, error) {
	fields, err := split(record, savingsFieldCount)
	if err != nil {
		return domain.Account{}, err
	}

	id, err := parseID("id", fields[0])
	if err != nil {
		return domain.Account{}, err
	}

	balance, err := parseMoney("balance", fields[2])
	if err != nil {
		return domain.Account{}, err
	}

	interestRate, err := parseMoney("interestRate", fields[3])
	if err != nil {
		return domain.Account{}, err
	}

	ownerID, err := parseID("ownerId", fields[4])
	if err != nil {
		return domain.Account{}, err
	}

	return domain.NewSavings(id, fields[1], balance, interestRate, ownerID), nil
}
