// Package test provides random entity fixtures shared by package tests.
package test

import (
	"time"

	"github.com/go-petr/bank-obfuscator/internal/domain"
	"github.com/go-petr/bank-obfuscator/pkg/randompkg"
)

// RandomOwner returns a random owner with the given id.
func RandomOwner(id int64) domain.Owner {
	return domain.Owner{
		ID:          id,
		Name:        randompkg.Owner(),
		DateOfBirth: randompkg.DateBetween(1940, 2005),
		SSN:         randompkg.SSN(),
		Address:     randompkg.String(12),
		Address2:    randompkg.String(6),
		City:        randompkg.String(8),
		State:       "NY",
		Zip:         randompkg.Zip(),
	}
}

// RandomChecking returns a random checking account referencing the given owner.
func RandomChecking(id, ownerID int64) domain.Account {
	return domain.NewChecking(
		id,
		randompkg.Owner(),
		randompkg.MoneyAmountBetween(1000, 10_000),
		randompkg.Int64Between(1, 100),
		ownerID,
	)
}

// RandomSavings returns a random savings account referencing the given owner.
func RandomSavings(id, ownerID int64) domain.Account {
	return domain.NewSavings(
		id,
		randompkg.Owner(),
		randompkg.MoneyAmountBetween(1000, 10_000),
		randompkg.MoneyAmountBetween(0.01, 0.1),
		ownerID,
	)
}

// RandomEntry returns a random register entry referencing the given account.
func RandomEntry(id, accountID int64) domain.RegisterEntry {
	return domain.RegisterEntry{
		ID:        id,
		AccountID: accountID,
		EntryName: randompkg.String(10),
		Amount:    randompkg.MoneyAmountBetween(-100, 100),
		Date:      randompkg.DateBetween(2015, 2025),
	}
}

// RandomBankRecords returns a small closed snapshot: two owners, three
// accounts (two on the first owner, one on the second) and five register
// entries spread across the accounts.
func RandomBankRecords() domain.BankRecords {
	owner1 := RandomOwner(1)
	owner2 := RandomOwner(2)

	checking1 := RandomChecking(11, owner1.ID)
	checking2 := RandomChecking(12, owner2.ID)
	savings1 := RandomSavings(13, owner1.ID)

	return domain.BankRecords{
		Owners:   []domain.Owner{owner1, owner2},
		Accounts: []domain.Account{checking1, checking2, savings1},
		RegisterEntries: []domain.RegisterEntry{
			RandomEntry(101, checking1.ID),
			RandomEntry(102, checking1.ID),
			RandomEntry(103, checking2.ID),
			RandomEntry(104, savings1.ID),
			RandomEntry(105, savings1.ID),
		},
	}
}

// Date returns a UTC date at midnight, for fixtures needing exact dates.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
