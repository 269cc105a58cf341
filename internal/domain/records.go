package domain

import (
	"errors"
	"fmt"
)

// ErrUnresolvedReference indicates a record referencing an id with no
// matching record in the same snapshot.
var ErrUnresolvedReference = errors.New("unresolved record reference")

// BankRecords bundles one full relational snapshot of owners, accounts and
// register entries. A valid snapshot is closed: every account resolves to an
// owner and every entry resolves to an account within the snapshot.
type BankRecords struct {
	Owners          []Owner
	Accounts        []Account
	RegisterEntries []RegisterEntry
}

// Validate checks the closure invariant and fails with
// ErrUnresolvedReference on the first dangling reference.
func (r BankRecords) Validate() error {
	owners := make(map[int64]struct{}, len(r.Owners))
	for _, o := range r.Owners {
		owners[o.ID] = struct{}{}
	}

	accounts := make(map[int64]struct{}, len(r.Accounts))

	for _, a := range r.Accounts {
		if _, ok := owners[a.OwnerID]; !ok {
			return fmt.Errorf("account %d references owner %d: %w", a.ID, a.OwnerID, ErrUnresolvedReference)
		}

		accounts[a.ID] = struct{}{}
	}

	for _, e := range r.RegisterEntries {
		if _, ok := accounts[e.AccountID]; !ok {
			return fmt.Errorf("register entry %d references account %d: %w", e.ID, e.AccountID, ErrUnresolvedReference)
		}
	}

	return nil
}
