// Package recordstore persists bank record snapshots in named external
// stores, one store per entity kind.
package recordstore

import (
	"context"

	"github.com/go-petr/bank-obfuscator/internal/domain"
)

// Entity kinds as named in the external stores.
const (
	KindOwners   = "owners"
	KindChecking = "checking"
	KindSavings  = "savings"
	KindRegister = "register"
)

// Store loads and saves full snapshots.
type Store interface {
	Load(ctx context.Context) (domain.BankRecords, error)
	Save(ctx context.Context, records domain.BankRecords) error
}
