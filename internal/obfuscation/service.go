// Package obfuscation anonymizes full bank record snapshots so they can be
// reused as test data without exposing customer information.
package obfuscation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/bank-obfuscator/internal/domain"
)

const (
	// dateShiftDays is the fixed forward shift applied to register entry dates.
	dateShiftDays = 7

	// Random dates of birth fall between these years.
	dobYearMin = 1960
	dobYearMax = 2000

	// Fresh ids are 9-digit numbers.
	idSpace = 1_000_000_000
)

// Service runs the anonymization pipeline. Randomness comes from the
// injected generator so runs can be reproduced with a fixed seed.
type Service struct {
	rng *rand.Rand
}

// New returns an obfuscation Service drawing randomness from rng.
func New(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// Obfuscate transforms a snapshot in three passes: owners, then accounts,
// then register entries. Each pass records an old to new id mapping that
// the next pass resolves references through; a reference that does not
// resolve aborts the whole call and no partial snapshot is returned.
//
// Amounts, balances, check numbers and interest rates pass through
// unchanged. The output satisfies the same closure invariant as the input.
func (s *Service) Obfuscate(ctx context.Context, records domain.BankRecords) (domain.BankRecords, error) {
	l := zerolog.Ctx(ctx)

	ownerIDs := make(map[int64]int64, len(records.Owners))
	usedIDs := make(map[int64]struct{})
	owners := make([]domain.Owner, 0, len(records.Owners))

	for _, o := range records.Owners {
		newOwner := domain.Owner{
			ID:          s.freshID(usedIDs),
			Name:        s.shuffleString(o.Name),
			DateOfBirth: s.randomDOB(),
			SSN:         maskSSN(o.SSN),
			Address:     s.shuffleString(o.Address),
			Address2:    s.shuffleString(o.Address2),
			City:        s.shuffleString(o.City),
			State:       o.State,
			Zip:         o.Zip,
		}

		owners = append(owners, newOwner)
		ownerIDs[o.ID] = newOwner.ID
	}

	accountIDs := make(map[int64]int64, len(records.Accounts))
	usedIDs = make(map[int64]struct{})
	accounts := make([]domain.Account, 0, len(records.Accounts))

	for _, a := range records.Accounts {
		newOwnerID, ok := ownerIDs[a.OwnerID]
		if !ok {
			return domain.BankRecords{}, fmt.Errorf("account %d references owner %d: %w",
				a.ID, a.OwnerID, domain.ErrUnresolvedReference)
		}

		// Ledger rows travel in RegisterEntries and get remapped in the
		// third pass; an embedded register would leak the old account id
		// and unshifted dates.
		newAccount := a.Clone()
		newAccount.ID = s.freshID(usedIDs)
		newAccount.Name = s.shuffleString(a.Name)
		newAccount.OwnerID = newOwnerID
		newAccount.Register = nil

		accounts = append(accounts, newAccount)
		accountIDs[a.ID] = newAccount.ID
	}

	entries := make([]domain.RegisterEntry, 0, len(records.RegisterEntries))

	for _, e := range records.RegisterEntries {
		newAccountID, ok := accountIDs[e.AccountID]
		if !ok {
			return domain.BankRecords{}, fmt.Errorf("register entry %d references account %d: %w",
				e.ID, e.AccountID, domain.ErrUnresolvedReference)
		}

		newEntry := e
		newEntry.AccountID = newAccountID
		newEntry.Date = ShiftDate(e.Date)

		entries = append(entries, newEntry)
	}

	l.Info().
		Int("owners", len(owners)).
		Int("accounts", len(accounts)).
		Int("register_entries", len(entries)).
		Msg("obfuscated records")

	return domain.BankRecords{
		Owners:          owners,
		Accounts:        accounts,
		RegisterEntries: entries,
	}, nil
}

// ShiftDate moves a register entry date forward by the pipeline's fixed offset.
func ShiftDate(d time.Time) time.Time {
	return d.AddDate(0, 0, dateShiftDays)
}

// maskSSN blanks all but the last four characters, e.g. ***-**-6789.
func maskSSN(ssn string) string {
	last4 := ssn
	if len(ssn) > 4 {
		last4 = ssn[len(ssn)-4:]
	}

	return "***-**-" + last4
}

// shuffleString returns a random permutation of the characters of v,
// preserving length and character multiset.
func (s *Service) shuffleString(v string) string {
	runes := []rune(v)
	s.rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})

	return string(runes)
}

// randomDOB returns a uniformly random date of birth between 1960 and 2000.
func (s *Service) randomDOB() time.Time {
	year := dobYearMin + s.rng.Intn(dobYearMax-dobYearMin)
	month := time.Month(1 + s.rng.Intn(12))
	day := 1 + s.rng.Intn(28)

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// freshID returns a random 9-digit id not handed out before in this run.
func (s *Service) freshID(used map[int64]struct{}) int64 {
	for {
		id := s.rng.Int63n(idSpace)
		if _, ok := used[id]; !ok {
			used[id] = struct{}{}
			return id
		}
	}
}
