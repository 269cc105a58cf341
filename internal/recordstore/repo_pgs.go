package recordstore

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/bank-obfuscator/internal/domain"
	"github.com/go-petr/bank-obfuscator/pkg/dbpkg"
	"github.com/go-petr/bank-obfuscator/pkg/errorspkg"
)

// RepoPGS persists snapshots in a Postgres database.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns a records RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const listOwnersQuery = `
SELECT id, name, date_of_birth, ssn, address, address2, city, state, zip
FROM owners ORDER BY id
`

const listAccountsQuery = `
SELECT id, name, balance, kind, check_number, interest_rate, owner_id
FROM accounts ORDER BY id
`

const listEntriesQuery = `
SELECT id, account_id, entry_name, amount, entry_date
FROM register_entries ORDER BY id
`

// Load reads the full snapshot from the connected database.
func (r *RepoPGS) Load(ctx context.Context) (domain.BankRecords, error) {
	l := zerolog.Ctx(ctx)

	var records domain.BankRecords

	rows, err := r.db.QueryContext(ctx, listOwnersQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.BankRecords{}, errorspkg.ErrInternal
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.DateOfBirth,
			&o.SSN,
			&o.Address,
			&o.Address2,
			&o.City,
			&o.State,
			&o.Zip,
		); err != nil {
			l.Error().Err(err).Send()
			return domain.BankRecords{}, errorspkg.ErrInternal
		}

		records.Owners = append(records.Owners, o)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return domain.BankRecords{}, errorspkg.ErrInternal
	}

	records.Accounts, err = r.loadAccounts(ctx)
	if err != nil {
		return domain.BankRecords{}, err
	}

	records.RegisterEntries, err = r.loadEntries(ctx)
	if err != nil {
		return domain.BankRecords{}, err
	}

	return records, nil
}

func (r *RepoPGS) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAccountsQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var accounts []domain.Account

	for rows.Next() {
		var (
			a            domain.Account
			kind         string
			checkNumber  sql.NullInt64
			interestRate sql.NullString
		)

		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Balance,
			&kind,
			&checkNumber,
			&interestRate,
			&a.OwnerID,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		a.Kind = domain.AccountKind(kind)
		a.CheckNumber = checkNumber.Int64

		if interestRate.Valid {
			if err := a.InterestRate.Scan(interestRate.String); err != nil {
				l.Error().Err(err).Send()
				return nil, errorspkg.ErrInternal
			}
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return accounts, nil
}

func (r *RepoPGS) loadEntries(ctx context.Context) ([]domain.RegisterEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listEntriesQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var entries []domain.RegisterEntry

	for rows.Next() {
		var e domain.RegisterEntry
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.EntryName,
			&e.Amount,
			&e.Date,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return entries, nil
}

const insertOwnerQuery = `
INSERT INTO
    owners (id, name, date_of_birth, ssn, address, address2, city, state, zip)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const insertAccountQuery = `
INSERT INTO
    accounts (id, name, balance, kind, check_number, interest_rate, owner_id)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
`

const insertEntryQuery = `
INSERT INTO
    register_entries (id, account_id, entry_name, amount, entry_date)
VALUES
    ($1, $2, $3, $4, $5)
`

// Save inserts the snapshot into the connected database.
func (r *RepoPGS) Save(ctx context.Context, records domain.BankRecords) error {
	l := zerolog.Ctx(ctx)

	for _, o := range records.Owners {
		_, err := r.db.ExecContext(ctx, insertOwnerQuery,
			o.ID, o.Name, o.DateOfBirth, o.SSN, o.Address, o.Address2, o.City, o.State, o.Zip)
		if err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, a := range records.Accounts {
		_, err := r.db.ExecContext(ctx, insertAccountQuery,
			a.ID, a.Name, a.Balance, string(a.Kind), a.CheckNumber, a.InterestRate, a.OwnerID)
		if err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, e := range records.RegisterEntries {
		_, err := r.db.ExecContext(ctx, insertEntryQuery,
			e.ID, e.AccountID, e.EntryName, e.Amount, e.Date)
		if err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	return nil
}
