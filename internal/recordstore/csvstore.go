package recordstore

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/bank-obfuscator/internal/domain"
	"github.com/go-petr/bank-obfuscator/internal/recordcsv"
)

// CSVStore keeps one flat-record file per entity kind under a records
// directory. Input and output filenames carry separate suffixes so an
// obfuscation run can read `owners_prod.csv` and write `owners_integ.csv`
// side by side.
type CSVStore struct {
	dir          string
	inputSuffix  string
	outputSuffix string
}

// NewCSVStore returns a CSVStore over the given directory.
func NewCSVStore(dir, inputSuffix, outputSuffix string) *CSVStore {
	return &CSVStore{
		dir:          dir,
		inputSuffix:  inputSuffix,
		outputSuffix: outputSuffix,
	}
}

func (s *CSVStore) path(kind, suffix string) string {
	return filepath.Join(s.dir, kind+suffix+".csv")
}

// readRecords returns the non-blank lines of the kind's input file.
// A missing file reads as an empty collection.
func (s *CSVStore) readRecords(ctx context.Context, kind string) ([]string, error) {
	l := zerolog.Ctx(ctx)

	f, err := os.Open(s.path(kind, s.inputSuffix))
	if err != nil {
		if os.IsNotExist(err) {
			l.Debug().Str("kind", kind).Msg("no records file, loading empty collection")
			return nil, nil
		}

		return nil, fmt.Errorf("open %s records: %w", kind, err)
	}
	defer f.Close()

	var records []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		records = append(records, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s records: %w", kind, err)
	}

	return records, nil
}

func (s *CSVStore) writeRecords(kind string, records []string) error {
	f, err := os.Create(s.path(kind, s.outputSuffix))
	if err != nil {
		return fmt.Errorf("create %s records: %w", kind, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, record := range records {
		if _, err := fmt.Fprintln(w, record); err != nil {
			return fmt.Errorf("write %s records: %w", kind, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s records: %w", kind, err)
	}

	return nil
}

// Load reads all four entity kinds and assembles a snapshot. A record that
// fails to parse fails the whole load.
func (s *CSVStore) Load(ctx context.Context) (domain.BankRecords, error) {
	var records domain.BankRecords

	ownerRecords, err := s.readRecords(ctx, KindOwners)
	if err != nil {
		return domain.BankRecords{}, err
	}

	for _, record := range ownerRecords {
		owner, err := recordcsv.ParseOwner(record)
		if err != nil {
			return domain.BankRecords{}, err
		}

		records.Owners = append(records.Owners, owner)
	}

	checkingRecords, err := s.readRecords(ctx, KindChecking)
	if err != nil {
		return domain.BankRecords{}, err
	}

	for _, record := range checkingRecords {
		account, err := recordcsv.ParseChecking(record)
		if err != nil {
			return domain.BankRecords{}, err
		}

		records.Accounts = append(records.Accounts, account)
	}

	savingsRecords, err := s.readRecords(ctx, KindSavings)
	if err != nil {
		return domain.BankRecords{}, err
	}

	for _, record := range savingsRecords {
		account, err := recordcsv.ParseSavings(record)
		if err != nil {
			return domain.BankRecords{}, err
		}

		records.Accounts = append(records.Accounts, account)
	}

	entryRecords, err := s.readRecords(ctx, KindRegister)
	if err != nil {
		return domain.BankRecords{}, err
	}

	for _, record := range entryRecords {
		entry, err := recordcsv.ParseEntry(record)
		if err != nil {
			return domain.BankRecords{}, err
		}

		records.RegisterEntries = append(records.RegisterEntries, entry)
	}

	return records, nil
}

// Save writes the snapshot back out, splitting accounts by variant.
func (s *CSVStore) Save(ctx context.Context, records domain.BankRecords) error {
	owners := make([]string, 0, len(records.Owners))
	for _, o := range records.Owners {
		owners = append(owners, recordcsv.MarshalOwner(o))
	}

	var checking, savings []string

	for _, a := range records.Accounts {
		if a.Kind == domain.KindSavings {
			savings = append(savings, recordcsv.MarshalAccount(a))
		} else {
			checking = append(checking, recordcsv.MarshalAccount(a))
		}
	}

	entries := make([]string, 0, len(records.RegisterEntries))
	for _, e := range records.RegisterEntries {
		entries = append(entries, recordcsv.MarshalEntry(e))
	}

	if err := s.writeRecords(KindOwners, owners); err != nil {
		return err
	}

	if err := s.writeRecords(KindChecking, checking); err != nil {
		return err
	}

	if err := s.writeRecords(KindSavings, savings); err != nil {
		return err
	}

	return s.writeRecords(KindRegister, entries)
}
