// Package recordcsv implements the versioned flat-record format used to
// persist bank entities, one record per line with a trailing version tag.
package recordcsv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Version is the only record version this codec accepts.
const Version = "v1"

// DateLayout renders dates in records.
const DateLayout = "2006-01-02"

// moneyPlaces is the number of decimal places money fields render with.
const moneyPlaces = 6

var (
	// ErrUnsupportedVersion indicates a record whose trailing tag is not Version.
	ErrUnsupportedVersion = errors.New("unsupported record version")
	// ErrFieldCount indicates a record with the wrong number of fields.
	ErrFieldCount = errors.New("record field count mismatch")
	// ErrMalformedField indicates a field that failed to parse.
	ErrMalformedField = errors.New("malformed record field")
)

// split tokenizes a record, validates the version tag and the exact field
// count, and returns the fields without the tag.
func split(record string, want int) ([]string, error) {
	fields := strings.Split(record, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	version := fields[len(fields)-1]
	if version != Version {
		return nil, fmt.Errorf("expected version %s but was %q: %w", Version, version, ErrUnsupportedVersion)
	}

	if len(fields) != want {
		return nil, fmt.Errorf("expected %d fields but were %d in %q: %w", want, len(fields), record, ErrFieldCount)
	}

	return fields[:want-1], nil
}

func parseID(name, field string) (int64, error) {
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, field, ErrMalformedField)
	}

	return v, nil
}

func parseMoney(name, field string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s %q: %w", name, field, ErrMalformedField)
	}

	return v, nil
}

func parseDate(name, field string) (time.Time, error) {
	v, err := time.Parse(DateLayout, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", name, field, ErrMalformedField)
	}

	return v, nil
}
