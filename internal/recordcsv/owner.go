package recordcsv

import (
	"fmt"

	"github.com/go-petr/bank-obfuscator/internal/domain"
)

const ownerFieldCount = 10

// MarshalOwner renders an owner record:
// `id, name, dateOfBirth, ssn, address, address2, city, state, zip, v1`.
func MarshalOwner(o domain.Owner) string {
	return fmt.Sprintf("%d, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		o.ID, o.Name, o.DateOfBirth.Format(DateLayout), o.SSN,
		o.Address, o.Address2, o.City, o.State, o.Zip, Version)
}

// ParseOwner parses an owner record.
func ParseOwner(record string) (domain.Owner, error) {
	fields, err := split(record, ownerFieldCount)
	if err != nil {
		return domain.Owner{}, err
	}

	id, err := parseID("id", fields[0])
	if err != nil {
		return domain.Owner{}, err
	}

	dob, err := parseDate("dateOfBirth", fields[2])
	if err != nil {
		return domain.Owner{}, err
	}

	return domain.Owner{
		ID:          id,
		Name:        fields[1],
		DateOfBirth: dob,
		SSN:         fields[3],
		Address:     fields[4],
		Address2:    fields[5],
		City:        fields[6],
		State:       fields[7],
		Zip:         fields[8],
	}, nil
}
