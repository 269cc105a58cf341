// Package domain provides defenitions of all entities.
package domain

import "time"

// Owner holds personal data for a single bank customer.
// Owner values are never mutated in place; an updated owner is a new value.
type Owner struct {
	ID          int64
	Name        string
	DateOfBirth time.Time
	SSN         string
	Address     string
	Address2    string
	City        string
	State       string
	Zip         string
}
