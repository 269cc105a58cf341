// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// Int64Between generates a random integer between min and max.
func Int64Between(min, max int64) int64 {
	return Intn(int(max-min)) + min
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 4 decimals.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// SSN generates a random social security number in the fixed 11 character format.
func SSN() string {
	return fmt.Sprintf("%03d-%02d-%04d", Intn(1000), Intn(100), Intn(10000))
}

// Zip generates a random 5 digit zip code.
func Zip() string {
	return fmt.Sprintf("%05d", Intn(100_000))
}

// DateBetween generates a random UTC date between the given years.
func DateBetween(yearMin, yearMax int) time.Time {
	year := int(Int64Between(int64(yearMin), int64(yearMax)))
	month := time.Month(1 + Intn(12))
	day := 1 + int(Intn(28))

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
