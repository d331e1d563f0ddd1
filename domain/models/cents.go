package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is an exact, non-negative currency amount counted in minor units
// (hundredths of the base unit). The full uint64 range is usable.
type Cents uint64

// MaxCents is the largest representable amount.
const MaxCents = Cents(math.MaxUint64)

// ParseCents parses decimal text into Cents. The text must be a
// non-negative number containing only digits and at most one period
// followed by one or two decimal digits. A single decimal digit counts
// tenths, so "3.1" parses to 310. The integer part may be empty (".5"),
// and the whole text must be consumed.
func ParseCents(text string) (Cents, error) {
	sep := strings.LastIndexByte(text, '.')
	if sep < 0 {
		units, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return 0, &InvalidAmountError{Text: text}
		}
		if units > math.MaxUint64/100 {
			return 0, &AmountOverflowError{Text: text}
		}
		return Cents(units * 100), nil
	}

	intPart, decPart := text[:sep], text[sep+1:]

	var units uint64
	if intPart != "" {
		var err error
		units, err = strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			return 0, &InvalidAmountError{Text: text}
		}
	}

	if len(decPart) < 1 || len(decPart) > 2 {
		return 0, &InvalidAmountError{Text: text}
	}
	dec, err := strconv.ParseUint(decPart, 10, 64)
	if err != nil {
		return 0, &InvalidAmountError{Text: text}
	}
	if len(decPart) == 1 {
		// A lone decimal digit is the tenths place.
		dec *= 10
	}

	if units > math.MaxUint64/100 {
		return 0, &AmountOverflowError{Text: text}
	}
	total, ok := Cents(units * 100).Add(Cents(dec))
	if !ok {
		return 0, &AmountOverflowError{Text: text}
	}
	return total, nil
}

// String formats the amount in base units with exactly two decimal places,
// e.g. Cents(4023) renders as "40.23". No currency symbol is attached;
// that is left to the caller.
func (c Cents) String() string {
	return fmt.Sprintf("%d.%02d", uint64(c)/100, uint64(c)%100)
}

// Add returns the sum of the two amounts. The bool is false when the sum
// would exceed MaxCents, in which case the Cents result is zero.
func (c Cents) Add(other Cents) (Cents, bool) {
	sum := c + other
	if sum < c {
		return 0, false
	}
	return sum, true
}

// Sub returns the difference of the two amounts. The bool is false when
// other exceeds c, in which case the Cents result is zero.
func (c Cents) Sub(other Cents) (Cents, bool) {
	if other > c {
		return 0, false
	}
	return c - other, true
}
