// Package types - Cost and currency types
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// IsValid checks if the currency is supported
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD:
		return true
	default:
		return false
	}
}

// ParseCurrency parses a case-insensitive currency code
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency %q (use EUR or USD)", s)
	}
	return c, nil
}

// infinityLiteral is how an infinite cost is written in JSON
const infinityLiteral = "inf"

// Cost is an exact decimal amount or positive infinity.
// Infinity marks a plan or provider that cannot satisfy the storage
// requirement. Amounts are never rounded here.
type Cost struct {
	amount   decimal.Decimal
	infinite bool
}

// NewCost creates a finite cost
func NewCost(amount decimal.Decimal) Cost {
	return Cost{amount: amount}
}

// ZeroCost returns a finite zero cost
func ZeroCost() Cost {
	return Cost{amount: decimal.Zero}
}

// Infinite returns the positive infinity sentinel
func Infinite() Cost {
	return Cost{infinite: true}
}

// Amount returns the decimal amount (zero when infinite)
func (c Cost) Amount() decimal.Decimal {
	if c.infinite {
		return decimal.Zero
	}
	return c.amount
}

// IsInfinite reports whether the cost is the infinity sentinel
func (c Cost) IsInfinite() bool {
	return c.infinite
}

// Add returns the sum; infinity absorbs any finite value
func (c Cost) Add(other Cost) Cost {
	if c.infinite || other.infinite {
		return Infinite()
	}
	return Cost{amount: c.amount.Add(other.amount)}
}

// AddDecimal adds a finite decimal amount
func (c Cost) AddDecimal(d decimal.Decimal) Cost {
	return c.Add(NewCost(d))
}

// Cmp compares two costs: -1 if c < other, 0 if equal, +1 if c > other.
// Two infinite costs compare equal.
func (c Cost) Cmp(other Cost) int {
	switch {
	case c.infinite && other.infinite:
		return 0
	case c.infinite:
		return 1
	case other.infinite:
		return -1
	default:
		return c.amount.Cmp(other.amount)
	}
}

// LessThan reports whether c is strictly cheaper than other
func (c Cost) LessThan(other Cost) bool {
	return c.Cmp(other) < 0
}

// Equal reports whether both costs are the same value
func (c Cost) Equal(other Cost) bool {
	return c.Cmp(other) == 0
}

// String returns the full-precision amount or "inf"
func (c Cost) String() string {
	if c.infinite {
		return infinityLiteral
	}
	return c.amount.String()
}

// StringFixed rounds for display only
func (c Cost) StringFixed(places int32) string {
	if c.infinite {
		return infinityLiteral
	}
	return c.amount.StringFixed(places)
}

// MarshalJSON encodes the cost as a quoted decimal string or "inf"
func (c Cost) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a number, a quoted decimal or "inf"
func (c *Cost) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)
	if string(trimmed) == infinityLiteral {
		*c = Infinite()
		return nil
	}
	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return fmt.Errorf("invalid cost %s: %w", data, err)
	}
	*c = NewCost(d)
	return nil
}
