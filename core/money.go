package core

import (
	"math/big"
)

// Money is an exact, arbitrary-precision monetary quantity. It wraps
// math/big.Rat so equal splits (e.g. dividing a cost of 500 three ways)
// stay exact instead of accumulating floating-point drift across rounds.
//
// The zero Money value reads as 0 in every method; the usual constructors
// are MoneyFromInt, MoneyZero, or an arithmetic method on an existing Money.
type Money struct {
	r *big.Rat
}

// MoneyZero returns the additive identity.
func MoneyZero() Money {
	return Money{r: new(big.Rat)}
}

// MoneyFromInt builds a Money from a whole-unit integer amount (cost,
// bid, or budget inputs are always whole units per the data model).
func MoneyFromInt(units int64) Money {
	return Money{r: new(big.Rat).SetInt64(units)}
}

// ratOf returns m's underlying rational, treating a zero-value Money as 0.
func (m Money) ratOf() *big.Rat {
	if m.r == nil {
		return new(big.Rat)
	}
	return m.r
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{r: new(big.Rat).Add(m.ratOf(), other.ratOf())}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{r: new(big.Rat).Sub(m.ratOf(), other.ratOf())}
}

// Cmp returns -1, 0, or +1 as m is less than, equal to, or greater than
// other. All ordering decisions in this module (tie-breaking, affordability,
// effective-vote-count comparison) go through Cmp rather than floating
// point, so results never depend on platform rounding behavior.
func (m Money) Cmp(other Money) int {
	return m.ratOf().Cmp(other.ratOf())
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.ratOf().Sign() == 0
}

// IsNegative reports whether m is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.ratOf().Sign() < 0
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.ratOf().Sign() > 0
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if m.Cmp(other) <= 0 {
		return m
	}
	return other
}

// Max returns the larger of m and other.
func (m Money) Max(other Money) Money {
	if m.Cmp(other) >= 0 {
		return m
	}
	return other
}

// DivInt returns m / n exactly, n > 0. Used to split a cost evenly across
// n remaining supporters.
func (m Money) DivInt(n int) Money {
	return Money{r: new(big.Rat).Quo(m.ratOf(), new(big.Rat).SetInt64(int64(n)))}
}

// FloorDivInt returns floor(m / n) as a whole-unit Money, n > 0. Used by
// the outer escalation loop to round the starting per-voter budget down to
// a clean integer (spec §4.5.1: "B_per_voter = floor(B_total / N_voters)").
func (m Money) FloorDivInt(n int) Money {
	num := m.ratOf().Num()
	den := new(big.Int).Mul(m.ratOf().Denom(), big.NewInt(int64(n)))
	quo := new(big.Int).Div(num, den) // big.Int.Div is Euclidean: floor for a positive divisor
	return Money{r: new(big.Rat).SetInt(quo)}
}

// MulInt returns m * n exactly.
func (m Money) MulInt(n int) Money {
	return Money{r: new(big.Rat).Mul(m.ratOf(), new(big.Rat).SetInt64(int64(n)))}
}

// Quo returns m / other exactly. other must be non-zero.
func (m Money) Quo(other Money) Money {
	return Money{r: new(big.Rat).Quo(m.ratOf(), other.ratOf())}
}

// String renders m as a decimal string rounded to six decimal places (e.g.
// "166.666667" for 500/3). Not used for comparisons.
func (m Money) String() string {
	return m.ratOf().FloatString(6)
}

// RatString renders m as an exact "numerator/denominator" string, useful in
// test failure messages where FloatString's truncation would hide the
// exact value under test.
func (m Money) RatString() string {
	return m.ratOf().RatString()
}
