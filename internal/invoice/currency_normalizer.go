package invoice

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency all aggregates are expressed in
const BaseCurrency = "SAR"

// currencyIDR is quoted as units per SAR, so it divides instead of multiplies
const currencyIDR = "IDR"

const (
	// maxAmountLen bounds the submitted text before it reaches the decimal parser
	maxAmountLen = 64
	// maxExponent bounds the decimal exponent, so rounding never builds huge powers of ten
	maxExponent = 18
)

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)

	// maxAmount is the largest magnitude accepted for an amount or a rate
	maxAmount = decimal.New(1, 15)

	maxBase = decimal.NewFromInt(math.MaxInt64)
	minBase = decimal.NewFromInt(math.MinInt64)
)

// Convert converts amount in the given currency to the base currency.
// SAR is returned unchanged, IDR is divided by rate (0 when rate is 0),
// every other code is multiplied by rate.
func Convert(amount decimal.Decimal, currency string, rate decimal.Decimal) decimal.Decimal {
	switch currency {
	case BaseCurrency:
		return amount
	case currencyIDR:
		if rate.IsZero() {
			return zero
		}
		return amount.Div(rate)
	default:
		return amount.Mul(rate)
	}
}

// ParseAmount parses a free-text decimal. Blank, malformed or out-of-range
// input (magnitude above 10^15, exponent beyond ±18) yields fallback.
func ParseAmount(text string, fallback decimal.Decimal) decimal.Decimal {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxAmountLen {
		return fallback
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fallback
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return fallback
	}
	if d.Abs().GreaterThan(maxAmount) {
		return fallback
	}
	return d
}

// roundToInt rounds half to even, the rounding used for every base-currency
// integer. Results beyond int64 saturate instead of wrapping.
func roundToInt(d decimal.Decimal) int64 {
	r := d.RoundBank(0)
	switch {
	case r.GreaterThan(maxBase):
		return math.MaxInt64
	case r.LessThan(minBase):
		return math.MinInt64
	}
	return r.IntPart()
}

// addBase adds two base-currency integers, saturating at the int64 limits
func addBase(a, b int64) int64 {
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && s >= 0:
		return math.MinInt64
	}
	return s
}

// subBase subtracts two base-currency integers, saturating at the int64 limits
func subBase(a, b int64) int64 {
	if b == math.MinInt64 {
		if a >= 0 {
			return math.MaxInt64
		}
		return a - b
	}
	return addBase(a, -b)
}
