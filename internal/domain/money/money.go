// Package money implements the fixed-point currency amount used by every
// budget computation. Amounts are integer centavos; rounding only happens
// when a percentage is applied.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is an amount in minor currency units (centavos).
type Money int64

const Zero Money = 0

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// FromCents is a readability helper for literals.
func FromCents(c int64) Money { return Money(c) }

// FromDecimal converts a major-unit amount (reais) to Money, rounding half up.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.Mul(hundred).Round(0).IntPart())
}

func Add(a, b Money) Money { return a + b }

// Sub may return a negative amount.
func Sub(a, b Money) Money { return a - b }

// Sum adds every amount; an empty list is zero.
func Sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total += v
	}
	return total
}

// PercentageOf returns amount*percent/100 rounded to the nearest centavo,
// half up: PercentageOf(333, 50) == 167.
func PercentageOf(amount Money, percent decimal.Decimal) Money {
	raw := decimal.NewFromInt(int64(amount)).Mul(percent).Div(hundred)
	// floor(x + 0.5): half up for negative amounts as well.
	return Money(raw.Add(half).Floor().IntPart())
}

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 { return int64(m) }

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(hundred)
}

// String renders "1234.56" without locale grouping, as used in CSV exports.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Format renders a locale-aware display string, e.g. "R$ 1.234,56" for
// pt-BR. It is never used for arithmetic.
func Format(m Money, locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.BRL
	}
	p := message.NewPrinter(tag)
	f, _ := m.Decimal().Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(f, number.Scale(2)))
}

// ParseLenient converts user formatted input ("R$ 1.234,56", "1234.56",
// "1,234.56", "") into Money. Anything unparseable becomes zero, matching
// how form fields are coerced before reaching the pricing code.
func ParseLenient(s string) Money {
	d, ok := parseDecimal(s)
	if !ok {
		return Zero
	}
	return FromDecimal(d)
}

// ParsePercent parses "15", "15%", "12,5 %" into a decimal. Unparseable
// input becomes zero.
func ParsePercent(s string) decimal.Decimal {
	d, ok := parseDecimal(strings.ReplaceAll(s, "%", ""))
	if !ok {
		return decimal.Zero
	}
	return d
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") || (strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")) {
		neg = true
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := normalizeSeparators(b.String())
	if clean == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// normalizeSeparators decides which of '.' and ',' is the decimal mark. The
// last separator wins when both appear; a lone separator followed by exactly
// three digits is a thousands separator.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 != 3 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastDot >= 0:
		if strings.Count(s, ".") == 1 && len(s)-lastDot-1 != 3 {
			return s
		}
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}
