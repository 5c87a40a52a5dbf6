package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageOf(t *testing.T) {
	cases := []struct {
		name    string
		amount  Money
		percent string
		want    Money
	}{
		{"half rounds up", 333, "50", 167},
		{"exact", 100000, "15", 15000},
		{"tax", 100000, "5", 5000},
		{"fee", 100000, "2", 2000},
		{"below half rounds down", 101, "10", 10},
		{"fractional percent", 1000, "12.5", 125},
		{"zero percent", 98765, "0", 0},
		{"negative amount half up", -333, "50", -166},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PercentageOf(tc.amount, decimal.RequireFromString(tc.percent)))
		})
	}
}

func TestAddSub(t *testing.T) {
	assert.Equal(t, Money(150), Add(100, 50))
	assert.Equal(t, Money(-50), Sub(100, 150))
	assert.Equal(t, Money(0), Sum())
	assert.Equal(t, Money(6), Sum(1, 2, 3))
}

func TestParseLenient(t *testing.T) {
	cases := map[string]Money{
		"R$ 1.234,56":     123456,
		"1234.56":         123456,
		"1,234.56":        123456,
		"1.234":           123400,
		"10,5":            1050,
		"10.50":           1050,
		"-R$ 20,00":       -2000,
		"(15,00)":         -1500,
		"":                0,
		"abc":             0,
		"R$ 1.000.000,00": 100000000,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLenient(in), "input %q", in)
	}
}

func TestParsePercent(t *testing.T) {
	assert.True(t, ParsePercent("15%").Equal(decimal.NewFromInt(15)))
	assert.True(t, ParsePercent("12,5 %").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ParsePercent("n/a").IsZero())
}

func TestFormat(t *testing.T) {
	require.Equal(t, "1234.56", Money(123456).String())
	require.Equal(t, "-0.50", Money(-50).String())

	br := Format(123456, "pt-BR")
	assert.Contains(t, br, "R$")
	assert.Contains(t, br, "1.234,56")

	assert.Contains(t, Format(-2000, "pt-BR"), "-")
	assert.Contains(t, Format(123456, "not a locale"), "R$")

	us := Format(123456, "en-US")
	assert.Contains(t, us, "1,234.56")
	assert.NotContains(t, us, "R$")
}
