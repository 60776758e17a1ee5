// Package currencyutils provides money parsing and display formatting for
// open-balance values found in AR exports.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseAmount parses a raw balance cell into a decimal. It strips currency
// symbols, thousands separators and surrounding parentheses (accounting
// negative notation). Empty or unparsable input returns ok=false; callers
// treat that as the not-a-number sentinel, never as zero.
func ParseAmount(amountStr string) (decimal.Decimal, bool) {
	s := StandardizeAmount(amountStr)
	if s == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		log.WithField("value", amountStr).Debug("Unparsable amount, treating as NaN")
		return decimal.Zero, false
	}

	return amount, true
}

// StandardizeAmount converts formats like "$1,234.56", "(150.00)" or
// "USD 200" into a string decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)

	// Accounting notation: (150.00) means -150.00
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.NewReplacer("$", "", ",", "", "USD", "", " ", "").Replace(s)

	if negative && s != "" {
		s = "-" + s
	}
	return s
}

// FormatUSD renders an amount as "$1,234.56" with thousands separators,
// matching the format used in statements and the summary workbook.
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return fmt.Sprintf("%s$%s%s", sign, b.String(), fracPart)
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsZero checks if an amount is zero
func IsZero(amount decimal.Decimal) bool {
	return amount.Equal(decimal.Zero)
}
