package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatPercent renders a percentage rounded to whole units, e.g. "80%".
func FormatPercent(p decimal.Decimal) string {
	return FormatWithPrecision(p, 0) + "%"
}
