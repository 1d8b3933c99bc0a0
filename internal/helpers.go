package internal

import (
	"fmt"
	"strings"

	"admin-dashboard/internal/types"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ParseAmount turns a formatted amount such as "$1,250.00" into a decimal
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountStr)
	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.ReplaceAll(strings.TrimPrefix(cleaned, "$"), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("parse amount %q: empty", amountStr)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// FormatAmount renders a decimal as dollars with thousands separators
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-$" + humanize.FormatFloat("#,###.##", rounded.Abs().InexactFloat64())
	}
	return "$" + humanize.FormatFloat("#,###.##", rounded.InexactFloat64())
}

// TotalAmount sums the amounts of the transactions with one of the given
// statuses, or of all transactions when no status is given. Unparseable
// amounts count as zero.
func TotalAmount(transactions []types.Transaction, statuses ...types.Status) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if len(statuses) > 0 && !hasStatus(statuses, tx.Status) {
			continue
		}
		amount, err := ParseAmount(tx.Amount)
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total
}

// AmountCents converts a formatted amount to integer cents
func AmountCents(amountStr string) (int64, error) {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return 0, err
	}
	return amount.Shift(2).Round(0).IntPart(), nil
}

func hasStatus(statuses []types.Status, status types.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
