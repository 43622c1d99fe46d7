// Package costing computes extended and aggregate costs over a line-item
// snapshot. Everything here is a pure function of its input: no hidden
// state, deterministic for a given input order.
package costing

import (
	"costbook/internal/models"

	"github.com/shopspring/decimal"
)

// TotalCost returns the sum of total_price across the collection. The
// aggregate is total_price based, never price based: two rows of
// quantity 2 at price 5 and quantity 3 at price 10 total 40, not 15.
func TotalCost(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice)
	}
	return total
}

// CategoryTotal is one category's share of the grand total.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotals partitions total_price by normalized category in a
// single pass. Categories appear in first-encounter order, which follows
// the collection's insertion order rather than any view sort, so
// summation order (and therefore the result) is stable across re-sorts.
// Every row lands in exactly one bucket: the bucket sums add back up to
// TotalCost.
func CategoryTotals(items []models.LineItem) []CategoryTotal {
	index := make(map[string]int, len(items))
	totals := make([]CategoryTotal, 0)

	for i := range items {
		category := items[i].NormalizedCategory()

		pos, ok := index[category]
		if !ok {
			pos = len(totals)
			index[category] = pos
			totals = append(totals, CategoryTotal{Category: category, Total: decimal.Zero})
		}

		totals[pos].Total = totals[pos].Total.Add(items[i].TotalPrice)
	}

	return totals
}
