package costing

import "github.com/shopspring/decimal"

// palette is the fixed slice-color cycle for the category chart. With
// more categories than colors the palette repeats by index, which keeps
// coloring deterministic run to run.
var palette = []string{
	"#FF6384",
	"#36A2EB",
	"#FFCE56",
	"#4BC0C0",
	"#9966FF",
	"#FF9F40",
	"#FF5733",
}

// ChartDataset is the chart-ready projection of a category aggregate:
// parallel label/value/percentage/color vectors ordered like the input.
type ChartDataset struct {
	Labels      []string          `json:"labels"`
	Values      []decimal.Decimal `json:"values"`
	Percentages []decimal.Decimal `json:"percentages"`
	Colors      []string          `json:"colors"`
}

// IsEmpty reports whether there is anything to render.
func (d *ChartDataset) IsEmpty() bool {
	return len(d.Labels) == 0
}

// BuildChartDataset projects category totals into a renderable dataset.
// Percentages are value/total*100 rounded to two decimals; when the
// grand total is zero every percentage is defined as zero rather than
// letting a division produce NaN. An empty aggregate yields an empty
// dataset, which callers treat as "nothing to visualize".
func BuildChartDataset(totals []CategoryTotal) ChartDataset {
	dataset := ChartDataset{
		Labels:      make([]string, 0, len(totals)),
		Values:      make([]decimal.Decimal, 0, len(totals)),
		Percentages: make([]decimal.Decimal, 0, len(totals)),
		Colors:      make([]string, 0, len(totals)),
	}

	if len(totals) == 0 {
		return dataset
	}

	grandTotal := decimal.Zero
	for i := range totals {
		grandTotal = grandTotal.Add(totals[i].Total)
	}

	hundred := decimal.NewFromInt(100)

	for i := range totals {
		percentage := decimal.Zero
		if !grandTotal.IsZero() {
			percentage = totals[i].Total.Mul(hundred).Div(grandTotal).Round(2)
		}

		dataset.Labels = append(dataset.Labels, totals[i].Category)
		dataset.Values = append(dataset.Values, totals[i].Total)
		dataset.Percentages = append(dataset.Percentages, percentage)
		dataset.Colors = append(dataset.Colors, palette[i%len(palette)])
	}

	return dataset
}
