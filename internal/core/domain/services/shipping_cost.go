package services

import (
	"shiporders/internal/core/domain/model/pack"

	"github.com/shopspring/decimal"
)

var ouncesPerPound = decimal.NewFromInt(pack.OuncesPerPound)

// CostLine is one costed order: the package weight and the rate of the
// provider carrying it. Orders without a provider never become cost lines.
type CostLine struct {
	WeightOz     int
	CostPerPound decimal.Decimal
}

// OrderCost computes the shipping cost of a single order:
// (weight in ounces / 16) x cost per pound. Division by 16 is exact in
// decimal, so no rounding error accumulates.
func OrderCost(weightOz int, costPerPound decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(weightOz)).Div(ouncesPerPound).Mul(costPerPound)
}

// TotalCost sums the cost of all lines. A job with no costed orders
// totals zero.
func TotalCost(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(OrderCost(line.WeightOz, line.CostPerPound))
	}
	return total
}
