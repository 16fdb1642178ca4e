package reservation

import "github.com/shopspring/decimal"

// PriceCalculator prices one interval for the requesting user. Implementations are
// bound to a resolved pricing rule before the factory runs.
type PriceCalculator interface {
	PriceFor(slot Interval) decimal.Decimal
}

// FreeCalculator prices everything at zero.
type FreeCalculator struct{}

func (FreeCalculator) PriceFor(Interval) decimal.Decimal {
	return decimal.Zero
}
