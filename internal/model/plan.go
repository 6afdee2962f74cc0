package model

// Plan identifies a membership plan from the fixed price list.
type Plan string

const (
	PlanMonthly   Plan = "Monthly Plan"
	PlanQuarterly Plan = "Quarterly Plan"
	PlanYearly    Plan = "Yearly Plan"
)

// planPrices maps each plan to its price in opaque integer units.
var planPrices = map[Plan]int64{
	PlanMonthly:   500,
	PlanQuarterly: 1200,
	PlanYearly:    4000,
}

// Price returns the fixed price for the plan, or false when the plan
// is not part of the price list.
func (p Plan) Price() (int64, bool) {
	price, ok := planPrices[p]
	return price, ok
}
