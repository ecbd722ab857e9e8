// Package pricetier maps a paid amount to an access window. The mapping is
// table-driven so tiers can be extended without touching caller logic.
package pricetier

import "time"

// Tier is a fixed price-to-duration mapping.
type Tier struct {
	Amount   int64
	Duration time.Duration
	Service  string
}

// Table is an ordered set of tiers. The first tier is the shortest and acts
// as the fallback for unmatched amounts.
type Table []Tier

// Default is the production price table. Amounts are in the gateway's
// smallest currency unit.
var Default = Table{
	{Amount: 500, Duration: 24 * time.Hour, Service: "daily"},
	{Amount: 11000, Duration: 30 * 24 * time.Hour, Service: "monthly"},
	{Amount: 25000, Duration: 90 * 24 * time.Hour, Service: "quarterly"},
}

// Resolve returns the tier matching amount. Unmatched amounts resolve to the
// shortest tier rather than erroring: an unknown payment grants the minimum
// window instead of rejecting money the gateway already collected. Product
// has confirmed this fail-safe-short behavior.
func (t Table) Resolve(amount int64) Tier {
	for _, tier := range t {
		if tier.Amount == amount {
			return tier
		}
	}
	return t.fallback()
}

// ComputeExpiry returns paidOn plus the resolved tier's duration.
func (t Table) ComputeExpiry(amount int64, paidOn time.Time) time.Time {
	return paidOn.Add(t.Resolve(amount).Duration)
}

func (t Table) fallback() Tier {
	if len(t) == 0 {
		return Tier{Duration: 24 * time.Hour, Service: "daily"}
	}
	shortest := t[0]
	for _, tier := range t[1:] {
		if tier.Duration < shortest.Duration {
			shortest = tier
		}
	}
	return shortest
}
