package builder

import "github.com/shopspring/decimal"

// PaymentDue is the amount one payment address is owed out of a bid value.
type PaymentDue struct {
	Address string
	Denom   string
	Amount  decimal.Decimal
}

// Owed returns the share of value owed to p, truncated to whole base units.
func (p Payment) Owed(value decimal.Decimal) decimal.Decimal {
	return value.Mul(decimal.NewFromFloat(p.Allocation)).Truncate(0)
}

// Split computes what each payment in denom is owed out of value. Payments in
// other denoms are skipped. Allocations are not checked to sum to one.
func (r *AuctionResult) Split(value decimal.Decimal, denom string) []PaymentDue {
	var due []PaymentDue
	for _, p := range r.Payments {
		if p.Denom != denom {
			continue
		}
		due = append(due, PaymentDue{
			Address: p.Address,
			Denom:   p.Denom,
			Amount:  p.Owed(value),
		})
	}
	return due
}

// Denoms lists the distinct payment denoms in the order they first appear.
func (r *AuctionResult) Denoms() []string {
	seen := make(map[string]struct{}, len(r.Payments))
	var out []string
	for _, p := range r.Payments {
		if _, ok := seen[p.Denom]; ok {
			continue
		}
		seen[p.Denom] = struct{}{}
		out = append(out, p.Denom)
	}
	return out
}
