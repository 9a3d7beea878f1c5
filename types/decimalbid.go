package types

import "github.com/shopspring/decimal"

// DecimalBid is a bid with an exact-decimal valuation for monetary values
// where floating-point drift is unacceptable. decimal.Decimal satisfies the
// core Value constraint directly, so DecimalBid satisfies
// core.Bid[string, string, decimal.Decimal] with no wrapper type.
type DecimalBid struct {
	Bidder string
	Value  decimal.Decimal
	Items  map[string]uint64
}

// NewDecimalBid builds a DecimalBid.
func NewDecimalBid(bidder string, value decimal.Decimal, items map[string]uint64) DecimalBid {
	return DecimalBid{
		Bidder: bidder,
		Value:  value,
		Items:  items,
	}
}

func (b DecimalBid) BidderID() string           { return b.Bidder }
func (b DecimalBid) Bundle() map[string]uint64  { return b.Items }
func (b DecimalBid) Valuation() decimal.Decimal { return b.Value }
