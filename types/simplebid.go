package types

// SimpleBid is a minimal bid representation using string identifiers for
// bidders and goods, an unsigned integer valuation, and unsigned integer
// quantities. It satisfies core.Bid[string, string, Uint64].
type SimpleBid struct {
	Bidder string
	Value  Uint64
	Items  map[string]uint64
}

// NewSimpleBid builds a SimpleBid from plain values.
func NewSimpleBid(bidder string, value uint64, items map[string]uint64) SimpleBid {
	return SimpleBid{
		Bidder: bidder,
		Value:  Uint64(value),
		Items:  items,
	}
}

func (b SimpleBid) BidderID() string          { return b.Bidder }
func (b SimpleBid) Bundle() map[string]uint64 { return b.Items }
func (b SimpleBid) Valuation() Uint64         { return b.Value }
