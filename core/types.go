package core

// Value is the numeric capability required of bid valuations: ordering plus
// addition and subtraction closed over the same type. The zero value of V
// must be the additive identity. decimal.Decimal satisfies Value directly;
// wrappers for built-in numeric types live in the types package.
//
// Floating-point valuations make tie detection and optimality comparisons
// approximate; callers who need stable ties should use an exact type.
type Value[V any] interface {
	Add(V) V
	Sub(V) V
	// Cmp returns -1, 0, or 1 when the receiver is less than, equal to,
	// or greater than the argument.
	Cmp(V) int
}

// Bid is the capability the engine requires from any bid representation.
// The engine never inspects a bid beyond these three accessors, all of which
// must return the same answer every time they are called during one run.
type Bid[ID comparable, G comparable, V Value[V]] interface {
	// BidderID returns the identity of the bidder placing this bid.
	BidderID() ID

	// Bundle returns the requested goods and quantities. Quantities must
	// be positive and every good must appear in the supply. The bid is
	// all-or-nothing: it wins only if the full bundle is granted.
	Bundle() map[G]uint64

	// Valuation returns the bidder's declared value for the full bundle.
	Valuation() V
}

// Supply maps each good to the quantity available for one auction run.
type Supply[G comparable] map[G]uint64

// Payment records the externality charge for one winning bidder.
type Payment[ID comparable, V any] struct {
	Bidder ID
	Amount V
}

// AuctionResult contains the complete outcome of clearing one auction.
type AuctionResult[ID comparable, G comparable, V Value[V]] struct {
	// WinningBids are the accepted bids, in the caller's input order.
	// Empty when no bid fits the supply.
	WinningBids []Bid[ID, G, V]

	// Welfare is the total valuation of the winning bids.
	Welfare V

	// Payments holds one entry per distinct winning bidder, ordered by
	// first appearance in WinningBids. Losing bidders never appear.
	Payments []Payment[ID, V]

	// ReserveRejected contains bids excluded before the search for
	// missing their bidder's reserve price, when reserves are in use.
	ReserveRejected []Bid[ID, G, V]
}
