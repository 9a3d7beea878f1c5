package core

import "errors"

var (
	// ErrMalformedBid reports a bid whose bundle requests a zero quantity
	// of a good, or a good absent from the supply. The auction does not
	// proceed with an inconsistent model.
	ErrMalformedBid = errors.New("vcg: malformed bid")

	// ErrNumericAnomaly reports a computed payment outside the range
	// [0, bidder's winning value]. Under standard VCG conditions this
	// cannot happen; it signals a violated precondition such as negative
	// valuations or a Bid implementation whose accessors are not stable.
	// The anomalous payment is surfaced rather than clamped so the caller
	// can detect the misuse.
	ErrNumericAnomaly = errors.New("vcg: payment outside [0, bid value]")
)
