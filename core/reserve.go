package core

// EnforceReservePrices filters bids against per-bidder reserve prices.
// Returns the eligible bids and the rejected ones, each in input order.
// If a bidder has no reserve in the map, their bids pass without
// enforcement.
func EnforceReservePrices[ID comparable, G comparable, V Value[V]](
	bids []Bid[ID, G, V],
	reserves map[ID]V,
) (eligible, rejected []Bid[ID, G, V]) {
	eligible = make([]Bid[ID, G, V], 0, len(bids))

	for _, b := range bids {
		reserve, hasReserve := reserves[b.BidderID()]
		if !hasReserve || b.Valuation().Cmp(reserve) >= 0 {
			eligible = append(eligible, b)
		} else {
			rejected = append(rejected, b)
		}
	}

	return eligible, rejected
}
