package core

// RunAuction clears a VCG auction over a collection of independent bids:
// every bid may win alongside any other, subject only to the supply. Each
// bid is placed in its own exclusive group; see RunAuctionExclusive for
// mutually-exclusive bids.
//
// A nil randSource selects the first-discovered optimum when several
// allocations tie for maximal welfare, which makes the outcome fully
// reproducible. Pass CryptoRand (or any RandSource) for uniform random
// selection among the tied optima.
//
// An empty bid collection is not an error: the result is the empty
// allocation with no payments.
func RunAuction[ID comparable, G comparable, V Value[V]](
	supply Supply[G],
	bids []Bid[ID, G, V],
	randSource RandSource,
) (*AuctionResult[ID, G, V], error) {
	bidGroups := make([][]Bid[ID, G, V], len(bids))
	for i, b := range bids {
		bidGroups[i] = []Bid[ID, G, V]{b}
	}
	return RunAuctionExclusive(supply, bidGroups, randSource)
}

// RunAuctionWithReserves clears a VCG auction after excluding bids below
// their bidder's reserve price. Rejected bids are surfaced in the result's
// ReserveRejected field; bidders without a reserve entry are not filtered.
func RunAuctionWithReserves[ID comparable, G comparable, V Value[V]](
	supply Supply[G],
	bids []Bid[ID, G, V],
	reserves map[ID]V,
	randSource RandSource,
) (*AuctionResult[ID, G, V], error) {
	eligible, rejected := EnforceReservePrices(bids, reserves)

	result, err := RunAuction(supply, eligible, randSource)
	if err != nil {
		return nil, err
	}
	result.ReserveRejected = rejected
	return result, nil
}

// RunAuctionExclusive clears a VCG auction where each inner slice holds
// mutually-exclusive bids: at most one bid per group can be accepted, even
// when the supply could satisfy more. Bids in separate groups are
// independent, including bids by the same bidder.
//
// Processing flow:
//  1. Validate every bundle against the supply (malformed bids abort).
//  2. Search for the welfare-maximizing feasible allocation.
//  3. Resolve ties via randSource (nil means first-discovered optimum).
//  4. Charge each winning bidder the externality they impose, re-running
//     the search once per bidder with all of that bidder's bids removed.
func RunAuctionExclusive[ID comparable, G comparable, V Value[V]](
	supply Supply[G],
	bidGroups [][]Bid[ID, G, V],
	randSource RandSource,
) (*AuctionResult[ID, G, V], error) {
	engine, err := newSearchEngine(supply, bidGroups, randSource != nil)
	if err != nil {
		return nil, err
	}
	engine.run()

	chosen := engine.optima[resolveTie(len(engine.optima), randSource)]
	winning := engine.allocationBids(chosen)

	payments, err := calculatePayments(supply, bidGroups, winning, engine.best)
	if err != nil {
		return nil, err
	}

	return &AuctionResult[ID, G, V]{
		WinningBids: winning,
		Welfare:     engine.best,
		Payments:    payments,
	}, nil
}
