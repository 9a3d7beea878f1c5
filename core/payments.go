package core

import "fmt"

// calculatePayments charges each distinct winning bidder the externality
// they impose on everyone else:
//
//	payment = W(-i) - (W - value_i)
//
// where W is the welfare of the chosen allocation, value_i the sum of the
// bidder's winning bids, and W(-i) the optimal welfare over the bid set
// with every bid of bidder i removed. W - value_i is what the other winners
// actually realize; W(-i) is what they could have realized without i.
//
// Each W(-i) needs one full re-search on a strictly smaller instance, which
// benefits from the same pruning as the main search. Ties are irrelevant
// there since only the welfare is consumed.
func calculatePayments[ID comparable, G comparable, V Value[V]](
	supply Supply[G],
	bidGroups [][]Bid[ID, G, V],
	winning []Bid[ID, G, V],
	welfare V,
) ([]Payment[ID, V], error) {
	payments := make([]Payment[ID, V], 0, len(winning))
	charged := make(map[ID]bool, len(winning))

	for _, winner := range winning {
		bidder := winner.BidderID()
		if charged[bidder] {
			// A bidder with several independent winning bids is
			// charged once, over their combined value.
			continue
		}
		charged[bidder] = true

		var bidderBids []Bid[ID, G, V]
		for _, b := range winning {
			if b.BidderID() == bidder {
				bidderBids = append(bidderBids, b)
			}
		}
		bidderValue := TotalWelfare(bidderBids)
		othersRealized := welfare.Sub(bidderValue)

		withoutBidder := excludeBidder(bidGroups, bidder)
		engine, err := newSearchEngine(supply, withoutBidder, false)
		if err != nil {
			return nil, err
		}
		engine.run()
		othersAlone := engine.best

		// Compare before subtracting: on unsigned value types a
		// negative payment would wrap around instead of surfacing.
		if othersAlone.Cmp(othersRealized) < 0 {
			return nil, fmt.Errorf("%w: negative payment for bidder %v",
				ErrNumericAnomaly, bidder)
		}
		payment := othersAlone.Sub(othersRealized)
		if payment.Cmp(bidderValue) > 0 {
			return nil, fmt.Errorf("%w: bidder %v owes %v against a winning value of %v",
				ErrNumericAnomaly, bidder, payment, bidderValue)
		}

		payments = append(payments, Payment[ID, V]{Bidder: bidder, Amount: payment})
	}

	return payments, nil
}

// excludeBidder removes every bid placed by the given bidder from every
// group. Groups left empty are dropped.
func excludeBidder[ID comparable, G comparable, V Value[V]](
	bidGroups [][]Bid[ID, G, V],
	bidder ID,
) [][]Bid[ID, G, V] {
	result := make([][]Bid[ID, G, V], 0, len(bidGroups))
	for _, group := range bidGroups {
		kept := make([]Bid[ID, G, V], 0, len(group))
		for _, b := range group {
			if b.BidderID() != bidder {
				kept = append(kept, b)
			}
		}
		if len(kept) > 0 {
			result = append(result, kept)
		}
	}
	return result
}
