// Package core computes the outcome of a Vickrey-Clarke-Groves (VCG)
// sealed-bid auction: the welfare-maximizing feasible allocation of a limited
// supply of goods, and the payment each winner owes, which is the harm their
// participation causes the other bidders.
//
// The engine is generic over the bid representation (the Bid interface) and
// over the valuation type (the Value constraint), so integer, decimal, and
// floating-point valuations all work against the same search code. Clearing
// is exact: the search enumerates feasible bid subsets with backtracking and
// an admissible upper-bound cut, which keeps small instances fast without
// ever changing the result. The search space is exponential in the bid
// count, so this package is meant for instances with few bids, not for
// large-scale clearing.
//
// # Bid groups
//
// RunAuctionExclusive accepts bids grouped into mutually-exclusive sets: at
// most one bid per group can win. Groups let a bidder express a demand
// curve, e.g. one chair for 5 or two chairs for 7, but never both:
//
//	[
//	    [ (Alice, 5, {chair: 1}), (Alice, 7, {chair: 2}) ],
//	    [ (Bob, 4, {chair: 1}) ],
//	]
//
// Bids in separate groups are independent even when placed by the same
// bidder; a bidder winning several independent bids is charged a single
// payment over their combined value. RunAuction is the common case where
// every bid stands alone.
package core
