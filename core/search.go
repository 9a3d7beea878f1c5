package core

import (
	"fmt"
	"sort"
)

// searchBid is one decision point in the allocation search.
type searchBid[ID comparable, G comparable, V Value[V]] struct {
	bid    Bid[ID, G, V]
	group  int      // exclusive-group index; at most one bid per group wins
	orig   int      // position in the caller's input, for result ordering
	demand []uint64 // requested quantity per good, parallel to engine goods
}

// searchEngine holds the state of one exhaustive allocation search. A
// dedicated engine struct keeps the hot-path state explicit and makes the
// recursion cheap: every explore step touches only slice indexing and the
// value type's Add/Sub/Cmp.
type searchEngine[ID comparable, G comparable, V Value[V]] struct {
	bids      []searchBid[ID, G, V] // sorted by descending valuation
	remaining []uint64              // remaining supply per good, mutated along the path
	suffix    []V                   // suffix[i]: optimistic welfare of bids[i:]

	groupTaken []bool
	accepted   []int // indices into bids of the current path
	welfare    V     // running welfare of the current path

	// collectTies retains every allocation tying the incumbent so a
	// randomized tie-break can choose among them. When false the engine
	// keeps only the first-discovered optimum and prunes tied branches.
	collectTies bool

	haveBest bool
	best     V
	optima   [][]int // accepted index sets achieving the best welfare
}

// newSearchEngine validates the model and prepares the decision sequence.
// Bids are flattened out of their exclusive groups and sorted by descending
// valuation: a strong incumbent early makes the suffix bound cut more
// branches. The stable sort keeps the caller's order among equal valuations,
// which is what makes deterministic tie-breaking reproducible.
func newSearchEngine[ID comparable, G comparable, V Value[V]](
	supply Supply[G],
	bidGroups [][]Bid[ID, G, V],
	collectTies bool,
) (*searchEngine[ID, G, V], error) {
	remaining := make([]uint64, 0, len(supply))
	index := make(map[G]int, len(supply))
	for good, qty := range supply {
		index[good] = len(remaining)
		remaining = append(remaining, qty)
	}

	var bids []searchBid[ID, G, V]
	orig := 0
	for groupIdx, group := range bidGroups {
		for _, b := range group {
			demand := make([]uint64, len(remaining))
			for good, qty := range b.Bundle() {
				if qty == 0 {
					return nil, fmt.Errorf("%w: bidder %v requests zero quantity of %v",
						ErrMalformedBid, b.BidderID(), good)
				}
				pos, ok := index[good]
				if !ok {
					return nil, fmt.Errorf("%w: bidder %v requests %v, which is not in the supply",
						ErrMalformedBid, b.BidderID(), good)
				}
				demand[pos] += qty
			}
			bids = append(bids, searchBid[ID, G, V]{
				bid:    b,
				group:  groupIdx,
				orig:   orig,
				demand: demand,
			})
			orig++
		}
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].bid.Valuation().Cmp(bids[j].bid.Valuation()) > 0
	})

	// Suffix sums of the remaining valuations form the admissible upper
	// bound: no completion of a partial allocation can beat the current
	// welfare plus suffix[i]. A negative valuation never belongs to an
	// optimal allocation, so it must not loosen the bound either.
	var zero V
	suffix := make([]V, len(bids)+1)
	suffix[len(bids)] = zero
	for i := len(bids) - 1; i >= 0; i-- {
		v := bids[i].bid.Valuation()
		if v.Cmp(zero) < 0 {
			v = zero
		}
		suffix[i] = suffix[i+1].Add(v)
	}

	return &searchEngine[ID, G, V]{
		bids:        bids,
		remaining:   remaining,
		suffix:      suffix,
		groupTaken:  make([]bool, len(bidGroups)),
		collectTies: collectTies,
	}, nil
}

// run explores every feasible subset of bids and records the optimum. The
// empty allocation is always feasible, so after run returns optima holds at
// least one entry.
func (e *searchEngine[ID, G, V]) run() {
	e.explore(0)
}

func (e *searchEngine[ID, G, V]) explore(i int) {
	if i == len(e.bids) {
		e.record()
		return
	}
	if e.haveBest {
		// Upper-bound cut: even accepting every remaining bid cannot
		// beat the incumbent. When ties are collected the comparison
		// is strict, so branches that can still tie survive.
		bound := e.welfare.Add(e.suffix[i]).Cmp(e.best)
		if bound < 0 || (!e.collectTies && bound == 0) {
			return
		}
	}

	b := &e.bids[i]
	if !e.groupTaken[b.group] && e.fits(b) {
		e.include(b)
		e.accepted = append(e.accepted, i)
		e.explore(i + 1)
		e.accepted = e.accepted[:len(e.accepted)-1]
		e.exclude(b)
	}
	e.explore(i + 1)
}

// fits reports whether the bid's full bundle is available. Bundles are
// all-or-nothing: a partial grant is never considered.
func (e *searchEngine[ID, G, V]) fits(b *searchBid[ID, G, V]) bool {
	for pos, qty := range b.demand {
		if qty > e.remaining[pos] {
			return false
		}
	}
	return true
}

func (e *searchEngine[ID, G, V]) include(b *searchBid[ID, G, V]) {
	for pos, qty := range b.demand {
		e.remaining[pos] -= qty
	}
	e.groupTaken[b.group] = true
	e.welfare = e.welfare.Add(b.bid.Valuation())
}

func (e *searchEngine[ID, G, V]) exclude(b *searchBid[ID, G, V]) {
	for pos, qty := range b.demand {
		e.remaining[pos] += qty
	}
	e.groupTaken[b.group] = false
	e.welfare = e.welfare.Sub(b.bid.Valuation())
}

// record registers the current complete allocation as a candidate optimum.
func (e *searchEngine[ID, G, V]) record() {
	if e.haveBest {
		switch e.welfare.Cmp(e.best) {
		case -1:
			return
		case 0:
			if !e.collectTies {
				return
			}
			e.optima = append(e.optima, append([]int(nil), e.accepted...))
			return
		}
	}
	e.haveBest = true
	e.best = e.welfare
	e.optima = append(e.optima[:0], append([]int(nil), e.accepted...))
}

// allocationBids returns the accepted bids of one optimum in input order.
func (e *searchEngine[ID, G, V]) allocationBids(accepted []int) []Bid[ID, G, V] {
	picked := make([]searchBid[ID, G, V], len(accepted))
	for i, idx := range accepted {
		picked[i] = e.bids[idx]
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].orig < picked[j].orig })

	out := make([]Bid[ID, G, V], len(picked))
	for i, sb := range picked {
		out[i] = sb.bid
	}
	return out
}
