package core_test

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/daylightwarbler/vcg-auction/core"
	"github.com/daylightwarbler/vcg-auction/types"
)

func TestEnforceReservePrices_FiltersBelowReserve(t *testing.T) {
	bids := []core.Bid[string, string, types.Uint64]{
		bid("alice", 10, map[string]uint64{"item": 1}),
		bid("bob", 4, map[string]uint64{"item": 1}),
	}
	reserves := map[string]types.Uint64{
		"alice": 8,
		"bob":   5,
	}

	eligible, rejected := core.EnforceReservePrices(bids, reserves)

	assert.Equal(t, 1, len(eligible))
	check.Equal(t, "alice", eligible[0].BidderID())
	assert.Equal(t, 1, len(rejected))
	check.Equal(t, "bob", rejected[0].BidderID())
}

func TestEnforceReservePrices_NoReservePasses(t *testing.T) {
	bids := []core.Bid[string, string, types.Uint64]{
		bid("alice", 1, map[string]uint64{"item": 1}),
	}

	eligible, rejected := core.EnforceReservePrices(bids, nil)

	check.Equal(t, 1, len(eligible))
	check.Equal(t, 0, len(rejected))
}

func TestEnforceReservePrices_ExactReserveIsEligible(t *testing.T) {
	bids := []core.Bid[string, string, types.Uint64]{
		bid("alice", 5, map[string]uint64{"item": 1}),
	}
	reserves := map[string]types.Uint64{"alice": 5}

	eligible, rejected := core.EnforceReservePrices(bids, reserves)

	check.Equal(t, 1, len(eligible))
	check.Equal(t, 0, len(rejected))
}

func TestRunAuctionWithReserves_RejectedBidsSurfaced(t *testing.T) {
	supply := core.Supply[string]{"item": 1}
	bids := []core.Bid[string, string, types.Uint64]{
		bid("alice", 10, map[string]uint64{"item": 1}),
		bid("bob", 6, map[string]uint64{"item": 1}),
	}
	reserves := map[string]types.Uint64{"bob": 7}

	result, err := core.RunAuctionWithReserves(supply, bids, reserves, nil)
	assert.NoError(t, err)

	check.Equal(t, []string{"alice"}, winners(result))
	assert.Equal(t, 1, len(result.ReserveRejected))
	check.Equal(t, "bob", result.ReserveRejected[0].BidderID())

	// Bob's bid was removed before the search, so Alice displaces nobody
	// and pays nothing.
	alicePays, ok := paymentOf(result, "alice")
	check.True(t, ok)
	check.Equal(t, types.Uint64(0), alicePays)
}
