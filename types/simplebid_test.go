package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daylightwarbler/vcg-auction/core"
	"github.com/daylightwarbler/vcg-auction/types"
)

func TestSimpleBid_Accessors(t *testing.T) {
	b := types.NewSimpleBid("alice", 10, map[string]uint64{"chair": 1})

	require.Equal(t, "alice", b.BidderID())
	require.Equal(t, types.Uint64(10), b.Valuation())
	require.Equal(t, map[string]uint64{"chair": 1}, b.Bundle())
}

func TestSimpleBid_ClearsAuction(t *testing.T) {
	// Two chairs for sale; Alice wants one for 5 or two for 7, Bob wants
	// one for 4. Alice takes one chair for free, Bob pays the 2 he cost
	// Alice in upgrade value.
	supply := core.Supply[string]{"chair": 2}
	bidGroups := [][]core.Bid[string, string, types.Uint64]{
		{
			types.NewSimpleBid("alice", 5, map[string]uint64{"chair": 1}),
			types.NewSimpleBid("alice", 7, map[string]uint64{"chair": 2}),
		},
		{
			types.NewSimpleBid("bob", 4, map[string]uint64{"chair": 1}),
		},
	}

	result, err := core.RunAuctionExclusive(supply, bidGroups, nil)
	require.NoError(t, err)

	require.Len(t, result.WinningBids, 2)
	require.Equal(t, "alice", result.WinningBids[0].BidderID())
	require.Equal(t, types.Uint64(5), result.WinningBids[0].Valuation())
	require.Equal(t, "bob", result.WinningBids[1].BidderID())

	require.Equal(t, []core.Payment[string, types.Uint64]{
		{Bidder: "alice", Amount: 0},
		{Bidder: "bob", Amount: 2},
	}, result.Payments)
}
