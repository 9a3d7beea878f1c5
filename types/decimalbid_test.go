package types_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/daylightwarbler/vcg-auction/core"
	"github.com/daylightwarbler/vcg-auction/types"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecimalBid_Accessors(t *testing.T) {
	b := types.NewDecimalBid("alice", dec("2.50"), map[string]uint64{"slot": 1})

	require.Equal(t, "alice", b.BidderID())
	require.True(t, b.Valuation().Equal(dec("2.5")))
	require.Equal(t, map[string]uint64{"slot": 1}, b.Bundle())
}

func TestDecimalBid_SecondPriceWithExactCents(t *testing.T) {
	// 2.50 vs 2.25 for one slot: the winner pays exactly 2.25, with no
	// float drift in the externality subtraction.
	supply := core.Supply[string]{"slot": 1}
	bids := []core.Bid[string, string, decimal.Decimal]{
		types.NewDecimalBid("alice", dec("2.50"), map[string]uint64{"slot": 1}),
		types.NewDecimalBid("bob", dec("2.25"), map[string]uint64{"slot": 1}),
	}

	result, err := core.RunAuction(supply, bids, nil)
	require.NoError(t, err)

	require.Len(t, result.WinningBids, 1)
	require.Equal(t, "alice", result.WinningBids[0].BidderID())

	require.Len(t, result.Payments, 1)
	require.Equal(t, "alice", result.Payments[0].Bidder)
	require.True(t, result.Payments[0].Amount.Equal(dec("2.25")))
}
