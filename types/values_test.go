package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daylightwarbler/vcg-auction/types"
)

func TestUint64_Arithmetic(t *testing.T) {
	require.Equal(t, types.Uint64(12), types.Uint64(7).Add(5))
	require.Equal(t, types.Uint64(2), types.Uint64(7).Sub(5))

	require.Equal(t, -1, types.Uint64(3).Cmp(5))
	require.Equal(t, 1, types.Uint64(5).Cmp(3))
	require.Equal(t, 0, types.Uint64(5).Cmp(5))
}

func TestInt64_Arithmetic(t *testing.T) {
	require.Equal(t, types.Int64(-2), types.Int64(3).Sub(5))
	require.Equal(t, types.Int64(8), types.Int64(3).Add(5))

	require.Equal(t, -1, types.Int64(-1).Cmp(0))
	require.Equal(t, 1, types.Int64(4).Cmp(-4))
	require.Equal(t, 0, types.Int64(0).Cmp(0))
}

func TestFloat64_Arithmetic(t *testing.T) {
	require.Equal(t, types.Float64(2.5), types.Float64(1.25).Add(1.25))
	require.Equal(t, types.Float64(1.5), types.Float64(2.75).Sub(1.25))

	require.Equal(t, -1, types.Float64(1.1).Cmp(1.2))
	require.Equal(t, 1, types.Float64(1.2).Cmp(1.1))
	require.Equal(t, 0, types.Float64(1.1).Cmp(1.1))
}

func TestZeroValuesAreAdditiveIdentity(t *testing.T) {
	var u types.Uint64
	require.Equal(t, types.Uint64(9), u.Add(9))

	var i types.Int64
	require.Equal(t, types.Int64(-9), i.Add(-9))

	var f types.Float64
	require.Equal(t, types.Float64(9.5), f.Add(9.5))
}
