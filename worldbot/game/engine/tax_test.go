package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func TestTax_LowRateBoostsStability(t *testing.T) {
	n := testNation() // stability 80, population 1,000,000

	out := Tax(n, rules.RankChief, 10, rules.Default())
	require.False(t, out.Rejected())

	a := out.Applied
	assert.Equal(t, 85, a.Nation.Stability)
	// floor(1,000,000 * 0.01 * 10 / 100) = 1000
	assert.Equal(t, int64(6000), a.Nation.Resource("money"))
	// Tax is not a ledger event.
	assert.Nil(t, a.Transaction)
}

func TestTax_HighRateCostsStability(t *testing.T) {
	n := testNation()

	out := Tax(n, rules.RankChief, 50, rules.Default())
	require.False(t, out.Rejected())

	a := out.Applied
	assert.Equal(t, 60, a.Nation.Stability) // 80 - 20
	assert.Equal(t, int64(10000), a.Nation.Resource("money"))
}

func TestTax_StabilityClamped(t *testing.T) {
	n := testNation()
	n.Stability = 98

	out := Tax(n, rules.RankChief, 5, rules.Default())
	require.False(t, out.Rejected())
	assert.Equal(t, 100, out.Applied.Nation.Stability)

	n.Stability = 10
	out = Tax(n, rules.RankChief, 50, rules.Default())
	require.False(t, out.Rejected())
	assert.Equal(t, 0, out.Applied.Nation.Stability)
}

func TestTax_RateBounds(t *testing.T) {
	n := testNation()
	for _, rate := range []int{-1, 51, 100} {
		out := Tax(n, rules.RankChief, rate, rules.Default())
		require.True(t, out.Rejected(), "rate %d", rate)
		assert.Equal(t, RejectValidation, out.Rejection.Code)
	}
}

func TestTax_PermissionDenied(t *testing.T) {
	out := Tax(testNation(), rules.RankViceChief, 10, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectPermission, out.Rejection.Code)
}
