package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func TestBuildUnits_Success(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 10000

	out := BuildUnits(n, rules.RankDefenseMinister, "soldiers", 50, rules.Default())
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)

	a := out.Applied
	assert.Equal(t, int64(5000), a.Nation.Resource("money")) // 10000 - 50*100
	assert.Equal(t, 25, a.Nation.ArmyStrength)               // 20 + 50*10/100

	// The input snapshot must stay untouched.
	assert.Equal(t, int64(10000), n.Resource("money"))
	assert.Equal(t, 20, n.ArmyStrength)

	require.NotNil(t, a.Transaction)
	assert.Equal(t, models.TransactionBuild, a.Transaction.Type)
	assert.Equal(t, "soldiers", a.Transaction.Resource)
	assert.Equal(t, int64(50), a.Transaction.Amount)
	assert.Equal(t, int64(5000), a.Transaction.Value)
}

func TestBuildUnits_CountBounds(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 10_000_000

	for _, count := range []int64{0, -3, 1001} {
		out := BuildUnits(n, rules.RankChief, "soldiers", count, rules.Default())
		require.True(t, out.Rejected())
		assert.Equal(t, RejectValidation, out.Rejection.Code, "count %d", count)
	}
}

func TestBuildUnits_UnknownUnit(t *testing.T) {
	out := BuildUnits(testNation(), rules.RankChief, "catapults", 5, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectValidation, out.Rejection.Code)
}

func TestBuildUnits_PermissionDenied(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 100000

	out := BuildUnits(n, rules.RankCitizen, "soldiers", 1, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectPermission, out.Rejection.Code)
}

func TestBuildUnits_InsufficientMoney(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 1999 // one missile costs 2000

	out := BuildUnits(n, rules.RankChief, "missiles", 1, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectInsufficient, out.Rejection.Code)
}

func TestBuildUnits_ArmyStrengthCapped(t *testing.T) {
	n := testNation()
	n.ArmyStrength = 95
	n.Resources["money"] = 1_000_000

	out := BuildUnits(n, rules.RankChief, "aircraft", 100, rules.Default())
	require.False(t, out.Rejected())
	assert.Equal(t, 100, out.Applied.Nation.ArmyStrength)
}

func TestResolveBattle_StrongerSideWins(t *testing.T) {
	attacker := testNation()
	attacker.ArmyStrength = 100
	attacker.Economy = 100
	attacker.Stability = 100

	defender := testNation()
	defender.ID = 2
	defender.ArmyStrength = 5
	defender.Economy = 5
	defender.Stability = 5

	// Even the worst random roll (0.8) for the attacker beats the best
	// roll (1.2) for the defender at this power gap.
	for seed := int64(0); seed < 20; seed++ {
		result := ResolveBattle(attacker, defender, rand.New(rand.NewSource(seed)))
		assert.True(t, result.AttackerWon, "seed %d", seed)
		assert.Greater(t, result.AttackerPower, result.DefenderPower)
	}
}

func TestResolveBattle_DamageCappedAtTwenty(t *testing.T) {
	attacker := testNation()
	attacker.ArmyStrength = 100
	attacker.Economy = 100
	attacker.Stability = 100

	defender := testNation()
	defender.ID = 2
	defender.ArmyStrength = 0
	defender.Economy = 0
	defender.Stability = 0

	// Any gap above 200 power would yield damage > 20 without the cap,
	// but the gap here tops out at 120 so the cap only matters with the
	// multiplier; assert the invariant rather than an exact value.
	for seed := int64(0); seed < 50; seed++ {
		result := ResolveBattle(attacker, defender, rand.New(rand.NewSource(seed)))
		assert.LessOrEqual(t, result.Damage, 20, "seed %d", seed)
		assert.GreaterOrEqual(t, result.Damage, 0, "seed %d", seed)
	}
}

func TestResolveBattle_Deterministic(t *testing.T) {
	attacker := testNation()
	defender := testNation()
	defender.ID = 2
	defender.ArmyStrength = 60

	first := ResolveBattle(attacker, defender, rand.New(rand.NewSource(42)))
	second := ResolveBattle(attacker, defender, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestApplyWarDamage(t *testing.T) {
	n := testNation()
	n.Stability = 50
	n.Economy = 40
	n.ArmyStrength = 30
	n.Resources["money"] = 500
	n.Resources["food"] = 100

	next := ApplyWarDamage(n, 12)

	assert.Equal(t, 38, next.Stability)   // 50 - 12
	assert.Equal(t, 34, next.Economy)     // 40 - 12/2
	assert.Equal(t, 26, next.ArmyStrength) // 30 - 12/3
	assert.Equal(t, int64(380), next.Resource("money")) // 500 - 120
	assert.Equal(t, int64(0), next.Resource("food"))    // 100 - 120, floored

	// Input untouched.
	assert.Equal(t, 50, n.Stability)
	assert.Equal(t, int64(500), n.Resource("money"))
}

func TestApplyWarDamage_FloorsAtZero(t *testing.T) {
	n := testNation()
	n.Stability = 3
	n.Economy = 1
	n.ArmyStrength = 2
	for res := range n.Resources {
		n.Resources[res] = 10
	}

	next := ApplyWarDamage(n, 20)

	assert.Equal(t, 0, next.Stability)
	assert.Equal(t, 0, next.Economy)
	assert.Equal(t, 0, next.ArmyStrength)
	for res, amount := range next.Resources {
		assert.Equal(t, int64(0), amount, "resource %s", res)
	}
}
