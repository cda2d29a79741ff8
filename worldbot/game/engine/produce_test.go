package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func testNation() *models.Nation {
	n := models.NewNation("Testland", 1)
	n.ID = 1
	return n
}

func TestProduce_Success(t *testing.T) {
	n := testNation()
	n.Resources["energy"] = 1000

	out := Produce(n, rules.RankEconomyMinister, quota.DailyTotals{}, "food", 100, rules.Default())
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)

	a := out.Applied
	assert.Equal(t, int64(300), a.Nation.Resource("food"))  // 200 starting + 100
	assert.Equal(t, int64(800), a.Nation.Resource("energy")) // 1000 - 100*2

	// The input snapshot must stay untouched.
	assert.Equal(t, int64(1000), n.Resource("energy"))
	assert.Equal(t, int64(200), n.Resource("food"))

	require.NotNil(t, a.Transaction)
	assert.Equal(t, models.TransactionProduce, a.Transaction.Type)
	assert.Equal(t, int64(100), a.Transaction.Amount)
	assert.Equal(t, int64(200), a.Transaction.CostEnergy)
}

func TestProduce_AmountBounds(t *testing.T) {
	n := testNation()
	r := rules.Default()

	for _, amount := range []int64{0, -5, 1001} {
		out := Produce(n, rules.RankChief, quota.DailyTotals{}, "food", amount, r)
		require.True(t, out.Rejected())
		assert.Equal(t, RejectValidation, out.Rejection.Code, "amount %d", amount)
	}

	n.Resources["energy"] = 5000
	out := Produce(n, rules.RankChief, quota.DailyTotals{}, "food", 1000, r)
	assert.False(t, out.Rejected())
}

func TestProduce_UnknownResource(t *testing.T) {
	out := Produce(testNation(), rules.RankChief, quota.DailyTotals{}, "plutonium", 10, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectValidation, out.Rejection.Code)
}

func TestProduce_PermissionDenied(t *testing.T) {
	out := Produce(testNation(), rules.RankCitizen, quota.DailyTotals{}, "food", 10, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectPermission, out.Rejection.Code)
}

func TestProduce_InsufficientEnergy(t *testing.T) {
	n := testNation()
	n.Resources["energy"] = 100

	// 100 materials needs 500 energy.
	out := Produce(n, rules.RankChief, quota.DailyTotals{}, "materials", 100, rules.Default())
	require.True(t, out.Rejected())
	assert.Equal(t, RejectInsufficient, out.Rejection.Code)
}

func TestProduce_DailyCap(t *testing.T) {
	n := testNation()
	n.Resources["energy"] = 100000
	r := rules.Default() // cap 2000 per resource per day

	totals := quota.DailyTotals{Produce: map[string]int64{"food": 1500}}

	out := Produce(n, rules.RankChief, totals, "food", 600, r)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectQuota, out.Rejection.Code)

	// Exactly reaching the cap is allowed.
	out = Produce(n, rules.RankChief, totals, "food", 500, r)
	assert.False(t, out.Rejected())

	// The cap is per resource: metal is unaffected by food totals.
	out = Produce(n, rules.RankChief, totals, "metal", 600, r)
	assert.False(t, out.Rejected())
}

func TestProduce_ZeroCapIsUnlimited(t *testing.T) {
	n := testNation()
	n.Resources["energy"] = 100000
	r := rules.Default()
	r.ProduceDailyCapPerResource = 0

	totals := quota.DailyTotals{Produce: map[string]int64{"food": 999999}}
	out := Produce(n, rules.RankChief, totals, "food", 1000, r)
	assert.False(t, out.Rejected())
}

func TestProduce_EnergyCostsEnergy(t *testing.T) {
	n := testNation()
	n.Resources["energy"] = 50

	out := Produce(n, rules.RankChief, quota.DailyTotals{}, "energy", 30, rules.Default())
	require.False(t, out.Rejected())
	// 50 - 30 cost + 30 produced
	assert.Equal(t, int64(50), out.Applied.Nation.Resource("energy"))
}
