package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func TestPeriodicTick_OrderOfOperations(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 10_000
	n.ArmyStrength = 20
	r := rules.Default() // 1% interest, 1% inflation, 50/strength maintenance

	out := PeriodicTick(n, r)
	require.False(t, out.Rejected())

	// 10000 +100 interest = 10100, -101 inflation (1% of post-interest) = 9999,
	// -1000 maintenance = 8999.
	assert.Equal(t, int64(8999), out.Applied.Nation.Resource("money"))

	tx := out.Applied.Transaction
	require.NotNil(t, tx)
	assert.Equal(t, int64(1000), tx.Amount)  // maintenance actually debited
	assert.Equal(t, int64(-1001), tx.Value)  // net money delta
}

func TestPeriodicTick_MoneyNeverGoesNegative(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 100
	n.ArmyStrength = 1000 // 50000 maintenance due

	out := PeriodicTick(n, rules.Default())
	require.False(t, out.Rejected())
	assert.Equal(t, int64(0), out.Applied.Nation.Resource("money"))

	// Only what was available is recorded as debited.
	assert.Equal(t, int64(100), out.Applied.Transaction.Amount)
}

func TestPeriodicTick_BrokeNationIsANoop(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 0
	n.ArmyStrength = 0

	out := PeriodicTick(n, rules.Default())
	require.False(t, out.Rejected())
	assert.Equal(t, int64(0), out.Applied.Nation.Resource("money"))
	assert.Equal(t, int64(0), out.Applied.Transaction.Value)
}

func TestPeriodicTick_DoesNotMutateInput(t *testing.T) {
	n := testNation()
	n.Resources["money"] = 10_000

	_ = PeriodicTick(n, rules.Default())
	assert.Equal(t, int64(10_000), n.Resource("money"))
}
