package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func testPlayer(role string) *models.Player {
	return &models.Player{
		ID:        7,
		DiscordID: "42",
		Username:  "worker",
		Role:      role,
		NationID:  1,
	}
}

func TestWork_SalaryAndWithholding(t *testing.T) {
	p := testPlayer("citizen")
	n := testNation()
	now := time.Now()

	out := Work(p, n, quota.DailyTotals{}, now, rules.Default())
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)

	a := out.Applied
	// Base citizen salary 20, no wealth bonus; 15% withheld -> 3 tax, 17 net.
	assert.Equal(t, int64(17), a.Player.Balance)
	assert.Equal(t, now, a.Player.LastWorkTime)
	assert.Equal(t, int64(5003), a.Nation.Resource("money"))

	require.NotNil(t, a.Transaction)
	assert.Equal(t, int64(20), a.Transaction.Amount) // gross goes to the ledger
	assert.Equal(t, int64(3), a.Transaction.Fee)

	// Inputs untouched.
	assert.Equal(t, int64(0), p.Balance)
	assert.True(t, p.LastWorkTime.IsZero())
}

func TestWork_WealthBonus(t *testing.T) {
	p := testPlayer("chief")
	p.Balance = 10_000
	n := testNation()

	out := Work(p, n, quota.DailyTotals{}, time.Now(), rules.Default())
	require.False(t, out.Rejected())

	// 100 base + 10000/1000 bonus = 110 gross, 16 tax, 94 net.
	assert.Equal(t, int64(110), out.Applied.Transaction.Amount)
	assert.Equal(t, int64(16), out.Applied.Transaction.Fee)
	assert.Equal(t, int64(10_094), out.Applied.Player.Balance)
}

func TestWork_Cooldown(t *testing.T) {
	p := testPlayer("citizen")
	n := testNation()
	now := time.Now()
	p.LastWorkTime = now.Add(-2 * time.Hour)

	out := Work(p, n, quota.DailyTotals{}, now, rules.Default()) // 6h cooldown
	require.True(t, out.Rejected())
	assert.Equal(t, RejectCooldown, out.Rejection.Code)
	assert.Contains(t, out.Rejection.Reason, "4.0 more hours")

	// Exactly elapsed cooldown is allowed.
	p.LastWorkTime = now.Add(-6 * time.Hour)
	out = Work(p, n, quota.DailyTotals{}, now, rules.Default())
	assert.False(t, out.Rejected())
}

func TestWork_FirstShiftHasNoCooldown(t *testing.T) {
	p := testPlayer("citizen")
	out := Work(p, testNation(), quota.DailyTotals{}, time.Now(), rules.Default())
	assert.False(t, out.Rejected())
}

func TestWork_DailyCap(t *testing.T) {
	p := testPlayer("citizen")
	n := testNation()
	r := rules.Default() // cap 20000

	out := Work(p, n, quota.DailyTotals{Work: 19_990}, time.Now(), r)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectQuota, out.Rejection.Code)

	out = Work(p, n, quota.DailyTotals{Work: 19_980}, time.Now(), r)
	assert.False(t, out.Rejected())

	r.WorkDailyCap = 0
	out = Work(p, n, quota.DailyTotals{Work: 1_000_000}, time.Now(), r)
	assert.False(t, out.Rejected())
}

func TestWork_RecruitEarnsBaseWage(t *testing.T) {
	p := testPlayer("recruit")
	n := testNation()

	out := Work(p, n, quota.DailyTotals{}, time.Now(), rules.Default())
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)

	a := out.Applied
	// Base recruit salary 10; 15% withheld -> 1 tax, 9 net.
	assert.Equal(t, int64(9), a.Player.Balance)
	assert.Equal(t, int64(5001), a.Nation.Resource("money"))
	assert.Equal(t, int64(10), a.Transaction.Amount)
	assert.Equal(t, int64(1), a.Transaction.Fee)
}
