package engine

import (
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// PeriodicTick applies the hourly macro-economics to one nation, in this fixed
// order: interest credit, inflation debit, army maintenance debit. Money is
// clamped at zero after each debit. This is the only engine action with no
// permission gate: it is system-initiated.
func PeriodicTick(nation *models.Nation, r rules.Rules) Outcome {
	next := nation.Clone()
	money := next.Resources["money"]

	interest := money * r.InterestPercent / 100
	money += interest

	inflation := money * r.InflationPercent / 100
	money = clampMoney(money - inflation)

	maintenance := int64(next.ArmyStrength) * r.MaintenancePerStrength
	debited := maintenance
	if debited > money {
		debited = money
	}
	money = clampMoney(money - maintenance)

	next.Resources["money"] = money

	return applied(&Applied{
		Nation: next,
		Transaction: &models.Transaction{
			Type:     models.TransactionTick,
			NationID: nation.ID,
			Amount:   debited,
			Value:    money - nation.Resources["money"],
		},
		Summary: summaryf("Tick: +%d interest, -%d inflation, -%d maintenance", interest, inflation, debited),
	})
}
