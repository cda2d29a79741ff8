package engine

import (
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

const maxTaxRate = 50

// Tax sets the national tax rate: stability moves by a step function of the
// rate and the treasury collects revenue proportional to population. Tax is a
// discrete governance action, so it is neither rate-limited nor logged to the
// transaction ledger.
func Tax(nation *models.Nation, rank rules.Rank, rate int, r rules.Rules) Outcome {
	if rate < 0 || rate > maxTaxRate {
		return reject(RejectValidation, "Tax rate must be between 0%% and %d%%", maxTaxRate)
	}
	if !rules.MayPerform(rank, rules.ActionTax) {
		return reject(RejectPermission, "Only the chief of state can set taxes")
	}

	impact := rules.TaxStabilityImpact(rate)
	revenue := rules.TaxRevenue(nation.Population, rate)

	next := nation.Clone()
	next.Stability = clampStat(next.Stability + impact)
	next.Resources["money"] += revenue

	return applied(&Applied{
		Nation:  next,
		Summary: summaryf("Tax rate set to %d%%: +%d money, stability %+d%% (now %d%%)", rate, revenue, impact, next.Stability),
	})
}
