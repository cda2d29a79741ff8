package engine

import (
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

const (
	minProduceAmount = 1
	maxProduceAmount = 1000
)

// Produce converts nation energy into amount units of a resource. The daily
// per-resource cap is enforced against today's produce transactions.
func Produce(nation *models.Nation, rank rules.Rank, totals quota.DailyTotals, resource string, amount int64, r rules.Rules) Outcome {
	if amount < minProduceAmount || amount > maxProduceAmount {
		return reject(RejectValidation, "Amount must be between %d and %d", minProduceAmount, maxProduceAmount)
	}
	if !rules.ValidResource(resource) {
		return reject(RejectValidation, "Unknown resource %q", resource)
	}
	if !rules.MayPerform(rank, rules.ActionProduce) {
		return reject(RejectPermission, "Your rank cannot produce resources")
	}

	if cap := r.ProduceDailyCapPerResource; cap > 0 {
		if produced := totals.ProducedOf(resource); produced+amount > cap {
			return reject(RejectQuota, "Daily production cap reached for %s, %d remaining", resource, max64(0, cap-produced))
		}
	}

	energyCost := r.ProductionEnergyCost(rules.Resource(resource), amount)
	if available := nation.Resource("energy"); available < energyCost {
		return reject(RejectInsufficient, "Not enough energy: need %d, have %d", energyCost, available)
	}

	next := nation.Clone()
	next.Resources["energy"] -= energyCost
	next.Resources[resource] += amount

	return applied(&Applied{
		Nation: next,
		Transaction: &models.Transaction{
			Type:       models.TransactionProduce,
			NationID:   nation.ID,
			Resource:   resource,
			Amount:     amount,
			CostEnergy: energyCost,
		},
		Summary: summaryf("Produced %d %s for %d energy", amount, resource, energyCost),
	})
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
