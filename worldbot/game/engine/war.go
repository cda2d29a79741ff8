package engine

import (
	"math/rand"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// BattleResult summarizes one resolved attack.
type BattleResult struct {
	AttackerWon   bool
	Damage        int
	AttackerPower int
	DefenderPower int
}

// BuildUnits buys count units from the military catalog with nation money and
// converts their combined power into army strength (100 power = 1 point).
func BuildUnits(nation *models.Nation, rank rules.Rank, unitID string, count int64, r rules.Rules) Outcome {
	if count < 1 || count > 1000 {
		return reject(RejectValidation, "Unit count must be between 1 and 1000")
	}
	unit, ok := rules.MilitaryUnits[unitID]
	if !ok {
		return reject(RejectValidation, "Unknown unit type %q", unitID)
	}
	if !rules.MayPerform(rank, rules.ActionArmy) {
		return reject(RejectPermission, "Your rank cannot build army units")
	}

	cost := unit.Cost * count
	if have := nation.Resource("money"); have < cost {
		return reject(RejectInsufficient, "Not enough money: need %d, have %d", cost, have)
	}

	next := nation.Clone()
	next.Resources["money"] -= cost
	next.ArmyStrength = clampStat(next.ArmyStrength + int(unit.Power*count/100))

	return applied(&Applied{
		Nation: next,
		Transaction: &models.Transaction{
			Type:     models.TransactionBuild,
			NationID: nation.ID,
			Resource: unitID,
			Amount:   count,
			Value:    cost,
		},
		Summary: summaryf("Built %d %s for %d money, army strength now %d", count, unit.Name, cost, next.ArmyStrength),
	})
}

// ResolveBattle weighs both nations' army, economy and stability with a ±20%
// random factor. Damage is capped at 20 and scales with the power gap.
func ResolveBattle(attacker, defender *models.Nation, rng *rand.Rand) BattleResult {
	attackerPower := battlePower(attacker) * randomFactor(rng)
	defenderPower := battlePower(defender) * randomFactor(rng)

	result := BattleResult{
		AttackerPower: int(attackerPower),
		DefenderPower: int(defenderPower),
	}
	if attackerPower > defenderPower {
		result.AttackerWon = true
		result.Damage = battleDamage(attackerPower - defenderPower)
	} else {
		result.Damage = battleDamage(defenderPower - attackerPower)
	}
	return result
}

func battlePower(n *models.Nation) float64 {
	return float64(n.ArmyStrength)*0.4 + float64(n.Economy)*0.3 + float64(n.Stability)*0.3
}

func randomFactor(rng *rand.Rand) float64 {
	return 0.8 + rng.Float64()*0.4
}

func battleDamage(gap float64) int {
	damage := int(gap / 10)
	if damage > 20 {
		damage = 20
	}
	return damage
}

// ApplyWarDamage degrades the loser: stability by the full damage, economy by
// half, army by a third, and every resource by damage*10, all floored at zero.
func ApplyWarDamage(nation *models.Nation, damage int) *models.Nation {
	next := nation.Clone()
	next.Stability = clampStat(next.Stability - damage)
	next.Economy = clampStat(next.Economy - damage/2)
	next.ArmyStrength = clampStat(next.ArmyStrength - damage/3)
	for res, amount := range next.Resources {
		next.Resources[res] = clampMoney(amount - int64(damage)*10)
	}
	return next
}
