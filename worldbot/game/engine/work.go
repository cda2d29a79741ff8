package engine

import (
	"time"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// Work pays the player a rank-based salary with a wealth bonus, withholds the
// income tax share into the nation treasury, and arms the cooldown. The gross
// salary counts against the daily work cap.
func Work(player *models.Player, nation *models.Nation, totals quota.DailyTotals, now time.Time, r rules.Rules) Outcome {
	rank := rules.ParseRank(player.Role)
	if !rules.MayPerform(rank, rules.ActionWork) {
		return reject(RejectPermission, "You are not allowed to work")
	}

	if !player.LastWorkTime.IsZero() {
		if elapsed := now.Sub(player.LastWorkTime); elapsed < r.WorkCooldown {
			hoursLeft := (r.WorkCooldown - elapsed).Hours()
			return reject(RejectCooldown, "You need to rest for %.1f more hours before working again", hoursLeft)
		}
	}

	salary := r.Salary(rank) + player.Balance/1000
	if cap := r.WorkDailyCap; cap > 0 && totals.Work+salary > cap {
		return reject(RejectQuota, "Daily work cap reached")
	}

	taxAmount := salary * r.WorkTaxPercent / 100
	net := salary - taxAmount

	nextPlayer := player.Clone()
	nextPlayer.Balance += net
	nextPlayer.LastWorkTime = now

	nextNation := nation.Clone()
	nextNation.Resources["money"] += taxAmount

	return applied(&Applied{
		Nation: nextNation,
		Player: nextPlayer,
		Transaction: &models.Transaction{
			Type:     models.TransactionWork,
			PlayerID: player.ID,
			NationID: nation.ID,
			Amount:   salary,
			Fee:      taxAmount,
		},
		Summary: summaryf("Earned %d money (%d withheld as tax), new balance %d", net, taxAmount, nextPlayer.Balance),
	})
}
