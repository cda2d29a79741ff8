package engine

import (
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// Trade swaps giveAmount of giveResource from the initiator against
// receiveAmount of receiveResource from the target. The trade value
// (giveAmount + receiveAmount) counts against the initiator's daily cap, and
// a fee is withheld from the initiator's money when money is what they give.
func Trade(initiator, target *models.Nation, rank rules.Rank, totals quota.DailyTotals,
	giveResource string, giveAmount int64, receiveResource string, receiveAmount int64, r rules.Rules) Outcome {

	if giveAmount <= 0 || receiveAmount <= 0 {
		return reject(RejectValidation, "Amounts must be positive")
	}
	if !rules.ValidResource(giveResource) || !rules.ValidResource(receiveResource) {
		return reject(RejectValidation, "Unknown resource kind")
	}
	if !rules.MayPerform(rank, rules.ActionCommerce) {
		return reject(RejectPermission, "Your rank cannot negotiate trades")
	}
	if initiator.ID == target.ID {
		return reject(RejectValidation, "You cannot trade with your own nation")
	}

	if have := initiator.Resource(giveResource); have < giveAmount {
		return reject(RejectInsufficient, "Not enough %s: need %d, have %d", giveResource, giveAmount, have)
	}
	if have := target.Resource(receiveResource); have < receiveAmount {
		return reject(RejectInsufficient, "%s does not have %d %s", target.Name, receiveAmount, receiveResource)
	}

	tradeValue := giveAmount + receiveAmount
	if cap := r.TradeDailyValueCap; cap > 0 && totals.TradeValue+tradeValue > cap {
		return reject(RejectQuota, "Daily trade value cap reached")
	}

	fee := TradeFee(giveAmount, r.TradeFeePercent)

	nextInitiator := initiator.Clone()
	nextTarget := target.Clone()

	nextInitiator.Resources[giveResource] -= giveAmount
	nextInitiator.Resources[receiveResource] += receiveAmount
	nextTarget.Resources[receiveResource] -= receiveAmount
	nextTarget.Resources[giveResource] += giveAmount

	if giveResource == string(rules.ResourceMoney) && fee > 0 {
		nextInitiator.Resources["money"] = clampMoney(nextInitiator.Resources["money"] - fee)
	}

	return applied(&Applied{
		Nation: nextInitiator,
		Target: nextTarget,
		Transaction: &models.Transaction{
			Type:           models.TransactionTrade,
			NationID:       initiator.ID,
			TargetNationID: target.ID,
			Give:           models.ResourceMap{giveResource: giveAmount},
			Receive:        models.ResourceMap{receiveResource: receiveAmount},
			Fee:            fee,
			Value:          tradeValue,
		},
		Summary: summaryf("Traded %d %s for %d %s with %s", giveAmount, giveResource, receiveAmount, receiveResource, target.Name),
	})
}

// TradeFee computes the brokerage fee on the given leg: a flat percentage,
// truncated, with a floor of 1 whenever the fee rate is positive.
func TradeFee(amount, feePercent int64) int64 {
	if feePercent <= 0 {
		return 0
	}
	if amount < 0 {
		amount = -amount
	}
	fee := amount * feePercent / 100
	if fee < 1 {
		fee = 1
	}
	return fee
}
