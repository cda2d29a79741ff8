// Package quota computes rolling daily aggregates from the transaction log.
// Caps reset at the start of each UTC day.
package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
)

// DailyTotals is what an actor/nation has already consumed of today's caps.
type DailyTotals struct {
	Work       int64
	Produce    map[string]int64
	TradeValue int64
}

// ProducedOf returns today's cumulative production of one resource.
func (t DailyTotals) ProducedOf(resource string) int64 {
	if t.Produce == nil {
		return 0
	}
	return t.Produce[resource]
}

type Tracker struct {
	txs repositories.TransactionRepository
}

func NewTracker(txs repositories.TransactionRepository) *Tracker {
	return &Tracker{txs: txs}
}

// StartOfDay returns midnight UTC of the instant's day.
func StartOfDay(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Totals aggregates today's work income, per-resource production and absolute
// trade value for the given actor and/or nation. A zero playerID or nationID
// skips that filter.
//
// This never fails: on a store error it logs and returns all-zero totals, so
// one outage degrades to "no quota consumed" rather than blocking the game.
// This is a cooperative-economy guard, not a security boundary.
func (t *Tracker) Totals(ctx context.Context, playerID, nationID int64, now time.Time) DailyTotals {
	totals := DailyTotals{Produce: make(map[string]int64)}

	txs, err := t.txs.GetSince(ctx, StartOfDay(now), repositories.TransactionFilter{
		PlayerID: playerID,
		NationID: nationID,
	})
	if err != nil {
		slog.Warn("Quota scan failed, assuming empty day",
			slog.String("type", "econ"),
			slog.Int64("player_id", playerID),
			slog.Int64("nation_id", nationID),
			slog.Any("error", err))
		return totals
	}

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionWork:
			totals.Work += tx.Amount
		case models.TransactionProduce:
			totals.Produce[tx.Resource] += tx.Amount
		case models.TransactionTrade:
			v := tx.Value
			if v < 0 {
				v = -v
			}
			totals.TradeValue += v
		}
	}
	return totals
}
