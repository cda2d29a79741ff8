package engine

import (
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// ApplyEvent perturbs a nation's stats with one world-event template. Every
// affected stat is clamped to [0,100]; resources are never touched and no
// ledger event is produced (world events are recorded separately for display).
func ApplyEvent(nation *models.Nation, ev rules.EventTemplate) Outcome {
	next := nation.Clone()
	next.Economy = clampStat(next.Economy + ev.Economy)
	next.Stability = clampStat(next.Stability + ev.Stability)
	next.ArmyStrength = clampStat(next.ArmyStrength + ev.Army)

	return applied(&Applied{
		Nation:  next,
		Summary: summaryf("%s: %s", ev.Name, ev.Description),
	})
}

// EventImpact converts a template into the impact map stored on GameEvent.
func EventImpact(ev rules.EventTemplate) models.StatImpact {
	impact := models.StatImpact{}
	if ev.Economy != 0 {
		impact["economy"] = ev.Economy
	}
	if ev.Stability != 0 {
		impact["stability"] = ev.Stability
	}
	if ev.Army != 0 {
		impact["army_strength"] = ev.Army
	}
	return impact
}
