package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/worlddominion/worldbot/worldbot/cache"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// How often a version-conflicted write is recomputed before giving up.
const writeRetries = 3

// Service wires the pure action functions to the ledger store. It owns the
// read-validate-write cycle: per-nation locks serialize in-process mutations,
// the version check on the nation row catches everything else, and a
// conflicted write is recomputed from a fresh read.
type Service struct {
	nations repositories.NationRepository
	players repositories.PlayerRepository
	txs     repositories.TransactionRepository
	wars    repositories.WarRepository
	quota   *quota.Tracker
	rules   rules.Rules
	locks   *nationLocks
	cache   *cache.NationCache

	now func() time.Time
	rng *rand.Rand
}

func NewService(
	nations repositories.NationRepository,
	players repositories.PlayerRepository,
	txs repositories.TransactionRepository,
	wars repositories.WarRepository,
	tracker *quota.Tracker,
	r rules.Rules,
) *Service {
	return &Service{
		nations: nations,
		players: players,
		txs:     txs,
		wars:    wars,
		quota:   tracker,
		rules:   r,
		locks:   newNationLocks(),
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetCache attaches the read cache invalidated on every nation write.
func (s *Service) SetCache(c *cache.NationCache) {
	s.cache = c
}

// Rules returns the rule set the service was built with.
func (s *Service) Rules() rules.Rules {
	return s.rules
}

// Produce runs the produce action for the actor's nation.
func (s *Service) Produce(ctx context.Context, discordID, resource string, amount int64) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}
	rank := rules.ParseRank(player.Role)

	unlock := s.locks.acquire(player.NationID)
	defer unlock()

	outcome := s.mutateNation(ctx, player.NationID, func(nation *models.Nation) Outcome {
		totals := s.quota.Totals(ctx, player.ID, 0, s.now())
		return Produce(nation, rank, totals, resource, amount, s.rules)
	})
	if !outcome.Rejected() {
		outcome.Applied.Transaction.PlayerID = player.ID
		s.append(ctx, outcome.Applied.Transaction)
	}
	return outcome
}

// Trade swaps resources between the actor's nation and the named counterparty.
// The two rows are written one after the other; if the counterparty write
// fails the initiator write is compensated so no one-sided transfer survives.
func (s *Service) Trade(ctx context.Context, discordID, targetName, giveResource string, giveAmount int64, receiveResource string, receiveAmount int64) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}
	rank := rules.ParseRank(player.Role)

	target, err := s.nations.GetByName(ctx, targetName)
	if errors.Is(err, repositories.ErrNotFound) {
		return reject(RejectNotFound, "No nation named %q", targetName)
	}
	if err != nil {
		return s.storeFailure("trade", err)
	}

	unlock := s.locks.acquire(player.NationID, target.ID)
	defer unlock()

	for attempt := 0; attempt < writeRetries; attempt++ {
		initiator, err := s.nations.GetByID(ctx, player.NationID)
		if errors.Is(err, repositories.ErrNotFound) {
			return reject(RejectNotFound, "Your nation no longer exists")
		}
		if err != nil {
			return s.storeFailure("trade", err)
		}
		counterparty, err := s.nations.GetByID(ctx, target.ID)
		if errors.Is(err, repositories.ErrNotFound) {
			return reject(RejectNotFound, "No nation named %q", targetName)
		}
		if err != nil {
			return s.storeFailure("trade", err)
		}

		totals := s.quota.Totals(ctx, player.ID, 0, s.now())
		outcome := Trade(initiator, counterparty, rank, totals, giveResource, giveAmount, receiveResource, receiveAmount, s.rules)
		if outcome.Rejected() {
			return outcome
		}

		if err := s.nations.Update(ctx, outcome.Applied.Nation); err != nil {
			if errors.Is(err, repositories.ErrVersionConflict) {
				continue
			}
			return s.storeFailure("trade", err)
		}

		if err := s.nations.Update(ctx, outcome.Applied.Target); err != nil {
			// The initiator leg already landed: undo it before reporting.
			s.restoreNation(ctx, initiator)
			if errors.Is(err, repositories.ErrVersionConflict) {
				continue
			}
			return s.storeFailure("trade", err)
		}

		s.invalidate(initiator.ID)
		s.invalidate(counterparty.ID)
		outcome.Applied.Transaction.PlayerID = player.ID
		s.append(ctx, outcome.Applied.Transaction)
		return outcome
	}
	return s.storeFailure("trade", repositories.ErrVersionConflict)
}

// Tax sets the national tax rate for the actor's nation.
func (s *Service) Tax(ctx context.Context, discordID string, rate int) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}
	rank := rules.ParseRank(player.Role)

	unlock := s.locks.acquire(player.NationID)
	defer unlock()

	return s.mutateNation(ctx, player.NationID, func(nation *models.Nation) Outcome {
		return Tax(nation, rank, rate, s.rules)
	})
}

// Work pays the actor their salary and credits the withheld tax to their
// nation. The balance and cooldown land in one write; a failure after the
// nation write compensates the treasury credit.
func (s *Service) Work(ctx context.Context, discordID string) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}

	unlock := s.locks.acquire(player.NationID)
	defer unlock()

	var before *models.Nation
	outcome := s.mutateNation(ctx, player.NationID, func(nation *models.Nation) Outcome {
		before = nation
		totals := s.quota.Totals(ctx, player.ID, 0, s.now())
		return Work(player, nation, totals, s.now(), s.rules)
	})
	if outcome.Rejected() {
		return outcome
	}

	next := outcome.Applied.Player
	if err := s.players.UpdateAfterWork(ctx, next.ID, next.Balance, next.LastWorkTime); err != nil {
		s.restoreNation(ctx, before)
		return s.storeFailure("work", err)
	}

	s.append(ctx, outcome.Applied.Transaction)
	return outcome
}

// BuildArmy purchases military units for the actor's nation.
func (s *Service) BuildArmy(ctx context.Context, discordID, unitID string, count int64) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}
	rank := rules.ParseRank(player.Role)

	unlock := s.locks.acquire(player.NationID)
	defer unlock()

	outcome := s.mutateNation(ctx, player.NationID, func(nation *models.Nation) Outcome {
		return BuildUnits(nation, rank, unitID, count, s.rules)
	})
	if !outcome.Rejected() {
		outcome.Applied.Transaction.PlayerID = player.ID
		s.append(ctx, outcome.Applied.Transaction)
	}
	return outcome
}

// Attack resolves a battle against the named nation and applies war damage to
// the loser. The war is recorded for display either way.
func (s *Service) Attack(ctx context.Context, discordID, targetName string) Outcome {
	player, rej := s.loadActor(ctx, discordID)
	if rej != nil {
		return *rej
	}
	if player.NationID == 0 {
		return reject(RejectValidation, "You do not belong to a nation")
	}
	if !rules.MayPerform(rules.ParseRank(player.Role), rules.ActionAttack) {
		return reject(RejectPermission, "Your rank cannot order an attack")
	}

	target, err := s.nations.GetByName(ctx, targetName)
	if errors.Is(err, repositories.ErrNotFound) {
		return reject(RejectNotFound, "No nation named %q", targetName)
	}
	if err != nil {
		return s.storeFailure("attack", err)
	}
	if target.ID == player.NationID {
		return reject(RejectValidation, "You cannot attack your own nation")
	}

	unlock := s.locks.acquire(player.NationID, target.ID)
	defer unlock()

	attacker, err := s.nations.GetByID(ctx, player.NationID)
	if err != nil {
		return s.storeFailure("attack", err)
	}
	defender, err := s.nations.GetByID(ctx, target.ID)
	if err != nil {
		return s.storeFailure("attack", err)
	}

	result := ResolveBattle(attacker, defender, s.rng)

	loser := attacker
	winnerName := defender.Name
	if result.AttackerWon {
		loser = defender
		winnerName = attacker.Name
	}

	damaged := ApplyWarDamage(loser, result.Damage)
	if err := s.nations.Update(ctx, damaged); err != nil {
		return s.storeFailure("attack", err)
	}
	s.invalidate(loser.ID)

	war := &models.War{AttackerID: attacker.ID, DefenderID: defender.ID}
	if err := s.wars.Create(ctx, war); err != nil {
		slog.Warn("Failed to record war", slog.String("type", "econ"), slog.Any("error", err))
	} else if err := s.wars.End(ctx, war.ID, winnerName, result.Damage); err != nil {
		slog.Warn("Failed to close war record", slog.String("type", "econ"), slog.Any("error", err))
	}

	return applied(&Applied{
		Nation: damaged,
		Summary: fmt.Sprintf("%s won (power %d vs %d), %s took %d damage",
			winnerName, result.AttackerPower, result.DefenderPower, loser.Name, result.Damage),
	})
}

// TickNation applies the periodic macro-economics to one nation.
func (s *Service) TickNation(ctx context.Context, nationID int64) Outcome {
	unlock := s.locks.acquire(nationID)
	defer unlock()

	outcome := s.mutateNation(ctx, nationID, func(nation *models.Nation) Outcome {
		return PeriodicTick(nation, s.rules)
	})
	if !outcome.Rejected() {
		s.append(ctx, outcome.Applied.Transaction)
	}
	return outcome
}

// ApplyWorldEvent applies one event template to a nation's stats.
func (s *Service) ApplyWorldEvent(ctx context.Context, nationID int64, ev rules.EventTemplate) Outcome {
	unlock := s.locks.acquire(nationID)
	defer unlock()

	return s.mutateNation(ctx, nationID, func(nation *models.Nation) Outcome {
		return ApplyEvent(nation, ev)
	})
}

// mutateNation runs one read-validate-write cycle, recomputing from a fresh
// read when the version check catches a concurrent writer. The caller must
// hold the nation's lock.
func (s *Service) mutateNation(ctx context.Context, nationID int64, fn func(*models.Nation) Outcome) Outcome {
	for attempt := 0; attempt < writeRetries; attempt++ {
		nation, err := s.nations.GetByID(ctx, nationID)
		if errors.Is(err, repositories.ErrNotFound) {
			return reject(RejectNotFound, "Nation no longer exists")
		}
		if err != nil {
			return s.storeFailure("read nation", err)
		}

		outcome := fn(nation)
		if outcome.Rejected() {
			return outcome
		}

		if err := s.nations.Update(ctx, outcome.Applied.Nation); err != nil {
			if errors.Is(err, repositories.ErrVersionConflict) {
				continue
			}
			return s.storeFailure("write nation", err)
		}
		s.invalidate(nationID)
		return outcome
	}
	return s.storeFailure("write nation", repositories.ErrVersionConflict)
}

func (s *Service) loadActor(ctx context.Context, discordID string) (*models.Player, *Outcome) {
	player, err := s.players.GetByDiscordID(ctx, discordID)
	if errors.Is(err, repositories.ErrNotFound) {
		o := reject(RejectNotFound, "You are not registered yet, use /join first")
		return nil, &o
	}
	if err != nil {
		o := s.storeFailure("load player", err)
		return nil, &o
	}
	return player, nil
}

// restoreNation writes a nation's pre-action resource and stat values back,
// used as the compensating leg when a multi-row action half-applied.
func (s *Service) restoreNation(ctx context.Context, original *models.Nation) {
	current, err := s.nations.GetByID(ctx, original.ID)
	if err != nil {
		slog.Error("Compensating read failed, ledger may be one-sided",
			slog.String("type", "econ"),
			slog.Int64("nation_id", original.ID),
			slog.Any("error", err))
		return
	}
	current.Resources = original.Resources.Clone()
	current.Economy = original.Economy
	current.ArmyStrength = original.ArmyStrength
	current.Stability = original.Stability
	if err := s.nations.Update(ctx, current); err != nil {
		slog.Error("Compensating write failed, ledger may be one-sided",
			slog.String("type", "econ"),
			slog.Int64("nation_id", original.ID),
			slog.Any("error", err))
		return
	}
	s.invalidate(original.ID)
}

// append writes the ledger event. The balance write already landed, so a
// failure here only degrades quota accuracy; it is logged, not surfaced.
func (s *Service) append(ctx context.Context, tx *models.Transaction) {
	if tx == nil {
		return
	}
	if err := s.txs.Append(ctx, tx); err != nil {
		slog.Warn("Failed to append transaction",
			slog.String("type", "econ"),
			slog.String("tx_type", string(tx.Type)),
			slog.Int64("nation_id", tx.NationID),
			slog.Any("error", err))
	}
}

func (s *Service) invalidate(nationID int64) {
	if s.cache != nil {
		s.cache.Invalidate(nationID)
	}
}

func (s *Service) storeFailure(action string, err error) Outcome {
	slog.Error("Store failure during action",
		slog.String("type", "econ"),
		slog.String("action", action),
		slog.Any("error", err))
	return reject(RejectStore, "A storage error occurred, please try again later")
}
