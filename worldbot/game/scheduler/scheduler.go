// Package scheduler drives the game's clock: the hourly macro-economic tick
// over every nation, the random world-event roll, and the daily ledger
// archive export.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/engine"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/services"
)

const (
	maxConcurrentTicks = 4
	passTimeout        = 5 * time.Minute
	archiveInterval    = 24 * time.Hour
)

type Scheduler struct {
	engine  *engine.Service
	nations repositories.NationRepository
	events  repositories.EventRepository
	txs     repositories.TransactionRepository
	archive *services.ArchiveService

	tickInterval  time.Duration
	eventInterval time.Duration

	sem      *semaphore.Weighted
	shutdown chan struct{}
	rng      *rand.Rand
	ticking  atomic.Bool
}

func New(
	eng *engine.Service,
	nations repositories.NationRepository,
	events repositories.EventRepository,
	txs repositories.TransactionRepository,
	r rules.Rules,
) *Scheduler {
	return &Scheduler{
		engine:        eng,
		nations:       nations,
		events:        events,
		txs:           txs,
		tickInterval:  r.TickInterval,
		eventInterval: r.EventInterval,
		sem:           semaphore.NewWeighted(maxConcurrentTicks),
		shutdown:      make(chan struct{}),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetArchive enables the daily ledger export.
func (s *Scheduler) SetArchive(a *services.ArchiveService) {
	s.archive = a
}

// Start launches the background loops. Call Stop to shut them down.
func (s *Scheduler) Start() {
	go s.loop(s.tickInterval, "tick", func(ctx context.Context) {
		if err := s.RunTick(ctx); err != nil {
			slog.Error("Tick pass failed",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	})
	go s.loop(s.eventInterval, "event", s.runRandomEvent)
	if s.archive != nil {
		go s.loop(archiveInterval, "archive", s.runArchive)
	}
	slog.Info("Game scheduler started",
		slog.String("type", "sys"),
		slog.Duration("tick_interval", s.tickInterval),
		slog.Duration("event_interval", s.eventInterval))
}

// Stop signals every loop to exit.
func (s *Scheduler) Stop() {
	close(s.shutdown)
}

func (s *Scheduler) loop(interval time.Duration, name string, fn func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
			fn(ctx)
			cancel()
		case <-s.shutdown:
			slog.Info("Scheduler loop stopped",
				slog.String("type", "sys"),
				slog.String("loop", name))
			return
		}
	}
}

// RunTick applies the periodic tick to every nation with bounded concurrency.
// Exported so the admin force-tick command can trigger an off-schedule pass.
func (s *Scheduler) RunTick(ctx context.Context) error {
	if !s.ticking.CompareAndSwap(false, true) {
		return fmt.Errorf("tick pass already in progress")
	}
	defer s.ticking.Store(false)

	start := time.Now()
	nations, err := s.nations.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list nations for tick: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	var failed atomic.Int32
	for _, nation := range nations {
		id := nation.ID
		if err := s.sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer s.sem.Release(1)
			if outcome := s.engine.TickNation(gctx, id); outcome.Rejected() {
				failed.Add(1)
				slog.Warn("Nation tick rejected",
					slog.String("type", "econ"),
					slog.Int64("nation_id", id),
					slog.String("reason", outcome.Rejection.Reason))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Tick pass completed",
		slog.String("type", "econ"),
		slog.Int("nations", len(nations)),
		slog.Int("failed", int(failed.Load())),
		slog.Duration("took", time.Since(start)))
	return nil
}

// runRandomEvent rolls one world event against one randomly chosen nation.
func (s *Scheduler) runRandomEvent(ctx context.Context) {
	nations, err := s.nations.GetAll(ctx)
	if err != nil {
		slog.Error("Failed to list nations for event roll",
			slog.String("type", "sys"),
			slog.Any("error", err))
		return
	}
	if len(nations) == 0 {
		return
	}

	nation := nations[s.rng.Intn(len(nations))]
	ev := rules.RandomEvent(s.rng)

	outcome := s.engine.ApplyWorldEvent(ctx, nation.ID, ev)
	if outcome.Rejected() {
		slog.Warn("World event rejected",
			slog.String("type", "econ"),
			slog.Int64("nation_id", nation.ID),
			slog.String("reason", outcome.Rejection.Reason))
		return
	}

	record := &models.GameEvent{
		Type:        ev.Type,
		Description: fmt.Sprintf("%s - %s", ev.Name, ev.Description),
		NationID:    nation.ID,
		Impact:      engine.EventImpact(ev),
	}
	if err := s.events.Append(ctx, record); err != nil {
		slog.Warn("Failed to record world event",
			slog.String("type", "db"),
			slog.Any("error", err))
	}

	slog.Info("World event applied",
		slog.String("type", "econ"),
		slog.String("event", ev.Type),
		slog.String("nation", nation.Name))
}

// runArchive exports yesterday's ledger slice to object storage.
func (s *Scheduler) runArchive(ctx context.Context) {
	today := quota.StartOfDay(time.Now())
	yesterday := today.Add(-24 * time.Hour)

	txs, err := s.txs.GetBetween(ctx, yesterday, today)
	if err != nil {
		slog.Error("Failed to read ledger slice for archive",
			slog.String("type", "db"),
			slog.Any("error", err))
		return
	}
	if len(txs) == 0 {
		return
	}

	if err := s.archive.UploadLedger(ctx, yesterday, txs); err != nil {
		slog.Error("Ledger archive upload failed",
			slog.String("type", "sys"),
			slog.Any("error", err))
		return
	}
	slog.Info("Ledger archive uploaded",
		slog.String("type", "sys"),
		slog.Time("day", yesterday),
		slog.Int("transactions", len(txs)))
}
