package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

type EventRepository interface {
	Append(ctx context.Context, event *models.GameEvent) error
	GetRecent(ctx context.Context, nationID int64, limit int) ([]*models.GameEvent, error)
}

type eventRepository struct {
	db *bun.DB
}

func NewEventRepository(db *bun.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(ctx context.Context, event *models.GameEvent) error {
	event.CreatedAt = time.Now().UTC()
	_, err := r.db.NewInsert().Model(event).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetRecent(ctx context.Context, nationID int64, limit int) ([]*models.GameEvent, error) {
	var events []*models.GameEvent
	q := r.db.NewSelect().Model(&events)
	if nationID != 0 {
		q = q.Where("nation_id = ?", nationID)
	}
	if err := q.Order("created_at DESC").Limit(limit).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
