package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

type WarRepository interface {
	Create(ctx context.Context, war *models.War) error
	End(ctx context.Context, id int64, winner string, damage int) error
	GetActiveByNation(ctx context.Context, nationID int64) ([]*models.War, error)
}

type warRepository struct {
	db *bun.DB
}

func NewWarRepository(db *bun.DB) WarRepository {
	return &warRepository{db: db}
}

func (r *warRepository) Create(ctx context.Context, war *models.War) error {
	war.StartedAt = time.Now().UTC()
	_, err := r.db.NewInsert().Model(war).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create war: %w", err)
	}
	return nil
}

func (r *warRepository) End(ctx context.Context, id int64, winner string, damage int) error {
	_, err := r.db.NewUpdate().
		Model((*models.War)(nil)).
		Set("winner = ?", winner).
		Set("damage = ?", damage).
		Set("ended_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to end war: %w", err)
	}
	return nil
}

func (r *warRepository) GetActiveByNation(ctx context.Context, nationID int64) ([]*models.War, error) {
	var wars []*models.War
	err := r.db.NewSelect().
		Model(&wars).
		Where("(attacker_id = ? OR defender_id = ?)", nationID, nationID).
		Where("ended_at IS NULL").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active wars: %w", err)
	}
	return wars, nil
}
