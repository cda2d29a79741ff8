package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error)
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	GetByNation(ctx context.Context, nationID int64) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	UpdateAfterWork(ctx context.Context, id int64, balance int64, workedAt time.Time) error
	ClearNation(ctx context.Context, nationID int64) error
}

type playerRepository struct {
	db *bun.DB
}

func NewPlayerRepository(db *bun.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	if player.Role == "" {
		player.Role = "recruit"
	}
	_, err := r.db.NewInsert().Model(player).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *playerRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error) {
	player := new(models.Player)
	err := r.db.NewSelect().
		Model(player).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		slog.Error("Database error when getting player",
			slog.String("type", "db"),
			slog.String("operation", "GetByDiscordID"),
			slog.String("discord_id", discordID),
			slog.Any("error", err))
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	player := new(models.Player)
	err := r.db.NewSelect().
		Model(player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *playerRepository) GetByNation(ctx context.Context, nationID int64) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.NewSelect().
		Model(&players).
		Where("nation_id = ?", nationID).
		Order("role ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nation players: %w", err)
	}
	return players, nil
}

func (r *playerRepository) Update(ctx context.Context, player *models.Player) error {
	player.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(player).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

// UpdateAfterWork writes the new balance and cooldown timestamp together so a
// crash between the two cannot hand out free salary resets.
func (r *playerRepository) UpdateAfterWork(ctx context.Context, id int64, balance int64, workedAt time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("balance = ?", balance).
		Set("last_work_time = ?", workedAt).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player after work: %w", err)
	}
	return nil
}

// ClearNation detaches every member of a nation, used by the admin purge.
func (r *playerRepository) ClearNation(ctx context.Context, nationID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("nation_id = NULL").
		Set("role = 'recruit'").
		Set("updated_at = ?", time.Now()).
		Where("nation_id = ?", nationID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear nation members: %w", err)
	}
	return nil
}
