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

// ErrVersionConflict is returned when an optimistic-lock write loses the race.
var ErrVersionConflict = errors.New("nation was modified concurrently")

// ErrNotFound is returned for point reads that match no row.
var ErrNotFound = errors.New("not found")

type NationRepository interface {
	Create(ctx context.Context, nation *models.Nation) error
	GetByID(ctx context.Context, id int64) (*models.Nation, error)
	GetByName(ctx context.Context, name string) (*models.Nation, error)
	GetAll(ctx context.Context) ([]*models.Nation, error)
	GetUnlocked(ctx context.Context) ([]*models.Nation, error)
	Update(ctx context.Context, nation *models.Nation) error
	SetLocked(ctx context.Context, id int64, locked bool) error
	Delete(ctx context.Context, id int64) error
}

type nationRepository struct {
	db *bun.DB
}

func NewNationRepository(db *bun.DB) NationRepository {
	return &nationRepository{db: db}
}

func (r *nationRepository) Create(ctx context.Context, nation *models.Nation) error {
	nation.CreatedAt = time.Now()
	nation.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(nation).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create nation: %w", err)
	}
	return nil
}

func (r *nationRepository) GetByID(ctx context.Context, id int64) (*models.Nation, error) {
	nation := new(models.Nation)
	err := r.db.NewSelect().
		Model(nation).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get nation: %w", err)
	}
	return nation, nil
}

func (r *nationRepository) GetByName(ctx context.Context, name string) (*models.Nation, error) {
	nation := new(models.Nation)
	err := r.db.NewSelect().
		Model(nation).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get nation by name: %w", err)
	}
	return nation, nil
}

func (r *nationRepository) GetAll(ctx context.Context) ([]*models.Nation, error) {
	var nations []*models.Nation
	err := r.db.NewSelect().
		Model(&nations).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nations: %w", err)
	}
	return nations, nil
}

func (r *nationRepository) GetUnlocked(ctx context.Context) ([]*models.Nation, error) {
	var nations []*models.Nation
	err := r.db.NewSelect().
		Model(&nations).
		Where("is_locked = false").
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlocked nations: %w", err)
	}
	return nations, nil
}

// Update writes the nation's mutable fields guarded by its version counter.
// The write only lands when the row still carries the version the caller read;
// otherwise ErrVersionConflict is returned and the caller re-reads and retries.
func (r *nationRepository) Update(ctx context.Context, nation *models.Nation) error {
	readVersion := nation.Version
	nation.Version++
	nation.UpdatedAt = time.Now()

	res, err := r.db.NewUpdate().
		Model(nation).
		Column("name", "leader_id", "population", "economy", "army_strength",
			"stability", "resources", "is_locked", "version", "updated_at").
		Where("id = ?", nation.ID).
		Where("version = ?", readVersion).
		Exec(ctx)
	if err != nil {
		nation.Version = readVersion
		return fmt.Errorf("failed to update nation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check nation update: %w", err)
	}
	if rows == 0 {
		nation.Version = readVersion
		slog.Warn("Nation update lost optimistic-lock race",
			slog.String("type", "db"),
			slog.Int64("nation_id", nation.ID),
			slog.Int64("version", readVersion))
		return ErrVersionConflict
	}
	return nil
}

func (r *nationRepository) SetLocked(ctx context.Context, id int64, locked bool) error {
	_, err := r.db.NewUpdate().
		Model((*models.Nation)(nil)).
		Set("is_locked = ?", locked).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set nation lock: %w", err)
	}
	return nil
}

func (r *nationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.Nation)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete nation: %w", err)
	}
	return nil
}
