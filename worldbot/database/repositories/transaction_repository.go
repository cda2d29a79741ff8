package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

// TransactionFilter narrows a log scan. Zero fields are ignored.
type TransactionFilter struct {
	PlayerID int64
	NationID int64
	Type     models.TransactionType
}

// TransactionRepository is the append-only ledger. There is deliberately no
// update or delete: the log is the audit trail and the quota source of truth.
type TransactionRepository interface {
	Append(ctx context.Context, tx *models.Transaction) error
	GetSince(ctx context.Context, since time.Time, filter TransactionFilter) ([]*models.Transaction, error)
	GetBetween(ctx context.Context, from, to time.Time) ([]*models.Transaction, error)
}

type transactionRepository struct {
	db *bun.DB
}

func NewTransactionRepository(db *bun.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Append(ctx context.Context, tx *models.Transaction) error {
	tx.CreatedAt = time.Now().UTC()
	_, err := r.db.NewInsert().Model(tx).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetSince(ctx context.Context, since time.Time, filter TransactionFilter) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	q := r.db.NewSelect().
		Model(&txs).
		Where("created_at >= ?", since)
	if filter.PlayerID != 0 {
		q = q.Where("player_id = ?", filter.PlayerID)
	}
	if filter.NationID != 0 {
		q = q.Where("nation_id = ?", filter.NationID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if err := q.Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) GetBetween(ctx context.Context, from, to time.Time) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.NewSelect().
		Model(&txs).
		Where("created_at >= ?", from).
		Where("created_at < ?", to).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction window: %w", err)
	}
	return txs, nil
}
