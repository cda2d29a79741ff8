package models

import (
	"time"

	"github.com/uptrace/bun"
)

// TransactionType discriminates ledger events.
type TransactionType string

const (
	TransactionProduce TransactionType = "produce"
	TransactionTrade   TransactionType = "trade"
	TransactionWork    TransactionType = "work"
	TransactionBuild   TransactionType = "build"
	TransactionTick    TransactionType = "tick"
	TransactionTax     TransactionType = "tax"
)

// Transaction is an append-only ledger event. It is the source of truth for
// rolling daily quotas and audit trails; the live balances on Nation and
// Player are denormalized projections of this log. Rows are never updated.
type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:tx"`

	ID             int64           `bun:"id,pk,autoincrement"`
	Type           TransactionType `bun:"type,notnull"`
	PlayerID       int64           `bun:"player_id,nullzero"`
	NationID       int64           `bun:"nation_id,notnull"`
	TargetNationID int64           `bun:"target_nation_id,nullzero"`

	Resource   string      `bun:"resource,nullzero"`
	Amount     int64       `bun:"amount,notnull,default:0"`
	Fee        int64       `bun:"fee,notnull,default:0"`
	Value      int64       `bun:"value,notnull,default:0"`
	CostEnergy int64       `bun:"cost_energy,notnull,default:0"`
	Give       ResourceMap `bun:"give,type:jsonb,nullzero"`
	Receive    ResourceMap `bun:"receive,type:jsonb,nullzero"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
