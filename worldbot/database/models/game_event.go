package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StatImpact records the stat deltas a world event applied, stored as JSONB.
type StatImpact map[string]int

type GameEvent struct {
	bun.BaseModel `bun:"table:game_events,alias:ev"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Type        string     `bun:"type,notnull"`
	Description string     `bun:"description,notnull"`
	NationID    int64      `bun:"nation_id,notnull"`
	Impact      StatImpact `bun:"impact,type:jsonb"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}
