package models

import (
	"time"

	"github.com/uptrace/bun"
)

type War struct {
	bun.BaseModel `bun:"table:wars,alias:w"`

	ID         int64  `bun:"id,pk,autoincrement"`
	AttackerID int64  `bun:"attacker_id,notnull"`
	DefenderID int64  `bun:"defender_id,notnull"`
	Winner     string `bun:"winner,nullzero"`
	Damage     int    `bun:"damage,notnull,default:0"`

	StartedAt time.Time `bun:"started_at,notnull,default:current_timestamp"`
	EndedAt   time.Time `bun:"ended_at,nullzero"`
}
