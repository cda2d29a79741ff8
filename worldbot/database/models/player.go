package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull,unique"`
	Username  string `bun:"username,notnull"`
	Role      string `bun:"role,notnull,default:'recruit'"`
	NationID  int64  `bun:"nation_id,nullzero"`
	Balance   int64  `bun:"balance,notnull,default:0"`

	// Zero value means the player has never worked.
	LastWorkTime time.Time `bun:"last_work_time,nullzero"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Clone returns a copy so engine math never mutates the repository snapshot.
func (p *Player) Clone() *Player {
	c := *p
	return &c
}
