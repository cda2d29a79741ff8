package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ResourceMap is a nation's denormalized resource ledger, stored as JSONB.
// The engine clamps every value at zero before it is persisted.
type ResourceMap map[string]int64

// Clone returns a deep copy so engine math never mutates a shared snapshot.
func (m ResourceMap) Clone() ResourceMap {
	out := make(ResourceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Nation struct {
	bun.BaseModel `bun:"table:nations,alias:n"`

	ID           int64       `bun:"id,pk,autoincrement"`
	Name         string      `bun:"name,notnull,unique"`
	LeaderID     int64       `bun:"leader_id,nullzero"`
	Population   int64       `bun:"population,notnull,default:0"`
	Economy      int         `bun:"economy,notnull,default:50"`
	ArmyStrength int         `bun:"army_strength,notnull,default:20"`
	Stability    int         `bun:"stability,notnull,default:80"`
	Resources    ResourceMap `bun:"resources,type:jsonb"`
	IsLocked     bool        `bun:"is_locked,notnull,default:false"`

	// Bumped on every resource/stat write; repositories refuse stale writes.
	Version int64 `bun:"version,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// NewNation returns a nation with the starting stats every founded nation gets.
func NewNation(name string, leaderID int64) *Nation {
	return &Nation{
		Name:         name,
		LeaderID:     leaderID,
		Population:   1_000_000,
		Economy:      50,
		ArmyStrength: 20,
		Stability:    80,
		Resources: ResourceMap{
			"money":     5000,
			"food":      200,
			"metal":     50,
			"oil":       80,
			"energy":    100,
			"materials": 30,
		},
	}
}

// Clone returns a deep copy of the nation, including its resource map.
func (n *Nation) Clone() *Nation {
	c := *n
	c.Resources = n.Resources.Clone()
	return &c
}

// Resource returns the current amount of a resource, zero when absent.
func (n *Nation) Resource(kind string) int64 {
	return n.Resources[kind]
}
