package migration

import "time"

// MongoCountry mirrors a country document in the legacy deployment.
type MongoCountry struct {
	ID         interface{}      `bson:"_id"`
	Name       string           `bson:"name"`
	LeaderID   string           `bson:"leader_id"`
	Population int64            `bson:"population"`
	Economy    int              `bson:"economy"`
	Army       int              `bson:"army_strength"`
	Stability  int              `bson:"stability"`
	Resources  map[string]int64 `bson:"resources"`
	IsLocked   bool             `bson:"is_locked"`
	CreatedAt  time.Time        `bson:"created_at"`
}

// MongoPlayer mirrors a player document in the legacy deployment.
type MongoPlayer struct {
	ID        interface{} `bson:"_id"`
	DiscordID string      `bson:"discord_id"`
	Username  string      `bson:"username"`
	Role      string      `bson:"role"`
	Country   string      `bson:"country_name"`
	Balance   int64       `bson:"balance"`
	LastWork  time.Time   `bson:"last_work_time"`
	CreatedAt time.Time   `bson:"created_at"`
}

// TableStats tracks per-table import counters.
type TableStats struct {
	Read     int
	Inserted int
	Skipped  int
	Errors   int
}

// MigrationStats aggregates the whole run.
type MigrationStats struct {
	Tables    map[string]*TableStats
	StartTime time.Time
	EndTime   time.Time
}

func (s *MigrationStats) table(name string) *TableStats {
	if s.Tables == nil {
		s.Tables = make(map[string]*TableStats)
	}
	t, ok := s.Tables[name]
	if !ok {
		t = &TableStats{}
		s.Tables[name] = t
	}
	return t
}
