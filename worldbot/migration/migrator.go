package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

// Migrator imports nations and players from the game's legacy MongoDB
// deployment into Postgres. It is a one-shot tool: run it once against an
// empty schema, then retire the old database.
type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	collNames map[string]string
	stats     MigrationStats

	// nation name -> new Postgres id, filled while importing countries
	nationIDs map[string]int64
	// legacy discord id -> new player id
	playerIDs map[string]int64
}

func NewMigrator(pgDB *bun.DB) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		batchSize: 500,
		collNames: map[string]string{
			"countries": "countries",
			"players":   "players",
		},
		nationIDs: make(map[string]int64),
		playerIDs: make(map[string]int64),
	}
}

// UseMongo enables direct-from-Mongo migration mode.
func (m *Migrator) UseMongo(client *mongo.Client, dbName string) {
	if client != nil && dbName != "" {
		m.mongoDB = client.Database(dbName)
	}
}

// SetCollectionName overrides the legacy collection name for a given kind.
func (m *Migrator) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

// MigrateAll imports countries first, then players, preserving the
// leader and membership links between them.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	if m.mongoDB == nil {
		return fmt.Errorf("mongoDB not configured; call UseMongo first")
	}

	m.stats.StartTime = time.Now()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"countries", m.migrateCountries},
		{"players", m.migratePlayers},
		{"leaders", m.linkLeaders},
	}

	for _, step := range steps {
		slog.Info("Starting migration step",
			slog.String("type", "db"),
			slog.String("step", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", step.name, err)
		}
	}

	m.stats.EndTime = time.Now()
	m.logFinalStats()
	return nil
}

func (m *Migrator) migrateCountries(ctx context.Context) error {
	col := m.mongoDB.Collection(m.collNames["countries"])
	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query countries: %w", err)
	}
	defer cur.Close(ctx)

	stats := m.stats.table("nations")
	for cur.Next(ctx) {
		var mc MongoCountry
		if err := cur.Decode(&mc); err != nil {
			stats.Errors++
			continue
		}
		stats.Read++

		if mc.Name == "" {
			stats.Skipped++
			continue
		}

		nation := &models.Nation{
			Name:         mc.Name,
			Population:   mc.Population,
			Economy:      clamp(mc.Economy),
			ArmyStrength: mc.Army,
			Stability:    clamp(mc.Stability),
			Resources:    normalizeResources(mc.Resources),
			IsLocked:     mc.IsLocked,
			CreatedAt:    orNow(mc.CreatedAt),
			UpdatedAt:    time.Now(),
		}

		_, err := m.pgDB.NewInsert().
			Model(nation).
			On("CONFLICT (name) DO NOTHING").
			Exec(ctx)
		if err != nil {
			stats.Errors++
			slog.Error("Failed to insert nation",
				slog.String("type", "db"),
				slog.String("nation", mc.Name),
				slog.Any("error", err))
			continue
		}
		if nation.ID == 0 {
			stats.Skipped++
			continue
		}
		m.nationIDs[mc.Name] = nation.ID
		stats.Inserted++
	}
	return cur.Err()
}

func (m *Migrator) migratePlayers(ctx context.Context) error {
	col := m.mongoDB.Collection(m.collNames["players"])
	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query players: %w", err)
	}
	defer cur.Close(ctx)

	stats := m.stats.table("players")
	for cur.Next(ctx) {
		var mp MongoPlayer
		if err := cur.Decode(&mp); err != nil {
			stats.Errors++
			continue
		}
		stats.Read++

		if mp.DiscordID == "" {
			stats.Skipped++
			continue
		}

		player := &models.Player{
			DiscordID:    mp.DiscordID,
			Username:     mp.Username,
			Role:         rules.ParseRank(mp.Role).String(),
			NationID:     m.nationIDs[mp.Country],
			Balance:      mp.Balance,
			LastWorkTime: mp.LastWork,
			CreatedAt:    orNow(mp.CreatedAt),
			UpdatedAt:    time.Now(),
		}

		_, err := m.pgDB.NewInsert().
			Model(player).
			On("CONFLICT (discord_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			stats.Errors++
			slog.Error("Failed to insert player",
				slog.String("type", "db"),
				slog.String("discord_id", mp.DiscordID),
				slog.Any("error", err))
			continue
		}
		if player.ID == 0 {
			stats.Skipped++
			continue
		}
		m.playerIDs[mp.DiscordID] = player.ID
		stats.Inserted++
	}
	return cur.Err()
}

// linkLeaders writes nation leader references once both tables exist. The
// legacy schema stores the leader as a discord id on the country document.
func (m *Migrator) linkLeaders(ctx context.Context) error {
	col := m.mongoDB.Collection(m.collNames["countries"])
	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query countries for leaders: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mc MongoCountry
		if err := cur.Decode(&mc); err != nil {
			continue
		}
		nationID, ok := m.nationIDs[mc.Name]
		if !ok {
			continue
		}
		leaderID, ok := m.playerIDs[mc.LeaderID]
		if !ok {
			continue
		}

		_, err := m.pgDB.NewUpdate().
			Model((*models.Nation)(nil)).
			Set("leader_id = ?", leaderID).
			Where("id = ?", nationID).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to link leader",
				slog.String("type", "db"),
				slog.String("nation", mc.Name),
				slog.Any("error", err))
		}
	}
	return cur.Err()
}

// normalizeResources fills missing resource kinds with zero and drops
// unknown keys the old bot accumulated.
func normalizeResources(in map[string]int64) models.ResourceMap {
	out := make(models.ResourceMap, len(rules.Resources))
	for _, res := range rules.Resources {
		v := in[string(res)]
		if v < 0 {
			v = 0
		}
		out[string(res)] = v
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func (m *Migrator) logFinalStats() {
	for name, t := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("type", "db"),
			slog.String("table", name),
			slog.Int("read", t.Read),
			slog.Int("inserted", t.Inserted),
			slog.Int("skipped", t.Skipped),
			slog.Int("errors", t.Errors),
		)
	}
	slog.Info("Migration finished",
		slog.String("type", "db"),
		slog.Duration("took", m.stats.EndTime.Sub(m.stats.StartTime)),
	)
}
