package worldbot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/worlddominion/worldbot/worldbot/database"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Bot    BotConfig         `toml:"bot"`
	DB     database.DBConfig `toml:"db"`
	Rules  rules.Rules       `toml:"rules"`
	Spaces SpacesConfig      `toml:"spaces"`
	Mongo  MongoConfig       `toml:"mongo"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	AdminIDs  []snowflake.ID `toml:"admin_ids"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

// SpacesConfig holds the archive bucket credentials. Leave empty to
// disable daily ledger archiving.
type SpacesConfig struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
	Region string `toml:"region"`
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix"`
}

// MongoConfig points at the legacy deployment for one-shot imports.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}
