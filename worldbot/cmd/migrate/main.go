package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/database"
	"github.com/worlddominion/worldbot/worldbot/logger"
	"github.com/worlddominion/worldbot/worldbot/migration"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := worldbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to read config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Mongo.URI == "" {
		slog.Error("No mongo.uri configured, nothing to import")
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(1)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		slog.Error("Failed to connect to mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(db.BunDB())
	migrator.UseMongo(client, cfg.Mongo.Database)

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
