package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	nationcache "github.com/worlddominion/worldbot/worldbot/cache"
	"github.com/worlddominion/worldbot/worldbot/commands"
	"github.com/worlddominion/worldbot/worldbot/commands/admin"
	"github.com/worlddominion/worldbot/worldbot/commands/economy"
	"github.com/worlddominion/worldbot/worldbot/commands/military"
	"github.com/worlddominion/worldbot/worldbot/commands/nation"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/engine"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/scheduler"
	"github.com/worlddominion/worldbot/worldbot/handlers"
	"github.com/worlddominion/worldbot/worldbot/logger"
	"github.com/worlddominion/worldbot/worldbot/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting World Dominion bot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := worldbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	rules := cfg.Rules.Merge()

	// Reinstall the handler at the configured level now that we know it.
	if cfg.Log.Level != slog.LevelInfo {
		slog.SetDefault(slog.New(logger.NewHandlerWithLevel(cfg.Log.Level)))
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	defer db.Close()

	b := worldbot.New(*cfg, version, commit)
	b.DB = db

	b.NationRepository = repositories.NewNationRepository(db.BunDB())
	b.PlayerRepository = repositories.NewPlayerRepository(db.BunDB())
	b.TransactionRepository = repositories.NewTransactionRepository(db.BunDB())
	b.EventRepository = repositories.NewEventRepository(db.BunDB())
	b.WarRepository = repositories.NewWarRepository(db.BunDB())

	tracker := quota.NewTracker(b.TransactionRepository)
	b.Engine = engine.NewService(
		b.NationRepository,
		b.PlayerRepository,
		b.TransactionRepository,
		b.WarRepository,
		tracker,
		rules,
	)

	b.NationCache = nationcache.NewNationCache(config.CacheExpiration)
	b.Engine.SetCache(b.NationCache)

	b.NationSearch = services.NewNationSearchService(b.NationRepository)

	b.Scheduler = scheduler.New(
		b.Engine,
		b.NationRepository,
		b.EventRepository,
		b.TransactionRepository,
		rules,
	)

	if cfg.Spaces.Key != "" {
		archive, err := services.NewArchiveService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.Prefix,
		)
		if err != nil {
			slog.Error("Failed to initialize ledger archive", slog.Any("error", err))
			os.Exit(-1)
		}
		b.Archive = archive
		b.Scheduler.SetArchive(archive)
	}

	b.Scheduler.Start()
	defer b.Scheduler.Stop()

	h := handler.New()

	// Nation commands
	h.Command("/found", handlers.WrapWithLogging("found", nation.FoundHandler(b)))
	h.Command("/join", handlers.WrapWithLogging("join", nation.JoinHandler(b)))
	h.Command("/leave", handlers.WrapWithLogging("leave", nation.LeaveHandler(b)))
	h.Command("/nation", handlers.WrapWithLogging("nation", nation.InfoHandler(b)))
	h.Command("/nations", handlers.WrapWithLogging("nations", nation.ListHandler(b)))

	// Economy commands
	h.Command("/produce", handlers.WrapWithLogging("produce", economy.ProduceHandler(b)))
	h.Command("/trade", handlers.WrapWithLogging("trade", economy.TradeHandler(b)))
	h.Autocomplete("/trade", economy.TradeAutocompleteHandler(b))
	h.Command("/tax", handlers.WrapWithLogging("tax", economy.TaxHandler(b)))
	h.Command("/work", handlers.WrapWithLogging("work", economy.WorkHandler(b)))
	h.Command("/balance", handlers.WrapWithLogging("balance", economy.BalanceHandler(b)))
	h.Command("/bank", handlers.WrapWithLogging("bank", economy.BankHandler(b)))

	// Military commands
	h.Command("/army", handlers.WrapWithLogging("army", military.ArmyHandler(b)))
	h.Command("/build", handlers.WrapWithLogging("build", military.BuildHandler(b)))
	h.Command("/attack", handlers.WrapWithLogging("attack", military.AttackHandler(b)))
	h.Component("/war/", handlers.WrapComponentWithLogging("war", military.WarButtonHandler(b)))

	// Admin commands
	h.Command("/give", handlers.WrapWithLogging("give", admin.GiveHandler(b)))
	h.Command("/lock", handlers.WrapWithLogging("lock", admin.LockHandler(b)))
	h.Command("/purge", handlers.WrapWithLogging("purge", admin.PurgeHandler(b)))
	h.Command("/forcetick", handlers.WrapWithLogging("forcetick", admin.ForceTickHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}
