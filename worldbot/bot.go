package worldbot

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/disgoorg/snowflake/v2"

	nationcache "github.com/worlddominion/worldbot/worldbot/cache"
	"github.com/worlddominion/worldbot/worldbot/database"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/engine"
	"github.com/worlddominion/worldbot/worldbot/game/scheduler"
	"github.com/worlddominion/worldbot/worldbot/services"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string

	DB                    *database.DB
	NationRepository      repositories.NationRepository
	PlayerRepository      repositories.PlayerRepository
	TransactionRepository repositories.TransactionRepository
	EventRepository       repositories.EventRepository
	WarRepository         repositories.WarRepository

	Engine       *engine.Service
	Scheduler    *scheduler.Scheduler
	NationCache  *nationcache.NationCache
	Archive      *services.ArchiveService
	NationSearch *services.NationSearchService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// GetNation loads a nation snapshot through the read cache. Display commands
// use this path; every engine write invalidates the cached entry.
func (b *Bot) GetNation(ctx context.Context, id int64) (*models.Nation, error) {
	if b.NationCache != nil {
		if n := b.NationCache.Get(id); n != nil {
			return n, nil
		}
	}
	n, err := b.NationRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.NationCache != nil {
		b.NationCache.Put(n)
	}
	return n, nil
}

// IsAdmin reports whether the given user may run administrative commands.
func (b *Bot) IsAdmin(userID snowflake.ID) bool {
	for _, id := range b.Cfg.Bot.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("World Dominion bot is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("the world map"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
