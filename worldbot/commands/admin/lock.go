package admin

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Lock = discord.SlashCommandCreate{
	Name:        "lock",
	Description: "🔒 [Admin] Lock or unlock a nation for new citizens",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "nation",
			Description: "The nation to lock or unlock",
			Required:    true,
		},
		discord.ApplicationCommandOptionBool{
			Name:        "locked",
			Description: "true to lock, false to unlock",
			Required:    true,
		},
	},
}

func LockHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreateErrorEmbed(e, "This command is restricted to administrators.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		locked := data.Bool("locked")

		target, err := b.NationSearch.Resolve(ctx, data.String("nation"))
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", data.String("nation")))
		}

		if err := b.NationRepository.SetLocked(ctx, target.ID, locked); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to update the nation.")
		}
		if b.NationCache != nil {
			b.NationCache.Invalidate(target.ID)
		}

		if locked {
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🔒 **%s** is now locked.", target.Name))
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🔓 **%s** is now open for new citizens.", target.Name))
	}
}
