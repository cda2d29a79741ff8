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

var Purge = discord.SlashCommandCreate{
	Name:        "purge",
	Description: "🗑️ [Admin] Delete a nation and release its citizens",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "nation",
			Description: "The nation to delete",
			Required:    true,
		},
	},
}

func PurgeHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreateErrorEmbed(e, "This command is restricted to administrators.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		name := e.SlashCommandInteractionData().String("nation")
		target, err := b.NationSearch.Resolve(ctx, name)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", name))
		}

		// Release citizens before the nation row disappears.
		if err := b.PlayerRepository.ClearNation(ctx, target.ID); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to release the nation's citizens.")
		}
		if err := b.NationRepository.Delete(ctx, target.ID); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to delete the nation.")
		}
		if b.NationCache != nil {
			b.NationCache.Invalidate(target.ID)
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🗑️ **%s** has been wiped from the map.", target.Name))
	}
}
