package nation

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Leave = discord.SlashCommandCreate{
	Name:        "leave",
	Description: "🚪 Leave your current nation",
}

func LeaveHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err != nil || player.NationID == 0 {
			return utils.EH.CreateErrorEmbed(e, "You do not belong to any nation.")
		}

		nation, err := b.NationRepository.GetByID(ctx, player.NationID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your nation.")
		}
		if nation.LeaderID == player.ID {
			return utils.EH.CreateErrorEmbed(e, "A chief cannot abandon their nation. Promote a successor first.")
		}

		player.NationID = 0
		player.Role = rules.RankRecruit.String()
		if err := b.PlayerRepository.Update(ctx, player); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to leave the nation.")
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🚪 You have left **%s**.", nation.Name))
	}
}
