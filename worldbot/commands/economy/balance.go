package economy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "💰 View your personal balance and work status",
}

func BalanceHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "You are not registered yet. Use /join to enter the game.")
		}

		var workStatus string
		cooldown := b.Engine.Rules().WorkCooldown
		if player.LastWorkTime.IsZero() || time.Since(player.LastWorkTime) >= cooldown {
			workStatus = "ready to work"
		} else {
			remaining := cooldown - time.Since(player.LastWorkTime)
			workStatus = fmt.Sprintf("next shift in %s", utils.FormatDuration(remaining))
		}

		description := fmt.Sprintf("```ansi\n"+
			"\x1b[1;36mBalance:\x1b[0m %s money\n"+
			"\x1b[1;35mRank:\x1b[0m %s\n"+
			"\x1b[1;33mWork:\x1b[0m %s\n"+
			"```",
			utils.FormatNumber(player.Balance),
			strings.ReplaceAll(player.Role, "_", " "),
			workStatus,
		)

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "💰 Balance",
				Description: description,
				Color:       config.SuccessColor,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Requested by %s", e.User().Username),
				},
				Timestamp: &now,
			}},
		})
	}
}
