package admin

import (
	"context"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var ForceTick = discord.SlashCommandCreate{
	Name:        "forcetick",
	Description: "⏱️ [Admin] Run an economic tick across all nations now",
}

func ForceTickHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreateErrorEmbed(e, "This command is restricted to administrators.")
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		start := time.Now()
		if err := b.Scheduler.RunTick(ctx); err != nil {
			return utils.EH.UpdateInteractionResponse(e, "Tick failed", err.Error())
		}

		_, err := e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Description: "⏱️ Economic tick completed in " + time.Since(start).Round(time.Millisecond).String(),
				Color:       0x00FF00,
			}},
		})
		return err
	}
}
