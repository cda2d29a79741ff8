package military

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Army = discord.SlashCommandCreate{
	Name:        "army",
	Description: "🪖 View your nation's military status",
}

func ArmyHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err != nil || player.NationID == 0 {
			return utils.EH.CreateErrorEmbed(e, "You do not belong to any nation.")
		}

		rank := rules.ParseRank(player.Role)
		if !rules.MayPerform(rank, rules.ActionArmy) {
			return utils.EH.CreateErrorEmbed(e, "Your rank does not give access to military reports.")
		}

		nation, err := b.GetNation(ctx, player.NationID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your nation.")
		}

		wars, err := b.WarRepository.GetActiveByNation(ctx, nation.ID)
		if err != nil {
			wars = nil
		}
		warStatus := "☮️ At peace"
		if len(wars) > 0 {
			warStatus = fmt.Sprintf("🔥 %d active war(s)", len(wars))
		}

		maintenance := int64(nation.ArmyStrength) * b.Engine.Rules().MaintenancePerStrength

		inline := true
		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: fmt.Sprintf("🪖 Military of %s", nation.Name),
				Color: config.InfoColor,
				Fields: []discord.EmbedField{
					{Name: "⚔️ Army Strength", Value: fmt.Sprintf("%d", nation.ArmyStrength), Inline: &inline},
					{Name: "💸 Upkeep per tick", Value: utils.FormatNumber(maintenance) + " money", Inline: &inline},
					{Name: "🏳️ Status", Value: warStatus, Inline: &inline},
				},
				Timestamp: &now,
			}},
		})
	}
}
