package economy

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

var Bank = discord.SlashCommandCreate{
	Name:        "bank",
	Description: "🏦 View your nation's treasury and resource stockpiles",
}

var resourceEmojis = map[rules.Resource]string{
	rules.ResourceMoney:     "💰",
	rules.ResourceFood:      "🌾",
	rules.ResourceMetal:     "⛏️",
	rules.ResourceOil:       "🛢️",
	rules.ResourceEnergy:    "⚡",
	rules.ResourceMaterials: "🧱",
}

func BankHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err != nil || player.NationID == 0 {
			return utils.EH.CreateErrorEmbed(e, "You do not belong to any nation.")
		}

		rank := rules.ParseRank(player.Role)
		if !rules.MayPerform(rank, rules.ActionBank) {
			return utils.EH.CreateErrorEmbed(e, "Your rank does not give access to the national bank.")
		}

		nation, err := b.GetNation(ctx, player.NationID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your nation.")
		}

		fields := make([]discord.EmbedField, 0, len(rules.Resources)+3)
		inline := true
		for _, res := range rules.Resources {
			fields = append(fields, discord.EmbedField{
				Name:   fmt.Sprintf("%s %s", resourceEmojis[res], res),
				Value:  utils.FormatNumber(nation.Resource(string(res))),
				Inline: &inline,
			})
		}
		fields = append(fields,
			discord.EmbedField{Name: "📊 Economy", Value: fmt.Sprintf("%d/100", nation.Economy), Inline: &inline},
			discord.EmbedField{Name: "👥 Population", Value: utils.FormatNumber(nation.Population), Inline: &inline},
			discord.EmbedField{Name: "📈 Stability", Value: fmt.Sprintf("%d%%", nation.Stability), Inline: &inline},
		)

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:     fmt.Sprintf("🏦 Treasury of %s", nation.Name),
				Color:     config.InfoColor,
				Fields:    fields,
				Timestamp: &now,
			}},
		})
	}
}
