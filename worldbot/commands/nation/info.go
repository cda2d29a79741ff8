package nation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Info = discord.SlashCommandCreate{
	Name:        "nation",
	Description: "🌍 View a nation's public profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "The nation to inspect (defaults to your own)",
			Required:    false,
		},
	},
}

func InfoHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		var target *models.Nation
		name, _ := e.SlashCommandInteractionData().OptString("name")
		name = strings.TrimSpace(name)

		if name != "" {
			n, err := b.NationSearch.Resolve(ctx, name)
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", name))
			}
			target = n
		} else {
			player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
			if err != nil || player.NationID == 0 {
				return utils.EH.CreateErrorEmbed(e, "You do not belong to any nation. Pass a nation name to inspect one.")
			}
			n, err := b.GetNation(ctx, player.NationID)
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to load your nation.")
			}
			target = n
		}

		status := "🟢 open"
		if target.IsLocked {
			status = "🔴 locked"
		}

		citizens, err := b.PlayerRepository.GetByNation(ctx, target.ID)
		if err != nil {
			citizens = nil
		}

		events, err := b.EventRepository.GetRecent(ctx, target.ID, 3)
		if err != nil {
			events = nil
		}
		var eventLines []string
		for _, ev := range events {
			eventLines = append(eventLines, "• "+ev.Description)
		}
		eventText := "No recent events."
		if len(eventLines) > 0 {
			eventText = strings.Join(eventLines, "\n")
		}

		inline := true
		notInline := false
		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: fmt.Sprintf("🌍 %s", target.Name),
				Color: config.InfoColor,
				Fields: []discord.EmbedField{
					{Name: "👥 Population", Value: utils.FormatNumber(target.Population), Inline: &inline},
					{Name: "📊 Economy", Value: fmt.Sprintf("%d/100", target.Economy), Inline: &inline},
					{Name: "📈 Stability", Value: fmt.Sprintf("%d%%", target.Stability), Inline: &inline},
					{Name: "⚔️ Army Strength", Value: fmt.Sprintf("%d", target.ArmyStrength), Inline: &inline},
					{Name: "🧑‍🤝‍🧑 Citizens", Value: fmt.Sprintf("%d", len(citizens)), Inline: &inline},
					{Name: "Status", Value: status, Inline: &inline},
					{Name: "📰 Recent Events", Value: eventText, Inline: &notInline},
				},
				Timestamp: &now,
			}},
		})
	}
}
