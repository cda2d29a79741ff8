package nation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

// validNationName requires at least MinNationNameLength runes after trimming.
func validNationName(name string) bool {
	return utf8.RuneCountInString(name) >= config.MinNationNameLength
}

var Found = discord.SlashCommandCreate{
	Name:        "found",
	Description: "🏳️ Found a new nation and become its chief",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "The name of your new nation",
			Required:    true,
		},
	},
}

func FoundHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		name := strings.TrimSpace(e.SlashCommandInteractionData().String("name"))
		if !validNationName(name) {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("A nation name needs at least %d characters.", config.MinNationNameLength))
		}

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err == repositories.ErrNotFound {
			player = &models.Player{
				DiscordID: e.User().ID.String(),
				Username:  e.User().Username,
				Role:      rules.RankRecruit.String(),
			}
			if err = b.PlayerRepository.Create(ctx, player); err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to register you as a player.")
			}
		} else if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your player profile.")
		}

		if player.NationID != 0 {
			return utils.EH.CreateErrorEmbed(e, "You already belong to a nation. Use /leave first.")
		}

		if _, err := b.NationRepository.GetByName(ctx, name); err == nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("A nation named '%s' already exists.", name))
		}

		n := models.NewNation(name, player.ID)
		if err := b.NationRepository.Create(ctx, n); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to found the nation.")
		}

		player.NationID = n.ID
		player.Role = rules.RankChief.String()
		if err := b.PlayerRepository.Update(ctx, player); err != nil {
			return utils.EH.CreateErrorEmbed(e, "The nation was created but your profile could not be updated.")
		}

		inline := true
		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🏳️ New Nation Founded",
				Description: fmt.Sprintf("The nation of **%s** has been founded!", name),
				Color:       config.SuccessColor,
				Fields: []discord.EmbedField{
					{Name: "Chief of State", Value: e.User().Mention(), Inline: &inline},
					{Name: "Population", Value: utils.FormatNumber(n.Population), Inline: &inline},
					{Name: "Starting Treasury", Value: utils.FormatNumber(n.Resource("money")) + " 💵", Inline: &inline},
				},
				Timestamp: &now,
			}},
		})
	}
}
