package nation

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Join = discord.SlashCommandCreate{
	Name:        "join",
	Description: "🎉 Join an open nation as a citizen",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "nation",
			Description: "The nation to join (leave empty to list open nations)",
			Required:    false,
		},
	},
}

func JoinHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if err != nil && err != repositories.ErrNotFound {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your player profile.")
		}
		if player != nil && player.NationID != 0 {
			return utils.EH.CreateErrorEmbed(e, "You already belong to a nation.")
		}

		name, _ := e.SlashCommandInteractionData().OptString("nation")
		name = strings.TrimSpace(name)
		if name == "" {
			return listOpenNations(ctx, b, e)
		}

		target, resolveErr := b.NationSearch.Resolve(ctx, name)
		if resolveErr != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", name))
		}
		if target.IsLocked {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("%s is locked and not accepting new citizens.", target.Name))
		}

		if player == nil {
			player = &models.Player{
				DiscordID: e.User().ID.String(),
				Username:  e.User().Username,
				Role:      rules.RankRecruit.String(),
			}
			if err := b.PlayerRepository.Create(ctx, player); err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to register you as a player.")
			}
		}

		player.NationID = target.ID
		player.Role = rules.RankCitizen.String()
		if err := b.PlayerRepository.Update(ctx, player); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to join the nation.")
		}

		inline := true
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🎉 Nation Joined",
				Description: fmt.Sprintf("You are now a citizen of **%s**!", target.Name),
				Color:       config.SuccessColor,
				Fields: []discord.EmbedField{
					{Name: "Your rank", Value: "👤 citizen", Inline: &inline},
					{Name: "Population", Value: utils.FormatNumber(target.Population), Inline: &inline},
				},
			}},
		})
	}
}

func listOpenNations(ctx context.Context, b *worldbot.Bot, e *handler.CommandEvent) error {
	open, err := b.NationRepository.GetUnlocked(ctx)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to list open nations.")
	}
	if len(open) == 0 {
		return utils.EH.CreateErrorEmbed(e, "No nation is open for new citizens right now.")
	}

	var sb strings.Builder
	for i, n := range open {
		if i == config.NationsPerPage {
			break
		}
		fmt.Fprintf(&sb, "%d. **%s** — population %s\n", i+1, n.Name, utils.FormatNumber(n.Population))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🏳️ Open Nations",
			Description: "Run `/join nation:<name>` to join one of these:\n\n" + sb.String(),
			Color:       config.InfoColor,
		}},
		Flags: discord.MessageFlagEphemeral,
	})
}
