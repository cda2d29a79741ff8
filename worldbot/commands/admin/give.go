package admin

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Give = discord.SlashCommandCreate{
	Name:        "give",
	Description: "🎁 [Admin] Grant resources to a nation",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "nation",
			Description: "The nation to credit",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "resource",
			Description: "The resource to grant",
			Required:    true,
			Choices:     resourceChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How much to grant",
			Required:    true,
			MinValue:    intPtr(1),
		},
	},
}

func GiveHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreateErrorEmbed(e, "This command is restricted to administrators.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		resource := data.String("resource")
		amount := int64(data.Int("amount"))

		target, err := b.NationSearch.Resolve(ctx, data.String("nation"))
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", data.String("nation")))
		}

		for attempt := 0; attempt < config.MaxRetries; attempt++ {
			nation, err := b.NationRepository.GetByID(ctx, target.ID)
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to load the nation.")
			}
			nation.Resources[resource] += amount

			err = b.NationRepository.Update(ctx, nation)
			if err == repositories.ErrVersionConflict {
				continue
			}
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to credit the nation.")
			}

			if b.NationCache != nil {
				b.NationCache.Invalidate(nation.ID)
			}
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🎁 Granted **%s %s** to **%s**. It now holds **%s**.",
				utils.FormatNumber(amount), resource, nation.Name,
				utils.FormatNumber(nation.Resource(resource)),
			))
		}
		return utils.EH.CreateErrorEmbed(e, "The nation is busy, try again in a moment.")
	}
}

func resourceChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(rules.Resources))
	for _, res := range rules.Resources {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  string(res),
			Value: string(res),
		})
	}
	return choices
}

func intPtr(v int) *int {
	return &v
}
