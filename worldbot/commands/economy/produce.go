package economy

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

var Produce = discord.SlashCommandCreate{
	Name:        "produce",
	Description: "🏭 Convert energy into a resource for your nation",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "resource",
			Description: "The resource to produce",
			Required:    true,
			Choices:     resourceChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How much to produce (1-1000)",
			Required:    true,
			MinValue:    intPtr(config.MinProduceAmount),
			MaxValue:    intPtr(config.MaxProduceAmount),
		},
	},
}

func ProduceHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		resource := data.String("resource")
		amount := int64(data.Int("amount"))

		outcome := b.Engine.Produce(ctx, e.User().ID.String(), resource, amount)
		if outcome.Rejected() {
			return utils.EH.CreateRejection(e, outcome.Rejection)
		}

		a := outcome.Applied
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🏭 %s\n\n%s now holds **%s %s** and **%s energy**.",
			a.Summary,
			a.Nation.Name,
			utils.FormatNumber(a.Nation.Resource(resource)),
			resource,
			utils.FormatNumber(a.Nation.Resource("energy")),
		))
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
