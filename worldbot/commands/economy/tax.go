package economy

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Tax = discord.SlashCommandCreate{
	Name:        "tax",
	Description: "🏛️ Set your nation's tax rate and collect revenue",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "rate",
			Description: "Tax rate in percent (0-50)",
			Required:    true,
			MinValue:    intPtr(0),
			MaxValue:    intPtr(config.MaxTaxRate),
		},
	},
}

func TaxHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		rate := e.SlashCommandInteractionData().Int("rate")

		outcome := b.Engine.Tax(ctx, e.User().ID.String(), rate)
		if outcome.Rejected() {
			return utils.EH.CreateRejection(e, outcome.Rejection)
		}

		a := outcome.Applied
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🏛️ %s\n\nStability is now **%d**, treasury holds **%s money**.",
			a.Summary,
			a.Nation.Stability,
			utils.FormatNumber(a.Nation.Resource("money")),
		))
	}
}
