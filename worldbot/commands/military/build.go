package military

import (
	"context"
	"fmt"
	"sort"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Build = discord.SlashCommandCreate{
	Name:        "build",
	Description: "🏗️ Build military units for your nation",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "unit",
			Description: "The unit type to build",
			Required:    true,
			Choices:     unitChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "count",
			Description: "How many to build (1-1000)",
			Required:    true,
			MinValue:    intPtr(config.MinBuildCount),
			MaxValue:    intPtr(config.MaxBuildCount),
		},
	},
}

func BuildHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		outcome := b.Engine.BuildArmy(ctx, e.User().ID.String(), data.String("unit"), int64(data.Int("count")))
		if outcome.Rejected() {
			return utils.EH.CreateRejection(e, outcome.Rejection)
		}

		a := outcome.Applied
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🏗️ %s\n\n%s's army strength is now **%d**, treasury holds **%s money**.",
			a.Summary,
			a.Nation.Name,
			a.Nation.ArmyStrength,
			utils.FormatNumber(a.Nation.Resource("money")),
		))
	}
}

func unitChoices() []discord.ApplicationCommandOptionChoiceString {
	ids := make([]string, 0, len(rules.MilitaryUnits))
	for id := range rules.MilitaryUnits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(ids))
	for _, id := range ids {
		unit := rules.MilitaryUnits[id]
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  fmt.Sprintf("%s (%d money)", unit.Name, unit.Cost),
			Value: id,
		})
	}
	return choices
}

func intPtr(v int) *int {
	return &v
}
