package economy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Trade = discord.SlashCommandCreate{
	Name:        "trade",
	Description: "🤝 Exchange resources with another nation",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "nation",
			Description:  "The nation to trade with",
			Required:     true,
			Autocomplete: true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "give_resource",
			Description: "The resource you offer",
			Required:    true,
			Choices:     resourceChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "give_amount",
			Description: "How much you offer",
			Required:    true,
			MinValue:    intPtr(1),
		},
		discord.ApplicationCommandOptionString{
			Name:        "receive_resource",
			Description: "The resource you want back",
			Required:    true,
			Choices:     resourceChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "receive_amount",
			Description: "How much you want back",
			Required:    true,
			MinValue:    intPtr(1),
		},
	},
}

func TradeHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		targetName := data.String("nation")

		target, err := b.NationSearch.Resolve(ctx, targetName)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'", targetName))
		}

		outcome := b.Engine.Trade(ctx,
			e.User().ID.String(),
			target.Name,
			data.String("give_resource"),
			int64(data.Int("give_amount")),
			data.String("receive_resource"),
			int64(data.Int("receive_amount")),
		)
		if outcome.Rejected() {
			return utils.EH.CreateRejection(e, outcome.Rejection)
		}

		a := outcome.Applied
		description := fmt.Sprintf("🤝 %s", a.Summary)
		if a.Transaction != nil && a.Transaction.Fee > 0 {
			description += fmt.Sprintf("\nBroker fee: **%s money**", utils.FormatNumber(a.Transaction.Fee))
		}
		return utils.EH.CreateSuccessEmbed(e, description)
	}
}

// TradeAutocompleteHandler suggests nation names for the trade target option.
func TradeAutocompleteHandler(b *worldbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.NetworkDialTimeout)
		defer cancel()

		focused := e.Data.Focused()
		partial := ""
		if focused.Value != nil {
			var s string
			if err := json.Unmarshal(focused.Value, &s); err == nil {
				partial = strings.TrimSpace(s)
			}
		}

		names, err := b.NationSearch.Suggest(ctx, partial, config.MaxSearchResults)
		if err != nil {
			return e.AutocompleteResult(nil)
		}

		choices := make([]discord.AutocompleteChoice, 0, len(names))
		for _, name := range names {
			choices = append(choices, discord.AutocompleteChoiceString{Name: name, Value: name})
		}
		return e.AutocompleteResult(choices)
	}
}
