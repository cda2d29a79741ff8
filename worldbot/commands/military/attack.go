package military

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var Attack = discord.SlashCommandCreate{
	Name:        "attack",
	Description: "⚔️ Declare war and attack another nation",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "nation",
			Description: "The nation to attack",
			Required:    true,
		},
	},
}

// AttackHandler shows the war declaration with confirm/abort buttons; the
// attack itself runs from the button handler.
func AttackHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		targetName := e.SlashCommandInteractionData().String("nation")
		target, err := b.NationSearch.Resolve(ctx, targetName)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No nation found matching '%s'.", targetName))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "⚔️ Declare War",
				Description: fmt.Sprintf("You are about to attack **%s** (army %d, economy %d).\n"+
					"The loser takes damage to stability, economy, army and resources.",
					target.Name, target.ArmyStrength, target.Economy),
				Color: config.WarningColor,
			}},
			Components: []discord.ContainerComponent{
				discord.NewActionRow(
					discord.NewDangerButton("⚔️ Attack", fmt.Sprintf("/war/confirm/%d/%s", target.ID, e.User().ID.String())),
					discord.NewSecondaryButton("🕊️ Stand Down", fmt.Sprintf("/war/cancel/%d/%s", target.ID, e.User().ID.String())),
				),
			},
		})
	}
}

// WarButtonHandler resolves the confirm/cancel buttons of a war declaration.
func WarButtonHandler(b *worldbot.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		parts := strings.Split(e.Data.CustomID(), "/")
		if len(parts) != 5 { // /war/<action>/<targetID>/<userID>
			return fmt.Errorf("invalid war button ID format")
		}
		action := parts[2]
		targetID, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return err
		}

		if e.User().ID.String() != parts[4] {
			return utils.EH.CreateEphemeralError(e, "Only the declaring commander can resolve this war declaration.")
		}

		if action == "cancel" {
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds: &[]discord.Embed{{
					Title:       "🕊️ War Averted",
					Description: "The declaration was withdrawn.",
					Color:       config.InfoColor,
				}},
				Components: &[]discord.ContainerComponent{},
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		target, err := b.NationRepository.GetByID(ctx, targetID)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "That nation no longer exists.")
		}

		outcome := b.Engine.Attack(ctx, e.User().ID.String(), target.Name)
		if outcome.Rejected() {
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds: &[]discord.Embed{{
					Title:       "❌ Attack Failed",
					Description: outcome.Rejection.Reason,
					Color:       config.ErrorColor,
				}},
				Components: &[]discord.ContainerComponent{},
			})
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Title:       "⚔️ War Report",
				Description: outcome.Applied.Summary,
				Color:       config.WarningColor,
			}},
			Components: &[]discord.ContainerComponent{},
		})
	}
}
