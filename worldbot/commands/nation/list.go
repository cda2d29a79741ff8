package nation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/worlddominion/worldbot/worldbot"
	"github.com/worlddominion/worldbot/worldbot/config"
	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/utils"
)

var List = discord.SlashCommandCreate{
	Name:        "nations",
	Description: "🗺️ Browse all nations of the world",
}

func ListHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		nations, err := b.NationRepository.GetAll(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the world map.")
		}
		if len(nations) == 0 {
			return utils.EH.CreateInfoEmbed(e, "No nation has been founded yet. Be the first with /found!")
		}

		totalPages := int(math.Ceil(float64(len(nations)) / float64(config.NationsPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				if page >= totalPages {
					page = totalPages - 1
				}
				start := page * config.NationsPerPage
				end := start + config.NationsPerPage
				if end > len(nations) {
					end = len(nations)
				}
				embed.
					SetTitle("🗺️ Nations of the World").
					SetDescription(buildNationPage(nations[start:end], start)).
					SetColor(config.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • Total: %d nations", page+1, totalPages, len(nations)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func buildNationPage(nations []*models.Nation, offset int) string {
	var sb strings.Builder
	for i, n := range nations {
		status := "🟢"
		if n.IsLocked {
			status = "🔴"
		}
		fmt.Fprintf(&sb, "%d. %s **%s** — pop %s, economy %d, army %d\n",
			offset+i+1, status, n.Name, utils.FormatNumber(n.Population), n.Economy, n.ArmyStrength)
	}
	return sb.String()
}
