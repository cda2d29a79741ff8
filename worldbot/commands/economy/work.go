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

var Work = discord.SlashCommandCreate{
	Name:        "work",
	Description: "💼 Work a shift and earn a salary from your nation",
}

func WorkHandler(b *worldbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		outcome := b.Engine.Work(ctx, e.User().ID.String())
		if outcome.Rejected() {
			return utils.EH.CreateRejection(e, outcome.Rejection)
		}

		a := outcome.Applied
		description := fmt.Sprintf("💼 %s\n\nYour balance is now **%s money**.",
			a.Summary,
			utils.FormatNumber(a.Player.Balance),
		)
		if a.Transaction != nil && a.Transaction.Fee > 0 {
			description += fmt.Sprintf("\n%s withheld **%s money** in payroll tax.",
				a.Nation.Name,
				utils.FormatNumber(a.Transaction.Fee),
			)
		}
		return utils.EH.CreateSuccessEmbed(e, description)
	}
}
