package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/worlddominion/worldbot/worldbot/commands/admin"
	"github.com/worlddominion/worldbot/worldbot/commands/economy"
	"github.com/worlddominion/worldbot/worldbot/commands/military"
	"github.com/worlddominion/worldbot/worldbot/commands/nation"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, nation.Commands...)
	Commands = append(Commands, economy.Commands...)
	Commands = append(Commands, military.Commands...)
	Commands = append(Commands, admin.Commands...)
}
