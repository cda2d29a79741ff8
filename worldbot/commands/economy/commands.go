package economy

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Produce,
	Trade,
	Tax,
	Work,
	Balance,
	Bank,
}
