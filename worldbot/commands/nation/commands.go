package nation

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Found,
	Join,
	Leave,
	Info,
	List,
}
