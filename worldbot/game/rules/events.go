package rules

import "math/rand"

// EventTemplate is one entry of the random world-event catalog. Impacts apply
// to nation stats only, each clamped to [0,100]; resources are never touched.
type EventTemplate struct {
	Type        string
	Name        string
	Description string
	Economy     int
	Stability   int
	Army        int
}

// EventCatalog is the fixed set of world events the scheduler draws from.
var EventCatalog = []EventTemplate{
	{
		Type:        "economic",
		Name:        "Economic Boom",
		Description: "The nation enjoys a period of prosperity!",
		Economy:     10,
		Stability:   5,
	},
	{
		Type:        "crisis",
		Name:        "Economic Crisis",
		Description: "An economic crisis strikes the nation...",
		Economy:     -15,
		Stability:   -10,
	},
	{
		Type:        "natural_disaster",
		Name:        "Natural Disaster",
		Description: "An earthquake has struck the nation!",
		Economy:     -10,
		Stability:   -20,
	},
	{
		Type:        "alliance",
		Name:        "Alliance Offer",
		Description: "A neighboring nation proposes an alliance!",
		Stability:   5,
	},
	{
		Type:        "war",
		Name:        "War Threat",
		Description: "A neighboring nation threatens to attack...",
		Stability:   -15,
		Army:        5,
	},
}

// RandomEvent picks one template uniformly at random from the catalog.
func RandomEvent(rng *rand.Rand) EventTemplate {
	return EventCatalog[rng.Intn(len(EventCatalog))]
}
