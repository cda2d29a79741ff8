package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func TestApplyEvent_AdjustsStats(t *testing.T) {
	n := testNation() // economy 50, stability 80, army 20

	out := ApplyEvent(n, rules.EventTemplate{
		Type:        "crisis",
		Name:        "Economic Crisis",
		Description: "An economic crisis strikes the nation...",
		Economy:     -15,
		Stability:   -10,
	})
	require.False(t, out.Rejected())

	a := out.Applied
	assert.Equal(t, 35, a.Nation.Economy)
	assert.Equal(t, 70, a.Nation.Stability)
	assert.Equal(t, 20, a.Nation.ArmyStrength)
	assert.Contains(t, a.Summary, "Economic Crisis")

	// World events never produce a ledger transaction.
	assert.Nil(t, a.Transaction)

	// Input untouched.
	assert.Equal(t, 50, n.Economy)
	assert.Equal(t, 80, n.Stability)
}

func TestApplyEvent_ClampsStats(t *testing.T) {
	n := testNation()
	n.Economy = 95
	n.Stability = 5
	n.ArmyStrength = 98

	out := ApplyEvent(n, rules.EventTemplate{Economy: 10, Stability: -20, Army: 5})
	require.False(t, out.Rejected())

	assert.Equal(t, 100, out.Applied.Nation.Economy)
	assert.Equal(t, 0, out.Applied.Nation.Stability)
	assert.Equal(t, 100, out.Applied.Nation.ArmyStrength)
}

func TestApplyEvent_NeverTouchesResources(t *testing.T) {
	n := testNation()
	out := ApplyEvent(n, rules.EventCatalog[0])
	require.False(t, out.Rejected())
	assert.Equal(t, n.Resources, out.Applied.Nation.Resources)
}

func TestEventImpact_OmitsZeroes(t *testing.T) {
	impact := EventImpact(rules.EventTemplate{Economy: 10, Stability: 5})
	assert.Equal(t, models.StatImpact{"economy": 10, "stability": 5}, impact)

	impact = EventImpact(rules.EventTemplate{Army: 5, Stability: -15})
	assert.Equal(t, models.StatImpact{"army_strength": 5, "stability": -15}, impact)

	assert.Empty(t, EventImpact(rules.EventTemplate{}))
}

func TestRandomEvent_DrawsFromCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		ev := rules.RandomEvent(rng)
		seen[ev.Type] = true
	}
	// Every template should come up over enough draws.
	assert.Len(t, seen, len(rules.EventCatalog))
}
