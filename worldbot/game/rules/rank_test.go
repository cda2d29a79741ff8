package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		role string
		want Rank
	}{
		{"founder", RankFounder},
		{"chief", RankChief},
		{"high_council", RankChief},
		{"vice_chief", RankViceChief},
		{"economy_minister", RankEconomyMinister},
		{"defense_minister", RankDefenseMinister},
		{"governor", RankGovernor},
		{"officer", RankOfficer},
		{"citizen", RankCitizen},
		{"soldier", RankCitizen},
		{"recruit", RankRecruit},
		{"", RankRecruit},
		{"emperor", RankRecruit},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRank(tt.role))
		})
	}
}

func TestMayPerform(t *testing.T) {
	// A chief can do everything a citizen can.
	assert.True(t, MayPerform(RankChief, ActionTax))
	assert.True(t, MayPerform(RankChief, ActionWork))
	assert.True(t, MayPerform(RankFounder, ActionTax))

	// A citizen cannot reach up the hierarchy.
	assert.False(t, MayPerform(RankCitizen, ActionTax))
	assert.False(t, MayPerform(RankCitizen, ActionProduce))
	assert.True(t, MayPerform(RankCitizen, ActionWork))
	assert.True(t, MayPerform(RankCitizen, ActionVote))

	// Recruits may join and earn a wage, nothing more.
	assert.True(t, MayPerform(RankRecruit, ActionJoin))
	assert.True(t, MayPerform(RankRecruit, ActionWork))
	assert.False(t, MayPerform(RankRecruit, ActionVote))

	// Only the founder may use admin grants.
	assert.True(t, MayPerform(RankFounder, ActionGive))
	assert.False(t, MayPerform(RankChief, ActionGive))

	// Unknown actions default to the most permissive gate.
	assert.True(t, MayPerform(RankRecruit, Action("dance")))
}

func TestRankString_RoundTrip(t *testing.T) {
	for rank := RankFounder; rank <= RankRecruit; rank++ {
		assert.Equal(t, rank, ParseRank(rank.String()))
	}
}
