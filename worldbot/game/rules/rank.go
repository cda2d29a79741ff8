package rules

// Rank is a player's position in the authority hierarchy. Lower values carry
// more authority; a rank may perform an action when its level is at most the
// action's minimum level.
type Rank int

const (
	RankFounder Rank = iota
	RankChief        // high_council maps here too
	RankViceChief
	RankEconomyMinister
	RankDefenseMinister
	RankGovernor
	RankOfficer
	RankCitizen // soldier maps here too
	RankRecruit
)

var rankNames = map[Rank]string{
	RankFounder:         "founder",
	RankChief:           "chief",
	RankViceChief:       "vice_chief",
	RankEconomyMinister: "economy_minister",
	RankDefenseMinister: "defense_minister",
	RankGovernor:        "governor",
	RankOfficer:         "officer",
	RankCitizen:         "citizen",
	RankRecruit:         "recruit",
}

func (r Rank) String() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return "recruit"
}

// ParseRank maps a stored role string to its Rank. Unknown roles fall back to
// recruit, the least privileged rank.
func ParseRank(role string) Rank {
	switch role {
	case "founder":
		return RankFounder
	case "high_council", "chief":
		return RankChief
	case "vice_chief":
		return RankViceChief
	case "economy_minister":
		return RankEconomyMinister
	case "defense_minister":
		return RankDefenseMinister
	case "governor":
		return RankGovernor
	case "officer":
		return RankOfficer
	case "soldier", "citizen":
		return RankCitizen
	default:
		return RankRecruit
	}
}

// Action names a rank-gated game action.
type Action string

const (
	ActionBudget   Action = "budget"
	ActionPromote  Action = "promote"
	ActionTax      Action = "tax"
	ActionWar      Action = "war"
	ActionCommerce Action = "commerce"
	ActionElection Action = "election"
	ActionProduce  Action = "produce"
	ActionBank     Action = "bank"
	ActionArmy     Action = "army"
	ActionAttack   Action = "attack"
	ActionSpy      Action = "spy"
	ActionRecruit  Action = "recruit"
	ActionInfra    Action = "infra"
	ActionTrain    Action = "train"
	ActionDefend   Action = "defend"
	ActionWork     Action = "work"
	ActionVote     Action = "vote"
	ActionJoin     Action = "join"
	ActionGive     Action = "give"
)

var actionMinRank = map[Action]Rank{
	ActionBudget:   RankChief,
	ActionPromote:  RankChief,
	ActionTax:      RankChief,
	ActionWar:      RankChief,
	ActionCommerce: RankViceChief,
	ActionElection: RankViceChief,
	ActionProduce:  RankEconomyMinister,
	ActionBank:     RankEconomyMinister,
	ActionArmy:     RankDefenseMinister,
	ActionAttack:   RankDefenseMinister,
	ActionSpy:      RankDefenseMinister,
	ActionRecruit:  RankGovernor,
	ActionInfra:    RankGovernor,
	ActionTrain:    RankOfficer,
	ActionDefend:   RankOfficer,
	ActionWork:     RankRecruit,
	ActionVote:     RankCitizen,
	ActionJoin:     RankRecruit,
	ActionGive:     RankFounder,
}

// MayPerform reports whether a rank is authorized for an action. Unknown
// actions require the least privileged rank, matching the permissive default
// for missing config.
func MayPerform(r Rank, a Action) bool {
	min, ok := actionMinRank[a]
	if !ok {
		min = RankRecruit
	}
	return r <= min
}
