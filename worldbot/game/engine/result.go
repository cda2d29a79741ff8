// Package engine implements every economic action as a pure function of
// (state snapshot, quota totals, parameters, rules) -> (new state, ledger
// event, summary) or a typed rejection. Persistence lives in Service.
package engine

import (
	"fmt"

	"github.com/worlddominion/worldbot/worldbot/database/models"
)

// RejectCode classifies why an action was refused.
type RejectCode string

const (
	RejectValidation   RejectCode = "validation"
	RejectPermission   RejectCode = "permission"
	RejectInsufficient RejectCode = "insufficient_resources"
	RejectQuota        RejectCode = "quota_exceeded"
	RejectCooldown     RejectCode = "cooldown"
	RejectNotFound     RejectCode = "not_found"
	RejectStore        RejectCode = "store_failure"
)

// Rejection carries the machine code and a human-readable reason. A rejected
// action never mutated anything and never produced a ledger event.
type Rejection struct {
	Code   RejectCode
	Reason string
}

// Applied is the successful half of an outcome: the post-action snapshots to
// persist, the ledger event to append (nil for tax, which is not logged), and
// a user-facing summary.
type Applied struct {
	Nation      *models.Nation
	Target      *models.Nation
	Player      *models.Player
	Transaction *models.Transaction
	Summary     string
}

// Outcome is the discriminated result of an engine action: exactly one of
// Rejection or Applied is set.
type Outcome struct {
	Rejection *Rejection
	Applied   *Applied
}

// Rejected reports whether the action was refused.
func (o Outcome) Rejected() bool {
	return o.Rejection != nil
}

func reject(code RejectCode, format string, args ...any) Outcome {
	return Outcome{Rejection: &Rejection{Code: code, Reason: fmt.Sprintf(format, args...)}}
}

func applied(a *Applied) Outcome {
	return Outcome{Applied: a}
}

func summaryf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampMoney(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
