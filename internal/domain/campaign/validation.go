package campaign

import (
	"fmt"

	"campaign-engine/internal/pkg/text"
)

// Context carries the caller facts a snapshot does not: who is asking and how
// many points they hold.
type Context struct {
	LoginType LoginType
	Points    int
}

// alertReasons maps backend condition-alert codes to stable reasons. The
// numeric codes are an implementation detail of the backend and are treated
// as opaque keys; anything unlisted falls through to the custom-message path.
var alertReasons = map[string]Reason{
	"1401": ReasonSoldOut,
	"1402": ReasonMaxPerPerson,
	"1403": ReasonCoolDown,
	"1404": ReasonConditionInvalid,
	"1405": ReasonSponsorOnly,
	"1406": ReasonExpired,
	"1407": ReasonNotStarted,
	"1408": ReasonAppVersionExpired,
	"1409": ReasonTermsViolation,
}

var reasonMessages = map[Reason]text.Role{
	ReasonNotAuthenticated:  text.RoleMsgNotAuthenticated,
	ReasonExpired:           text.RoleMsgExpired,
	ReasonSoldOut:           text.RoleMsgSoldOut,
	ReasonMaxPerPerson:      text.RoleMsgMaxPerPerson,
	ReasonCoolDown:          text.RoleMsgCoolDown,
	ReasonConditionInvalid:  text.RoleMsgConditionInvalid,
	ReasonSponsorOnly:       text.RoleMsgSponsorOnly,
	ReasonNotStarted:        text.RoleMsgNotStarted,
	ReasonAppVersionExpired: text.RoleMsgAppVersionExpired,
	ReasonTermsViolation:    text.RoleMsgTermsViolation,
}

// Engine evaluates a snapshot plus caller context into a ReadyToUse verdict.
// Pure: no side effects, no network, no local clock.
type Engine struct {
	text           *text.Table
	defaultMessage string
}

func NewEngine(tbl *text.Table, defaultMessage string) *Engine {
	return &Engine{text: tbl, defaultMessage: defaultMessage}
}

// rule is one link in the validation chain. A nil verdict means "pass, try
// the next rule". The chain order is load-bearing: the first failing rule
// decides the verdict.
type rule struct {
	name  string
	check func(s *Snapshot, ctx Context) *ReadyToUse
}

func (e *Engine) rules() []rule {
	return []rule{
		{name: "authenticated", check: e.checkAuthenticated},
		{name: "points", check: e.checkPoints},
		{name: "condition_alert", check: e.checkConditionAlert},
		{name: "expiry", check: e.checkExpiry},
		{name: "stock", check: e.checkStock},
		{name: "total_limit", check: e.checkTotalLimit},
	}
}

func (e *Engine) Evaluate(s *Snapshot, ctx Context) ReadyToUse {
	for _, r := range e.rules() {
		if verdict := r.check(s, ctx); verdict != nil {
			return *verdict
		}
	}
	return ReadyToUse{Ready: true}
}

func (e *Engine) checkAuthenticated(_ *Snapshot, ctx Context) *ReadyToUse {
	if ctx.LoginType != LoginAuthenticated {
		return e.notReady(ReasonNotAuthenticated)
	}
	return nil
}

func (e *Engine) checkPoints(s *Snapshot, ctx Context) *ReadyToUse {
	if s.PointDirection != DirectionSpend {
		return nil
	}
	if ctx.Points < s.PointsPerUnit {
		return &ReadyToUse{
			Reason:  ReasonInsufficientPoints,
			Message: fmt.Sprintf(e.text.Get(text.RoleMsgInsufficientPoints), s.PointsPerUnit, ctx.Points),
		}
	}
	return nil
}

// checkConditionAlert settles every snapshot the backend marked ineligible,
// so the expiry and stock rules below only ever see condition-passed
// snapshots.
func (e *Engine) checkConditionAlert(s *Snapshot, _ Context) *ReadyToUse {
	if s.ConditionPassed {
		return nil
	}
	if reason, ok := alertReasons[s.ConditionAlertCode]; ok {
		return e.notReady(reason)
	}
	return &ReadyToUse{Reason: ReasonCustom, Message: e.customMessage(s)}
}

func (e *Engine) checkExpiry(s *Snapshot, _ Context) *ReadyToUse {
	if s.RemainingDays() < 1 {
		return e.notReady(ReasonExpired)
	}
	return nil
}

func (e *Engine) checkStock(s *Snapshot, _ Context) *ReadyToUse {
	if s.QuantityAvailable <= 0 {
		return e.notReady(ReasonSoldOut)
	}
	return nil
}

func (e *Engine) checkTotalLimit(s *Snapshot, _ Context) *ReadyToUse {
	if s.RedeemLimitTotal > 0 && s.ItemsSold >= s.RedeemLimitTotal {
		return e.notReady(ReasonSoldOut)
	}
	return nil
}

func (e *Engine) notReady(reason Reason) *ReadyToUse {
	return &ReadyToUse{Reason: reason, Message: e.text.Get(reasonMessages[reason])}
}

// customMessage falls through caption, generic alert string, configured
// default, in that order.
func (e *Engine) customMessage(s *Snapshot) string {
	if s.ConditionAlertMessage != "" {
		return s.ConditionAlertMessage
	}
	if msg := e.text.Get(text.RoleMsgConditionAlert); msg != "" {
		return msg
	}
	return e.defaultMessage
}
