// Package model defines domain entities used by services and repositories.
package model

// IdentityClaims are the authenticated user's stable identity attributes,
// populated once at the trust boundary and never mutated afterwards.
type IdentityClaims struct {
	UserID          int64  // required; opaque unique identifier
	PermissionGroup int64  // required; permission group code
	OrgUnit         string // organizational/department unit, "" if absent
	Shift           string // shift code, "" if absent
	AccountLinkCode string // optional link to an accounting entity
	PorID           *int64 // optional secondary org reference
}

// Action is a gated operation on a form.
type Action string

const (
	ActionRun    Action = "run"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ParseAction maps a textual action name onto an Action.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionRun, ActionView, ActionCreate, ActionUpdate, ActionDelete:
		return Action(s), true
	}
	return "", false
}

// PermissionRecord holds the CRUD-style flags granted to a user or group
// on a single form. Absence of a record means all flags false.
type PermissionRecord struct {
	FormName   string
	SubjectRef int64 // matches PermissionGroup or UserID depending on kind
	CanRun     bool
	CanView    bool
	CanCreate  bool
	CanUpdate  bool
	CanDelete  bool
}

// Allows reports whether the record grants the given action.
func (r PermissionRecord) Allows(a Action) bool {
	switch a {
	case ActionRun:
		return r.CanRun
	case ActionView:
		return r.CanView
	case ActionCreate:
		return r.CanCreate
	case ActionUpdate:
		return r.CanUpdate
	case ActionDelete:
		return r.CanDelete
	}
	return false
}

// Decision is the outcome of an authorization check. Denied is a normal
// outcome, not an error; storage failures are reported separately.
type Decision struct {
	Allowed bool
	Reason  string // set when denied
}

// Allowed constructs a positive decision.
func Allowed() Decision { return Decision{Allowed: true} }

// Denied constructs a denial carrying its reason.
func Denied(r string) Decision { return Decision{Reason: r} }
