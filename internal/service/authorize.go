package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rayansoft/daftar/internal/errs"
	"github.com/rayansoft/daftar/internal/model"
	"github.com/rayansoft/daftar/internal/repository"
)

// Authorizer decides whether a user may perform an action on a form. It
// is a decision oracle: it enforces nothing itself, and callers must
// refuse the action on anything other than an allowed decision.
type Authorizer interface {
	// Authorize resolves the permission record for (form, user-or-group)
	// and maps the action to its flag. A non-nil error means the answer
	// could not be determined (storage failure); it is not a denial, but
	// callers must still refuse the action.
	Authorize(ctx context.Context, claims model.IdentityClaims, formName string, action model.Action) (model.Decision, error)
}

type AuthorizerImpl struct {
	perms repository.PermissionRepository
}

// NewAuthorizer constructs an Authorizer over the given permission lookups.
func NewAuthorizer(perms repository.PermissionRepository) *AuthorizerImpl {
	return &AuthorizerImpl{perms: perms}
}

// Authorize is strictly fail-closed: a missing claim, an unknown action,
// or the absence of any matching record all deny. A per-user record, when
// present, fully determines the outcome; the group record is consulted
// only when no user override exists.
func (a *AuthorizerImpl) Authorize(ctx context.Context, claims model.IdentityClaims, formName string, action model.Action) (model.Decision, error) {
	if formName == "" {
		return model.Denied("empty form name"), nil
	}
	if _, ok := model.ParseAction(string(action)); !ok {
		return model.Denied(fmt.Sprintf("unknown action %q", action)), nil
	}
	if claims.UserID <= 0 || claims.PermissionGroup <= 0 {
		return model.Denied("incomplete identity claims"), nil
	}

	rec, err := a.perms.GetForUser(ctx, formName, claims.UserID)
	if errors.Is(err, errs.ErrNotFound) {
		rec, err = a.perms.GetForGroup(ctx, formName, claims.PermissionGroup)
		if errors.Is(err, errs.ErrNotFound) {
			return model.Denied(fmt.Sprintf("no permission record for form %q", formName)), nil
		}
	}
	if err != nil {
		// Could not determine; distinct from an authoritative denial.
		return model.Decision{}, err
	}

	if !rec.Allows(action) {
		return model.Denied(fmt.Sprintf("%s not granted on form %q", action, formName)), nil
	}
	return model.Allowed(), nil
}
