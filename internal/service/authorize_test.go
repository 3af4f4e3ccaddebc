package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rayansoft/daftar/internal/errs"
	"github.com/rayansoft/daftar/internal/model"
	"github.com/rayansoft/daftar/internal/repository"
)

type fakePermRepo struct {
	userRecs  map[string]*model.PermissionRecord // "form/ref"
	groupRecs map[string]*model.PermissionRecord
	userErr   error
	groupErr  error
}

var _ repository.PermissionRepository = (*fakePermRepo)(nil)

func permKey(form string, ref int64) string { return fmt.Sprintf("%s/%d", form, ref) }

func (f *fakePermRepo) GetForUser(_ context.Context, form string, userID int64) (*model.PermissionRecord, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	if rec, ok := f.userRecs[permKey(form, userID)]; ok {
		return rec, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakePermRepo) GetForGroup(_ context.Context, form string, groupRef int64) (*model.PermissionRecord, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	if rec, ok := f.groupRecs[permKey(form, groupRef)]; ok {
		return rec, nil
	}
	return nil, errs.ErrNotFound
}

func claims(user, group int64) model.IdentityClaims {
	return model.IdentityClaims{UserID: user, PermissionGroup: group}
}

func TestAuthorize_GroupRecordFlags(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := NewAuthorizer(&fakePermRepo{groupRecs: map[string]*model.PermissionRecord{
		permKey("Customers", 5): {FormName: "Customers", SubjectRef: 5, CanUpdate: true},
	}})

	dec, err := a.Authorize(ctx, claims(1, 5), "Customers", model.ActionUpdate)
	if err != nil || !dec.Allowed {
		t.Fatalf("update for group 5: want allowed, got %+v err=%v", dec, err)
	}

	dec, err = a.Authorize(ctx, claims(1, 5), "Customers", model.ActionDelete)
	if err != nil || dec.Allowed {
		t.Fatalf("delete for group 5: want denied, got %+v err=%v", dec, err)
	}

	// No record for group 7 at all.
	dec, err = a.Authorize(ctx, claims(1, 7), "Customers", model.ActionUpdate)
	if err != nil || dec.Allowed {
		t.Fatalf("group 7: want denied, got %+v err=%v", dec, err)
	}
}

func TestAuthorize_FailClosedOnMiss(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := NewAuthorizer(&fakePermRepo{})

	for _, act := range []model.Action{model.ActionRun, model.ActionView, model.ActionCreate, model.ActionUpdate, model.ActionDelete} {
		dec, err := a.Authorize(ctx, claims(1, 5), "Journal", act)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", act, err)
		}
		if dec.Allowed {
			t.Fatalf("%s: absence of a record must deny", act)
		}
		if dec.Reason == "" {
			t.Fatalf("%s: denial must carry a reason", act)
		}
	}
}

func TestAuthorize_UserOverrideTakesPrecedence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := NewAuthorizer(&fakePermRepo{
		userRecs: map[string]*model.PermissionRecord{
			permKey("Customers", 42): {FormName: "Customers", SubjectRef: 42, CanView: true},
		},
		groupRecs: map[string]*model.PermissionRecord{
			permKey("Customers", 5): {FormName: "Customers", SubjectRef: 5, CanView: true, CanDelete: true},
		},
	})

	// The group grants delete, but the user override does not: override wins.
	dec, err := a.Authorize(ctx, claims(42, 5), "Customers", model.ActionDelete)
	if err != nil || dec.Allowed {
		t.Fatalf("user override must decide: got %+v err=%v", dec, err)
	}
	dec, err = a.Authorize(ctx, claims(42, 5), "Customers", model.ActionView)
	if err != nil || !dec.Allowed {
		t.Fatalf("user override grants view: got %+v err=%v", dec, err)
	}

	// No override for user 43: the group record decides.
	dec, err = a.Authorize(ctx, claims(43, 5), "Customers", model.ActionDelete)
	if err != nil || !dec.Allowed {
		t.Fatalf("group record decides for user 43: got %+v err=%v", dec, err)
	}
}

func TestAuthorize_MalformedInputsDeny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := NewAuthorizer(&fakePermRepo{groupRecs: map[string]*model.PermissionRecord{
		permKey("Customers", 5): {FormName: "Customers", SubjectRef: 5, CanRun: true},
	}})

	if dec, err := a.Authorize(ctx, claims(1, 5), "", model.ActionRun); err != nil || dec.Allowed {
		t.Fatalf("empty form: want denied, got %+v err=%v", dec, err)
	}
	if dec, err := a.Authorize(ctx, claims(1, 5), "Customers", model.Action("export")); err != nil || dec.Allowed {
		t.Fatalf("unknown action: want denied, got %+v err=%v", dec, err)
	}
	if dec, err := a.Authorize(ctx, claims(1, 0), "Customers", model.ActionRun); err != nil || dec.Allowed {
		t.Fatalf("missing group claim: want denied, got %+v err=%v", dec, err)
	}
	if dec, err := a.Authorize(ctx, claims(0, 5), "Customers", model.ActionRun); err != nil || dec.Allowed {
		t.Fatalf("missing user claim: want denied, got %+v err=%v", dec, err)
	}
}

func TestAuthorize_StorageFailureIsNotADecision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := fmt.Errorf("%w: timeout", errs.ErrStorageUnavailable)

	a := NewAuthorizer(&fakePermRepo{userErr: boom})
	_, err := a.Authorize(ctx, claims(1, 5), "Customers", model.ActionView)
	if !errors.Is(err, errs.ErrStorageUnavailable) {
		t.Fatalf("user lookup failure must surface: got %v", err)
	}

	a = NewAuthorizer(&fakePermRepo{groupErr: boom})
	_, err = a.Authorize(ctx, claims(1, 5), "Customers", model.ActionView)
	if !errors.Is(err, errs.ErrStorageUnavailable) {
		t.Fatalf("group lookup failure must surface: got %v", err)
	}
}
