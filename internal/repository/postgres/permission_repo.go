package postgres

import (
	"context"

	"github.com/rayansoft/daftar/internal/model"
)

// PermissionRepo implements PermissionRepository over form_permissions.
// Group grants and per-user overrides live in the same table, told apart
// by subject_kind.
type PermissionRepo struct{ db *DB }

// NewPermissionRepo constructs a permission repository.
func NewPermissionRepo(db *DB) *PermissionRepo { return &PermissionRepo{db: db} }

const qGetPermission = `
SELECT form_name, subject_ref, can_run, can_view, can_create, can_update, can_delete
FROM form_permissions WHERE form_name=$1 AND subject_kind=$2 AND subject_ref=$3`

func (r *PermissionRepo) get(ctx context.Context, formName, kind string, ref int64) (*model.PermissionRecord, error) {
	row := r.db.Pool.QueryRow(ctx, qGetPermission, formName, kind, ref)
	var p model.PermissionRecord
	if err := row.Scan(&p.FormName, &p.SubjectRef, &p.CanRun, &p.CanView, &p.CanCreate, &p.CanUpdate, &p.CanDelete); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// GetForGroup selects the group-level record for a form.
func (r *PermissionRepo) GetForGroup(ctx context.Context, formName string, groupRef int64) (*model.PermissionRecord, error) {
	return r.get(ctx, formName, "group", groupRef)
}

// GetForUser selects the per-user override record for a form.
func (r *PermissionRepo) GetForUser(ctx context.Context, formName string, userID int64) (*model.PermissionRecord, error) {
	return r.get(ctx, formName, "user", userID)
}
