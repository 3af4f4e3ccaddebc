package repository

import (
	"context"

	"github.com/rayansoft/daftar/internal/model"
)

// PermissionRepository provides point lookups of form permission records.
// A miss is errs.ErrNotFound; infrastructure failures wrap
// errs.ErrStorageUnavailable so callers can keep authorization
// fail-closed without mistaking an outage for a denial.
type PermissionRepository interface {
	// GetForGroup loads the group-level record for a form.
	GetForGroup(ctx context.Context, formName string, groupRef int64) (*model.PermissionRecord, error)
	// GetForUser loads the per-user override record for a form.
	GetForUser(ctx context.Context, formName string, userID int64) (*model.PermissionRecord, error)
}
