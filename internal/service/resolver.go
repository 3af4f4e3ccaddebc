// Package service contains the account-hierarchy resolver, the permission
// engine, claims extraction, and the ledger read model.
package service

import (
	"context"
	"fmt"

	"github.com/rayansoft/daftar/internal/errs"
	"github.com/rayansoft/daftar/internal/model"
	"github.com/rayansoft/daftar/internal/repository"
)

// Resolver maps hierarchy levels and ancestor chains onto validated
// account-level descriptors and composite keys.
type Resolver interface {
	// Resolve validates the ancestor chain for a level and returns the
	// level's descriptor with its storage binding.
	Resolve(ctx context.Context, level int, ancestors []int64) (*model.AccountLevelDescriptor, error)
	// DecomposeCustomerReference turns a flattened (kol, moin, detail)
	// triple into the composite key of the customer's detail account.
	DecomposeCustomerReference(ctx context.Context, groupCode, subCode, detailNumber *int64) (model.CompositeKey, error)
}

type levelBinding struct{ table, idField string }

// Static level bindings; level 3 is taf1, level 4 is taf2.
var levelBindings = [...]levelBinding{
	1: {"kol", "kol_id"},
	2: {"moin", "moin_id"},
	3: {"taf1", "taf1_id"},
	4: {"taf2", "taf2_id"},
}

type ResolverImpl struct {
	repo repository.HierarchyRepository
}

// NewResolver constructs a Resolver over the given hierarchy lookups.
func NewResolver(repo repository.HierarchyRepository) *ResolverImpl {
	return &ResolverImpl{repo: repo}
}

// Resolve checks arity and non-negativity first, then confirms each
// ancestor code exists at its own level under its own prefix. Only then
// is the descriptor returned. Level 1 has no ancestors to confirm.
func (r *ResolverImpl) Resolve(ctx context.Context, level int, ancestors []int64) (*model.AccountLevelDescriptor, error) {
	if level < 1 || level > model.MaxLevel {
		return nil, fmt.Errorf("%w: level %d out of range 1..%d", errs.ErrInvalidArity, level, model.MaxLevel)
	}
	if len(ancestors) != level-1 {
		return nil, fmt.Errorf("%w: level %d takes %d ancestors, got %d", errs.ErrInvalidArity, level, level-1, len(ancestors))
	}
	for i, c := range ancestors {
		if c < 0 {
			return nil, fmt.Errorf("%w: negative code %d for level %d", errs.ErrInvalidArity, c, i+1)
		}
	}
	for i := range ancestors {
		lvl := i + 1
		n, err := r.repo.CountChain(ctx, lvl, ancestors[:lvl])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: level %d code %d", errs.ErrUnknownAncestor, lvl, ancestors[i])
		}
		if n > 1 {
			return nil, fmt.Errorf("%w: level %d chain %v matched %d rows", errs.ErrAmbiguousMatch, lvl, ancestors[:lvl], n)
		}
	}

	b := levelBindings[level]
	d := &model.AccountLevelDescriptor{
		Level:       level,
		TargetTable: b.table,
		IDFieldName: b.idField,
	}
	slots := []**int64{&d.GroupCode, &d.SubCode, &d.Detail1ParentCode, &d.Detail2ParentCode}
	for i := range ancestors {
		c := ancestors[i]
		*slots[i] = &c
	}
	return d, nil
}

// ComposeKey builds the composite account key from a validated
// descriptor: the ancestor chain in level order, plus the descriptor's
// own code when known. Pure; the descriptor is assumed already validated.
func ComposeKey(d *model.AccountLevelDescriptor) model.CompositeKey {
	codes := d.Ancestors()
	if d.OwnCode != nil {
		codes = append(codes, *d.OwnCode)
	}
	return model.CompositeKey{Level: d.Level, Codes: codes}
}

// DecomposeCustomerReference handles external payloads that carry a
// flattened (kol, moin, detail) triple instead of a resolved descriptor.
// Group and sub-ledger codes are mandatory; the detail number anchors the
// specific customer account at level 3.
func (r *ResolverImpl) DecomposeCustomerReference(ctx context.Context, groupCode, subCode, detailNumber *int64) (model.CompositeKey, error) {
	if groupCode == nil || subCode == nil || detailNumber == nil {
		return model.CompositeKey{}, fmt.Errorf("%w: group, sub-ledger and detail codes are all required", errs.ErrInvalidArity)
	}
	if *detailNumber < 0 {
		return model.CompositeKey{}, fmt.Errorf("%w: negative detail number %d", errs.ErrInvalidArity, *detailNumber)
	}

	d, err := r.Resolve(ctx, 3, []int64{*groupCode, *subCode})
	if err != nil {
		return model.CompositeKey{}, err
	}

	chain := []int64{*groupCode, *subCode, *detailNumber}
	n, err := r.repo.CountChain(ctx, 3, chain)
	if err != nil {
		return model.CompositeKey{}, err
	}
	if n == 0 {
		return model.CompositeKey{}, fmt.Errorf("%w: level 3 code %d", errs.ErrUnknownAncestor, *detailNumber)
	}
	if n > 1 {
		return model.CompositeKey{}, fmt.Errorf("%w: level 3 chain %v matched %d rows", errs.ErrAmbiguousMatch, chain, n)
	}

	own := *detailNumber
	d.OwnCode = &own
	return ComposeKey(d), nil
}
