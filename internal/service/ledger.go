package service

import (
	"context"
	"errors"

	"github.com/rayansoft/daftar/internal/model"
	"github.com/rayansoft/daftar/internal/repository"
)

// LedgerService exposes the ledger read model.
type LedgerService interface {
	// StatementFor returns an account's entries in posting order with
	// running balances recomputed from the amounts, ignoring whatever
	// balance was stored.
	StatementFor(ctx context.Context, accountRef string) ([]model.LedgerEntry, error)
}

type LedgerServiceImpl struct {
	repo repository.LedgerRepository
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(repo repository.LedgerRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{repo: repo}
}

// StatementFor lists entries and recomputes balances as a pure fold.
func (s *LedgerServiceImpl) StatementFor(ctx context.Context, accountRef string) ([]model.LedgerEntry, error) {
	if accountRef == "" {
		return nil, errors.New("validation: empty account ref")
	}
	entries, err := s.repo.ListByAccount(ctx, accountRef)
	if err != nil {
		return nil, err
	}
	return model.RunningBalances(entries), nil
}
