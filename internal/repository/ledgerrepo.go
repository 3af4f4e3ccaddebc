package repository

import (
	"context"

	"github.com/rayansoft/daftar/internal/model"
)

// LedgerRepository provides read access to posted ledger lines.
type LedgerRepository interface {
	// ListByAccount returns all entries for an account ordered by
	// (posting_date, sequence_no). RunningBalance is returned as stored;
	// callers recompute it when they need an authoritative statement.
	ListByAccount(ctx context.Context, accountRef string) ([]model.LedgerEntry, error)
}
