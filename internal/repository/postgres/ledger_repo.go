package postgres

import (
	"context"

	"github.com/rayansoft/daftar/internal/model"
)

// LedgerRepo implements LedgerRepository over ledger_entries.
type LedgerRepo struct{ db *DB }

// NewLedgerRepo constructs a ledger repository.
func NewLedgerRepo(db *DB) *LedgerRepo { return &LedgerRepo{db: db} }

const qListByAccount = `
SELECT id, group_ref, sub_ref, detail_name, account_ref, narrative,
       debit, credit, sequence_no, posting_date, running_balance
FROM ledger_entries WHERE account_ref=$1
ORDER BY posting_date, sequence_no`

// ListByAccount returns the account's entries in posting order.
func (r *LedgerRepo) ListByAccount(ctx context.Context, accountRef string) ([]model.LedgerEntry, error) {
	rows, err := r.db.Pool.Query(ctx, qListByAccount, accountRef)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var out []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.LedgerGroupRef, &e.LedgerSubRef, &e.DetailName,
			&e.AccountRef, &e.Narrative, &e.Debit, &e.Credit,
			&e.SequenceNumber, &e.PostingDate, &e.RunningBalance); err != nil {
			return nil, translate(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return out, nil
}
