package model

import (
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a single posted ledger line. A line is either a debit or
// a credit: the other side stays zero.
type LedgerEntry struct {
	ID             uuid.UUID
	LedgerGroupRef int64  // level-1 group ("kol")
	LedgerSubRef   int64  // level-2 sub-ledger ("moin")
	DetailName     string // free-text label
	AccountRef     string // composite account code
	Narrative      string
	Debit          decimal.Decimal // zero if credit side
	Credit         decimal.Decimal // zero if debit side
	SequenceNumber int64           // ordering key within a posting date
	PostingDate    int             // yyyymmdd
	RunningBalance decimal.Decimal // positive = debit balance
}

// RunningBalances recomputes running balances over a copy of entries
// ordered by (PostingDate, SequenceNumber). The input is not modified;
// recomputing over the result yields identical balances.
func RunningBalances(entries []LedgerEntry) []LedgerEntry {
	out := append([]LedgerEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PostingDate != out[j].PostingDate {
			return out[i].PostingDate < out[j].PostingDate
		}
		return out[i].SequenceNumber < out[j].SequenceNumber
	})
	bal := decimal.Zero
	for i := range out {
		bal = bal.Add(out[i].Debit).Sub(out[i].Credit)
		out[i].RunningBalance = bal
	}
	return out
}
