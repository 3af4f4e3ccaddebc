package postgres

import (
	"context"
	"fmt"
)

// HierarchyRepo implements HierarchyRepository over the kol/moin/taf1/taf2
// tables. Each level's rows are keyed by the full ancestor chain, so an
// existence check is a single COUNT by exact key.
type HierarchyRepo struct{ db *DB }

// NewHierarchyRepo constructs a hierarchy repository.
func NewHierarchyRepo(db *DB) *HierarchyRepo { return &HierarchyRepo{db: db} }

var countChainSQL = [...]string{
	1: `SELECT COUNT(*) FROM kol WHERE kol_id=$1`,
	2: `SELECT COUNT(*) FROM moin WHERE kol_id=$1 AND moin_id=$2`,
	3: `SELECT COUNT(*) FROM taf1 WHERE kol_id=$1 AND moin_id=$2 AND taf1_id=$3`,
	4: `SELECT COUNT(*) FROM taf2 WHERE kol_id=$1 AND moin_id=$2 AND taf1_id=$3 AND taf2_id=$4`,
}

// CountChain counts rows at level whose ancestor columns and own number
// match chain. chain holds the codes for levels 1..level in order.
func (r *HierarchyRepo) CountChain(ctx context.Context, level int, chain []int64) (int64, error) {
	if level < 1 || level > len(countChainSQL)-1 {
		return 0, fmt.Errorf("hierarchy: level %d out of range", level)
	}
	if len(chain) != level {
		return 0, fmt.Errorf("hierarchy: chain length %d for level %d", len(chain), level)
	}
	args := make([]any, len(chain))
	for i, c := range chain {
		args[i] = c
	}
	var n int64
	if err := r.db.Pool.QueryRow(ctx, countChainSQL[level], args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}
