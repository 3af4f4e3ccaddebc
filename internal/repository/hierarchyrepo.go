// Package repository defines storage interfaces implemented by concrete backends.
package repository

import "context"

// HierarchyRepository provides point lookups over the four-level chart of
// accounts. The core issues only exact-key existence checks; no range
// queries or joins.
type HierarchyRepository interface {
	// CountChain returns how many rows exist at the given level whose
	// ancestor columns match chain[:len-1] and whose own number matches
	// chain[len-1]. With uniqueness enforced by storage the answer is 0
	// or 1; anything larger is a data-integrity problem the caller
	// surfaces, never resolves.
	CountChain(ctx context.Context, level int, chain []int64) (int64, error)
}
