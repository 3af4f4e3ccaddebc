package model

import (
	"strconv"
	"strings"
)

// MaxLevel is the deepest account hierarchy level. There is no level 5.
const MaxLevel = 4

// AccountLevelDescriptor binds one hierarchy level to its storage table
// and carries the validated ancestor chain above it. For level L exactly
// the ancestors for levels 1..L-1 are populated; deeper fields stay nil.
type AccountLevelDescriptor struct {
	Level       int
	TargetTable string // storage table holding this level's rows
	IDFieldName string // column holding this level's own number

	GroupCode         *int64 // level-1 ancestor ("kol")
	SubCode           *int64 // level-2 ancestor ("moin")
	Detail1ParentCode *int64 // level-3 ancestor, set for level 4
	Detail2ParentCode *int64 // reserved; always nil while MaxLevel is 4

	OwnCode *int64 // this level's own number, when known to the caller
}

// Ancestors returns the populated ancestor codes in level order.
func (d AccountLevelDescriptor) Ancestors() []int64 {
	out := make([]int64, 0, d.Level-1)
	for _, p := range []*int64{d.GroupCode, d.SubCode, d.Detail1ParentCode, d.Detail2ParentCode} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// CompositeKey is the ordered ancestor-chain tuple identifying a ledger
// account at a given level. Codes hold the populated prefix: the L-1
// ancestors, plus the account's own code when it is known.
type CompositeKey struct {
	Level int
	Codes []int64
}

// Equal reports whether two keys identify the same account: same level
// and all populated components equal.
func (k CompositeKey) Equal(o CompositeKey) bool {
	if k.Level != o.Level || len(k.Codes) != len(o.Codes) {
		return false
	}
	for i := range k.Codes {
		if k.Codes[i] != o.Codes[i] {
			return false
		}
	}
	return true
}

// String renders the key as "10/20/300" for logs and diagnostics.
func (k CompositeKey) String() string {
	parts := make([]string, len(k.Codes))
	for i, c := range k.Codes {
		parts[i] = strconv.FormatInt(c, 10)
	}
	return strings.Join(parts, "/")
}
