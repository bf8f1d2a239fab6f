// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// UndoKind distinguishes the two exclusive forms a StoredUndoableBlock
// may take. Keeping the two forms in sync is handled by making them a
// tagged union rather than two independently-nilable fields: a value is
// constructed as one kind or the other, never both, and accessing the
// wrong kind's payload is a programming error caught immediately rather
// than silently read as an empty list.
type UndoKind int

const (
	// KindFull means the full transaction list is retained, enabling
	// re-verification (recent, unpruned blocks).
	KindFull UndoKind = iota

	// KindPruned means only the TxOutputChanges delta is retained; the
	// block must be trusted, not re-verified.
	KindPruned
)

// StoredUndoableBlock is the undo archive's record for one block, keyed
// by block hash: either the full StoredTransaction list (recent blocks,
// re-verifiable) or only the TxOutputChanges (pruned blocks). A store
// may discard either form as blocks bury past its retention horizon,
// but never both while the block is within the reorg depth it wishes to
// support: enforced here by construction, not convention.
type StoredUndoableBlock struct {
	kind         UndoKind
	transactions []StoredTransaction
	changes      *TxOutputChanges
}

// NewFullUndoableBlock records transactions as the full re-verifiable
// form.
func NewFullUndoableBlock(transactions []StoredTransaction) StoredUndoableBlock {
	return StoredUndoableBlock{kind: KindFull, transactions: transactions}
}

// NewPrunedUndoableBlock records changes as the pruned, trust-only
// delta form.
func NewPrunedUndoableBlock(changes TxOutputChanges) StoredUndoableBlock {
	return StoredUndoableBlock{kind: KindPruned, changes: &changes}
}

// Kind reports which form this record holds.
func (u StoredUndoableBlock) Kind() UndoKind {
	return u.kind
}

// Transactions returns the full transaction list. Panics if Kind is not
// KindFull: callers must check Kind first, since the two forms are
// exclusive and asking for the wrong one is a caller bug, not a runtime
// possibility.
func (u StoredUndoableBlock) Transactions() []StoredTransaction {
	if u.kind != KindFull {
		panic("StoredUndoableBlock.Transactions called on a pruned record")
	}
	return u.transactions
}

// Changes returns the pruned delta. Panics if Kind is not KindPruned.
func (u StoredUndoableBlock) Changes() TxOutputChanges {
	if u.kind != KindPruned {
		panic("StoredUndoableBlock.Changes called on a full record")
	}
	return *u.changes
}
