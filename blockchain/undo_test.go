// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "testing"

func TestUndoableBlockKinds(t *testing.T) {
	full := NewFullUndoableBlock([]StoredTransaction{{}})
	if full.Kind() != KindFull {
		t.Error("NewFullUndoableBlock should report KindFull")
	}
	if len(full.Transactions()) != 1 {
		t.Error("Transactions() should return what was passed in")
	}

	pruned := NewPrunedUndoableBlock(TxOutputChanges{Created: []StoredOutput{{}}})
	if pruned.Kind() != KindPruned {
		t.Error("NewPrunedUndoableBlock should report KindPruned")
	}
	if len(pruned.Changes().Created) != 1 {
		t.Error("Changes() should return what was passed in")
	}
}

func TestUndoableBlockWrongAccessorPanics(t *testing.T) {
	t.Run("Transactions on pruned", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		NewPrunedUndoableBlock(TxOutputChanges{}).Transactions()
	})

	t.Run("Changes on full", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		NewFullUndoableBlock(nil).Changes()
	})
}
