package memdb

import (
	"testing"

	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/database"
)

func TestPutAndGet(t *testing.T) {
	db, err := database.Create(DbType)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	tx, err := db.Begin(true)
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if err := tx.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}

	tx2, err := db.Begin(false)
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	val, ok, err := tx2.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok || string(val) != "v" {
		t.Errorf("Get() = (%q, %v), want (\"v\", true)", val, ok)
	}
}

func TestReadYourOwnWrites(t *testing.T) {
	db, _ := database.Create(DbType)
	tx, _ := db.Begin(true)

	if _, ok, _ := tx.Get([]byte("a")); ok {
		t.Fatal("key should not exist before Put")
	}
	tx.Put([]byte("a"), []byte("1"))
	val, ok, err := tx.Get([]byte("a"))
	if err != nil || !ok || string(val) != "1" {
		t.Errorf("expected to read back the uncommitted write, got (%q, %v)", val, ok)
	}
}

func TestRollbackDiscardsWrites(t *testing.T) {
	db, _ := database.Create(DbType)
	tx, _ := db.Begin(true)
	tx.Put([]byte("a"), []byte("1"))
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() error: %v", err)
	}

	tx2, _ := db.Begin(false)
	if _, ok, _ := tx2.Get([]byte("a")); ok {
		t.Error("a rolled-back write should not be visible in a later transaction")
	}
}

func TestDeleteAndHasPrefix(t *testing.T) {
	db, _ := database.Create(DbType)
	tx, _ := db.Begin(true)
	tx.Put([]byte("p/1"), []byte("x"))
	tx.Put([]byte("p/2"), []byte("y"))
	tx.Commit()

	tx2, _ := db.Begin(true)
	has, err := tx2.Has([]byte("p/"))
	if err != nil || !has {
		t.Fatalf("Has(prefix) should find a match, got has=%v err=%v", has, err)
	}

	var keys []string
	tx2.ForEach([]byte("p/"), func(key, value []byte) er.R {
		keys = append(keys, string(key))
		return nil
	})
	if len(keys) != 2 {
		t.Errorf("ForEach should visit 2 keys, got %d", len(keys))
	}

	tx2.Delete([]byte("p/1"))
	has, _ = tx2.Has([]byte("p/1"))
	if has {
		t.Error("Has should be false immediately after Delete, within the same batch")
	}
	tx2.Commit()
}

func TestWriteToReadOnlyTxFails(t *testing.T) {
	db, _ := database.Create(DbType)
	tx, _ := db.Begin(false)
	if err := tx.Put([]byte("k"), []byte("v")); err == nil {
		t.Error("Put on a read-only Tx should fail")
	}
}
