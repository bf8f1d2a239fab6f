// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database provides the pluggable, transactional key-value
// abstraction the UTXO store is built on: a small Driver registry so
// the engine's storage backend can be swapped without touching
// blockchain.
package database

import "github.com/nodecore/utxochain/btcutil/er"

// Tx is a single read/write transaction against a DB. Read-your-own-
// writes is required: a Get after a Put in the same Tx, before Commit,
// must observe the write: the block-connect engine relies on this to
// see outputs a transaction earlier in the same block just created.
type Tx interface {
	// Get returns the value stored at key, or (nil, false) if absent.
	Get(key []byte) ([]byte, bool, er.R)

	// Put stores value at key, overwriting any existing entry.
	Put(key []byte, value []byte) er.R

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) er.R

	// Has reports whether at least one key with the given prefix
	// exists, short-circuiting the scan after the first match.
	Has(prefix []byte) (bool, er.R)

	// ForEach calls fn once per key/value pair whose key has the given
	// prefix, in key order. Returning er.LoopBreak from fn stops the
	// scan without it being treated as a failure.
	ForEach(prefix []byte, fn func(key, value []byte) er.R) er.R

	// Commit publishes all mutations made through this Tx. The Tx may
	// not be used afterward.
	Commit() er.R

	// Rollback discards all mutations made through this Tx. The Tx may
	// not be used afterward.
	Rollback() er.R

	// Writable reports whether this Tx may mutate the store.
	Writable() bool
}

// DB is a handle to an open backing store.
type DB interface {
	// Begin starts a new transaction. Nesting is not supported: the
	// block-connect engine never begins a second Tx while one is open.
	Begin(writable bool) (Tx, er.R)

	// Close releases the DB's resources. No Tx may be open.
	Close() er.R
}

// CreateDBFunc is a function drivers supply to create and open a new
// database of their type, and OpenDBFunc to open an existing one.
type CreateDBFunc func(args ...interface{}) (DB, er.R)
type OpenDBFunc func(args ...interface{}) (DB, er.R)

// Driver defines the structure used to register a database backend
// with this package.
type Driver struct {
	DbType string
	Create CreateDBFunc
	Open   OpenDBFunc
}

var drivers = make(map[string]*Driver)

// RegisterDriver adds a backend database driver to available interfaces.
// ErrDbTypeRegistered will be returned if the database type for the
// driver has already been registered.
func RegisterDriver(driver Driver) er.R {
	if _, exists := drivers[driver.DbType]; exists {
		return ErrDbTypeRegistered.New(driver.DbType, nil)
	}
	d := driver
	drivers[driver.DbType] = &d
	return nil
}

// SupportedDrivers returns a slice of strings naming the registered
// driver types, for testing and diagnostics.
func SupportedDrivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// Create initializes and opens a database of the given type, using any
// additional arguments the driver requires.
func Create(dbType string, args ...interface{}) (DB, er.R) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, ErrDbUnknownType.New(dbType, nil)
	}
	return drv.Create(args...)
}

// Open opens an existing database of the given type.
func Open(dbType string, args ...interface{}) (DB, er.R) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, ErrDbUnknownType.New(dbType, nil)
	}
	return drv.Open(args...)
}
