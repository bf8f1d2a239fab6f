// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import "github.com/nodecore/utxochain/btcutil/er"

// Err identifies a kind of error for the database package.
var Err er.ErrorType = er.NewErrorType("database.Err")

var (
	// ErrDbTypeRegistered indicates two different drivers attempted to
	// register under the same database type name.
	ErrDbTypeRegistered = Err.Code("ErrDbTypeRegistered")

	// ErrDbUnknownType indicates there is no driver registered for the
	// requested database type.
	ErrDbUnknownType = Err.Code("ErrDbUnknownType")

	// ErrTxClosed indicates an attempt to use a transaction that has
	// already been committed or rolled back.
	ErrTxClosed = Err.Code("ErrTxClosed")

	// ErrTxNotWritable indicates a write operation was attempted
	// against a read-only transaction.
	ErrTxNotWritable = Err.Code("ErrTxNotWritable")

	// ErrKeyRequired indicates an attempt to operate on a zero-length
	// key.
	ErrKeyRequired = Err.Code("ErrKeyRequired")

	// ErrDriverSpecific indicates the wrapped error is a driver-local
	// failure opaque to this package.
	ErrDriverSpecific = Err.Code("ErrDriverSpecific")
)
