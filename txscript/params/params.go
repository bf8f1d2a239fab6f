// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params holds script-level constants shared by the parser and
// the sigop/template logic built on it.
package params

const (
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// MaxPubKeysPerMultiSig bounds the assumed signature count for an
	// OP_CHECKMULTISIG whose pubkey-count push isn't recognized.
	MaxPubKeysPerMultiSig = 20
)
