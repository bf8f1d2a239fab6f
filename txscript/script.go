// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txscript provides the script-template recognition and sigop
// accounting the block-connect engine needs: Pay-to-Script-Hash
// detection for BIP16, signature-operation counting against the block
// sigop budget, and unspendable-output detection for pruning. Opcode
// *execution* (full script interpretation) stays an opaque pure
// function supplied by a collaborator, see Verify.
package txscript

import (
	"github.com/nodecore/utxochain/txscript/opcode"
	"github.com/nodecore/utxochain/txscript/params"
	"github.com/nodecore/utxochain/txscript/parsescript"
)

// isScriptHash reports whether pops matches the P2SH template:
// OP_HASH160 <20-byte hash> OP_EQUAL.
func isScriptHash(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 3 &&
		pops[0].Opcode.Value == opcode.OP_HASH160 &&
		pops[1].Opcode.Value == opcode.OP_DATA_20 &&
		pops[2].Opcode.Value == opcode.OP_EQUAL
}

// IsPayToScriptHash reports whether script is in the standard
// pay-to-script-hash (P2SH) format.
func IsPayToScriptHash(script []byte) bool {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return false
	}
	return isScriptHash(pops)
}

// getSigOpCount implements GetSigOpCount/GetPreciseSigOpCount. When
// precise is true, an OP_CHECKMULTISIG(VERIFY) immediately preceded by
// a recognizable small-int pubkey count is counted exactly; otherwise
// (or when the pattern isn't recognized) the maximum is assumed.
func getSigOpCount(pops []parsescript.ParsedOpcode, precise bool) int {
	nSigs := 0
	for i, pop := range pops {
		switch pop.Opcode.Value {
		case opcode.OP_CHECKSIG, opcode.OP_CHECKSIGVERIFY:
			nSigs++
		case opcode.OP_CHECKMULTISIG, opcode.OP_CHECKMULTISIGVERIFY:
			if precise && i > 0 && opcode.IsSmallInt(pops[i-1].Opcode.Value) {
				nSigs += opcode.AsSmallInt(pops[i-1].Opcode.Value)
			} else {
				nSigs += params.MaxPubKeysPerMultiSig
			}
		}
	}
	return nSigs
}

// GetSigOpCount returns a quick, non-precise sigop count for script: an
// OP_CHECKSIG counts for 1 and an OP_CHECKMULTISIG for the maximum
// (params.MaxPubKeysPerMultiSig). If script fails to parse, the count
// accumulated up to the parse failure is returned.
func GetSigOpCount(script []byte) int {
	pops, _ := parsescript.ParseScript(script)
	return getSigOpCount(pops, false)
}

// GetPreciseSigOpCount returns the number of signature operations a
// spend of scriptPubKey by scriptSig costs. When bip16 is true and
// scriptPubKey is P2SH, scriptSig is searched for the redeem script to
// count its sigops precisely; otherwise scriptPubKey is counted
// directly. Malformed scripts count as 0 past the point of failure,
// matching the consensus rule that sigops are counted only up to a
// parse failure.
func GetPreciseSigOpCount(scriptSig, scriptPubKey []byte, bip16 bool) int {
	pops, _ := parsescript.ParseScript(scriptPubKey)

	if !(bip16 && isScriptHash(pops)) {
		return getSigOpCount(pops, true)
	}

	sigPops, err := parsescript.ParseScript(scriptSig)
	if err != nil {
		return 0
	}
	if !parsescript.IsPushOnly(sigPops) || len(sigPops) == 0 {
		return 0
	}

	redeemScript := sigPops[len(sigPops)-1].Data
	if len(redeemScript) == 0 {
		return 0
	}

	redeemPops, _ := parsescript.ParseScript(redeemScript)
	return getSigOpCount(redeemPops, true)
}

// IsUnspendable reports whether pkScript is guaranteed to fail at
// execution (an OP_RETURN data-carrier output), letting the engine
// avoid ever adding it to the UTXO set.
func IsUnspendable(pkScript []byte) bool {
	pops, err := parsescript.ParseScript(pkScript)
	if err != nil {
		return true
	}
	return len(pops) > 0 && pops[0].Opcode.Value == opcode.OP_RETURN
}

// Verify is the pluggable script-verification hook: full opcode
// execution is an external collaborator's job, not this package's. It
// defaults to a permissive pass so the engine can run standalone, and
// is meant to be replaced by an embedder that has a full interpreter.
type Verify func(sigScript, pkScript []byte) bool

// AlwaysValid is the default Verify implementation: every input passes.
// It lets this module exercise every other consensus check (BIP30,
// maturity, sigops, monetary conservation) without requiring a full
// script interpreter.
func AlwaysValid(_, _ []byte) bool {
	return true
}
