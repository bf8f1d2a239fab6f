// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/nodecore/utxochain/chaincfg"

// Subsidy computes the block reward at height: InitialSubsidy halved
// every SubsidyHalvingInterval blocks, via integer right-shift, reaching
// zero once the shift amount exceeds the width of the value (around 64
// halvings) rather than wrapping or panicking.
func Subsidy(params *chaincfg.Params, height int32) chaincfg.Amount {
	halvings := height / params.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return params.InitialSubsidy >> uint(halvings)
}
