// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/nodecore/utxochain/pktlog"

// log is silent until the embedding application calls UseLogger.
var log pktlog.Logger = pktlog.Disabled

func init() {
	DisableLog()
}

// DisableLog disables all package log output.
func DisableLog() {
	log = pktlog.Disabled
}

// UseLogger directs this package's log output through logger.
func UseLogger(logger pktlog.Logger) {
	log = logger
}
