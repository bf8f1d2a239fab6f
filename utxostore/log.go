package utxostore

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
