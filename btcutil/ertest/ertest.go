// Package ertest adapts er.R values to testify's require package.
package ertest

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/stretchr/testify/require"
)

func RequireErr(t require.TestingT, err er.R, msgAndArgs ...interface{}) {
	require.Error(t, er.Native(err), msgAndArgs...)
}

func RequireNoErr(t require.TestingT, err er.R, msgAndArgs ...interface{}) {
	require.NoError(t, er.Native(err), msgAndArgs...)
}
