// Package parsescript turns a raw script into a list of ParsedOpcodes,
// the representation the rest of txscript matches templates against.
package parsescript

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/txscript/opcode"
	"github.com/nodecore/utxochain/txscript/params"
)

var ErrScriptTooLong = er.GenericErrorType.CodeWithDetail("ErrScriptTooLong",
	"script exceeds maximum size")
var ErrMalformedPush = er.GenericErrorType.CodeWithDetail("ErrMalformedPush",
	"script has an opcode pushing more data than is left")

// ParsedOpcode is one opcode plus whatever data it pushes, if any.
type ParsedOpcode struct {
	Opcode opcode.Opcode
	Data   []byte
}

// ParseScript decomposes script into its opcodes. A malformed script
// returns both an error and the partial list of opcodes successfully
// parsed before the failure, since consensus rules (sigop counting in
// particular) count only up to the first parse failure rather than
// rejecting the whole script.
func ParseScript(script []byte) ([]ParsedOpcode, er.R) {
	var pops []ParsedOpcode
	if len(script) > params.MaxScriptSize {
		return pops, ErrScriptTooLong.New("", nil)
	}
	i := 0
	for i < len(script) {
		op := script[i]
		i++
		switch {
		case opcode.IsDirectPush(op):
			n := int(op)
			if i+n > len(script) {
				return pops, ErrMalformedPush.New("", nil)
			}
			pops = append(pops, ParsedOpcode{
				Opcode: opcode.Opcode{Value: op, Length: n},
				Data:   script[i : i+n],
			})
			i += n
		default:
			if lenBytes, ok := opcode.PushDataLenBytes(op); ok {
				if i+lenBytes > len(script) {
					return pops, ErrMalformedPush.New("", nil)
				}
				n := 0
				for j := 0; j < lenBytes; j++ {
					n |= int(script[i+j]) << (8 * j)
				}
				i += lenBytes
				if i+n > len(script) {
					return pops, ErrMalformedPush.New("", nil)
				}
				pops = append(pops, ParsedOpcode{
					Opcode: opcode.Opcode{Value: op, Length: n},
					Data:   script[i : i+n],
				})
				i += n
			} else {
				pops = append(pops, ParsedOpcode{Opcode: opcode.Opcode{Value: op, Length: 0}})
			}
		}
	}
	return pops, nil
}

// IsPushOnly reports whether every opcode in pops is a data push or a
// small-int push, the requirement a P2SH signature script must satisfy.
func IsPushOnly(pops []ParsedOpcode) bool {
	for _, pop := range pops {
		if opcode.IsSmallInt(pop.Opcode.Value) {
			continue
		}
		if opcode.IsDirectPush(pop.Opcode.Value) {
			continue
		}
		if _, ok := opcode.PushDataLenBytes(pop.Opcode.Value); ok {
			continue
		}
		if pop.Opcode.Value == opcode.OP_1NEGATE {
			continue
		}
		return false
	}
	return true
}
