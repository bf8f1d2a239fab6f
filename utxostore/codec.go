package utxostore

import (
	"bytes"
	"encoding/binary"

	"github.com/nodecore/utxochain/blockchain"
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// Value-side encodings. Keys already carry (txid, index) / blockhash, so
// the encoded values below never repeat them.

// encodeOutputValue serializes everything a StoredOutput needs besides
// its key: value, script, height, is_coinbase.
func encodeOutputValue(out blockchain.StoredOutput) []byte {
	var buf bytes.Buffer
	writeInt64(&buf, int64(out.Value))
	writeBytes(&buf, out.Script)
	writeInt32(&buf, out.Height)
	writeBool(&buf, out.IsCoinBase)
	return buf.Bytes()
}

func decodeOutputValue(txid chainhash.Hash, index uint32, b []byte) (blockchain.StoredOutput, er.R) {
	r := bytes.NewReader(b)
	value, err := readInt64(r)
	if err != nil {
		return blockchain.StoredOutput{}, err
	}
	script, err := readBytes(r)
	if err != nil {
		return blockchain.StoredOutput{}, err
	}
	height, err := readInt32(r)
	if err != nil {
		return blockchain.StoredOutput{}, err
	}
	isCoinBase, err := readBool(r)
	if err != nil {
		return blockchain.StoredOutput{}, err
	}
	return blockchain.StoredOutput{
		TxID:       txid,
		Index:      index,
		Value:      chaincfg.Amount(value),
		Script:     script,
		Height:     height,
		IsCoinBase: isCoinBase,
	}, nil
}

const (
	undoKindFull   byte = 0
	undoKindPruned byte = 1
)

func encodeUndo(undo blockchain.StoredUndoableBlock) []byte {
	var buf bytes.Buffer
	if undo.Kind() == blockchain.KindFull {
		buf.WriteByte(undoKindFull)
		txs := undo.Transactions()
		writeUvarint(&buf, uint64(len(txs)))
		for _, tx := range txs {
			writeHash(&buf, tx.TxID)
			writeBool(&buf, tx.IsCoinBase)
			writeUvarint(&buf, uint64(len(tx.Inputs)))
			for _, in := range tx.Inputs {
				writeHash(&buf, in.PrevTxID)
				writeUint32(&buf, in.PrevIndex)
				writeBytes(&buf, in.SignatureScript)
			}
			writeUvarint(&buf, uint64(len(tx.Outputs)))
			for _, out := range tx.Outputs {
				writeInt64(&buf, int64(out.Value))
				writeBytes(&buf, out.Script)
			}
		}
	} else {
		buf.WriteByte(undoKindPruned)
		changes := undo.Changes()
		writeOutputList(&buf, changes.Created)
		writeOutputList(&buf, changes.Spent)
	}
	return buf.Bytes()
}

func decodeUndo(b []byte) (blockchain.StoredUndoableBlock, er.R) {
	r := bytes.NewReader(b)
	kind, e := r.ReadByte()
	if e != nil {
		return blockchain.StoredUndoableBlock{}, er.E(e)
	}
	if kind == undoKindFull {
		count, err := readUvarint(r)
		if err != nil {
			return blockchain.StoredUndoableBlock{}, err
		}
		txs := make([]blockchain.StoredTransaction, count)
		for i := range txs {
			txid, err := readHash(r)
			if err != nil {
				return blockchain.StoredUndoableBlock{}, err
			}
			isCoinBase, err := readBool(r)
			if err != nil {
				return blockchain.StoredUndoableBlock{}, err
			}
			numIn, err := readUvarint(r)
			if err != nil {
				return blockchain.StoredUndoableBlock{}, err
			}
			inputs := make([]blockchain.StoredInput, numIn)
			for j := range inputs {
				prevTxID, err := readHash(r)
				if err != nil {
					return blockchain.StoredUndoableBlock{}, err
				}
				prevIndex, err := readUint32(r)
				if err != nil {
					return blockchain.StoredUndoableBlock{}, err
				}
				sigScript, err := readBytes(r)
				if err != nil {
					return blockchain.StoredUndoableBlock{}, err
				}
				inputs[j] = blockchain.StoredInput{
					PrevTxID:        prevTxID,
					PrevIndex:       prevIndex,
					SignatureScript: sigScript,
				}
			}
			numOut, err := readUvarint(r)
			if err != nil {
				return blockchain.StoredUndoableBlock{}, err
			}
			outputs := make([]blockchain.StoredOutputSpec, numOut)
			for j := range outputs {
				value, err := readInt64(r)
				if err != nil {
					return blockchain.StoredUndoableBlock{}, err
				}
				script, err := readBytes(r)
				if err != nil {
					return blockchain.StoredUndoableBlock{}, err
				}
				outputs[j] = blockchain.StoredOutputSpec{Value: chaincfg.Amount(value), Script: script}
			}
			txs[i] = blockchain.StoredTransaction{
				TxID:       txid,
				IsCoinBase: isCoinBase,
				Inputs:     inputs,
				Outputs:    outputs,
			}
		}
		return blockchain.NewFullUndoableBlock(txs), nil
	}

	created, err := readOutputList(r)
	if err != nil {
		return blockchain.StoredUndoableBlock{}, err
	}
	spent, err := readOutputList(r)
	if err != nil {
		return blockchain.StoredUndoableBlock{}, err
	}
	return blockchain.NewPrunedUndoableBlock(blockchain.TxOutputChanges{Created: created, Spent: spent}), nil
}

func writeOutputList(buf *bytes.Buffer, outs []blockchain.StoredOutput) {
	writeUvarint(buf, uint64(len(outs)))
	for _, out := range outs {
		writeHash(buf, out.TxID)
		writeUint32(buf, out.Index)
		writeInt64(buf, int64(out.Value))
		writeBytes(buf, out.Script)
		writeInt32(buf, out.Height)
		writeBool(buf, out.IsCoinBase)
	}
}

func readOutputList(r *bytes.Reader) ([]blockchain.StoredOutput, er.R) {
	count, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	outs := make([]blockchain.StoredOutput, count)
	for i := range outs {
		txid, err := readHash(r)
		if err != nil {
			return nil, err
		}
		index, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		value, err := readInt64(r)
		if err != nil {
			return nil, err
		}
		script, err := readBytes(r)
		if err != nil {
			return nil, err
		}
		height, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		isCoinBase, err := readBool(r)
		if err != nil {
			return nil, err
		}
		outs[i] = blockchain.StoredOutput{
			TxID:       txid,
			Index:      index,
			Value:      chaincfg.Amount(value),
			Script:     script,
			Height:     height,
			IsCoinBase: isCoinBase,
		}
	}
	return outs, nil
}

// Primitive helpers. All multi-byte integers are big-endian; variable
// length byte strings are length-prefixed with a uvarint.

func writeBytes(buf *bytes.Buffer, b []byte) {
	writeUvarint(buf, uint64(len(b)))
	buf.Write(b)
}

func readBytes(r *bytes.Reader) ([]byte, er.R) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	if _, e := r.Read(b); e != nil {
		return nil, er.E(e)
	}
	return b, nil
}

func writeHash(buf *bytes.Buffer, h chainhash.Hash) {
	buf.Write(h[:])
}

func readHash(r *bytes.Reader) (chainhash.Hash, er.R) {
	var h chainhash.Hash
	if _, e := r.Read(h[:]); e != nil {
		return h, er.E(e)
	}
	return h, nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readUint32(r *bytes.Reader) (uint32, er.R) {
	var b [4]byte
	if _, e := r.Read(b[:]); e != nil {
		return 0, er.E(e)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func writeInt32(buf *bytes.Buffer, v int32) {
	writeUint32(buf, uint32(v))
}

func readInt32(r *bytes.Reader) (int32, er.R) {
	v, err := readUint32(r)
	return int32(v), err
}

func writeInt64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func readInt64(r *bytes.Reader) (int64, er.R) {
	var b [8]byte
	if _, e := r.Read(b[:]); e != nil {
		return 0, er.E(e)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func readBool(r *bytes.Reader) (bool, er.R) {
	b, e := r.ReadByte()
	if e != nil {
		return false, er.E(e)
	}
	return b != 0, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	buf.Write(b[:n])
}

func readUvarint(r *bytes.Reader) (uint64, er.R) {
	v, e := binary.ReadUvarint(r)
	if e != nil {
		return 0, er.E(e)
	}
	return v, nil
}
