// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
)

// Header is a block header. MixDigest and Nonce only carry meaning under the
// "ethash" consensus algorithm; under "contract" consensus they are present
// on the wire but unchecked by the core.
type Header struct {
	ParentHash  common.Hash
	UncleHash   common.Hash
	Coinbase    common.Address
	Root        common.Hash // state root
	TxHash      common.Hash // transaction list root
	ReceiptHash common.Hash // receipts root
	Bloom       common.Bloom
	Difficulty  *big.Int
	Number      *big.Int
	GasLimit    *big.Int
	GasUsed     *big.Int
	Time        *big.Int
	Extra       []byte
	MixDigest   common.Hash
	Nonce       [8]byte
}

// EmptyUncleHash is UncleHash when a block declares no uncles.
var EmptyUncleHash = crypto.RlpHash([]Header{})

// Hash returns the Keccak-256 hash of the RLP encoding of the header,
// including the PoW fields. This is the value referenced as ParentHash by
// a child header.
func (h *Header) Hash() common.Hash {
	return crypto.RlpHash(h)
}

// SigningHash is the hash a "contract" consensus verifier checks a system
// signature against: the header without its PoW fields (MixDigest, Nonce).
func (h *Header) SigningHash() common.Hash {
	return crypto.RlpHash([]interface{}{
		h.ParentHash, h.UncleHash, h.Coinbase, h.Root, h.TxHash, h.ReceiptHash,
		h.Bloom, h.Difficulty, h.Number, h.GasLimit, h.GasUsed, h.Time, h.Extra,
	})
}

// CalcUncleHash returns the hash of the RLP encoding of uncles, the value
// stored as Header.UncleHash.
func CalcUncleHash(uncles []*Header) common.Hash {
	if len(uncles) == 0 {
		return EmptyUncleHash
	}
	return crypto.RlpHash(uncles)
}
