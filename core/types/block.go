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
	"github.com/eth-classic-core/chainstate/rlp"
)

// Block is a header plus its transaction list and uncle headers.
type Block struct {
	Header       *Header
	Transactions []*Transaction
	Uncles       []*Header
}

// NewBlock assembles a block, deriving UncleHash, TxHash and ReceiptHash
// into a copy of header. Callers in creation mode build a Block this way and
// then let the block processor overwrite Root after execution.
func NewBlock(header *Header, txs []*Transaction, uncles []*Header, receipts Receipts) *Block {
	h := CopyHeader(header)
	h.UncleHash = CalcUncleHash(uncles)
	if len(txs) == 0 {
		h.TxHash = EmptyRootHash
	} else {
		h.TxHash = DeriveSha(Transactions(txs))
	}
	if len(receipts) == 0 {
		h.ReceiptHash = EmptyRootHash
	} else {
		h.ReceiptHash = DeriveSha(receipts)
		h.Bloom = CreateReceiptsBloom(receipts)
	}
	return &Block{Header: h, Transactions: txs, Uncles: uncles}
}

// CopyHeader returns a deep-enough copy of h for safe independent mutation.
func CopyHeader(h *Header) *Header {
	cpy := *h
	if h.Difficulty != nil {
		cpy.Difficulty = new(big.Int).Set(h.Difficulty)
	}
	if h.Number != nil {
		cpy.Number = new(big.Int).Set(h.Number)
	}
	if h.GasLimit != nil {
		cpy.GasLimit = new(big.Int).Set(h.GasLimit)
	}
	if h.GasUsed != nil {
		cpy.GasUsed = new(big.Int).Set(h.GasUsed)
	}
	if h.Time != nil {
		cpy.Time = new(big.Int).Set(h.Time)
	}
	if len(h.Extra) > 0 {
		cpy.Extra = common.CopyBytes(h.Extra)
	}
	return &cpy
}

func (b *Block) Number() *big.Int     { return b.Header.Number }
func (b *Block) GasLimit() *big.Int   { return b.Header.GasLimit }
func (b *Block) GasUsed() *big.Int    { return b.Header.GasUsed }
func (b *Block) Difficulty() *big.Int { return b.Header.Difficulty }
func (b *Block) Time() *big.Int       { return b.Header.Time }
func (b *Block) Coinbase() common.Address { return b.Header.Coinbase }
func (b *Block) Hash() common.Hash    { return b.Header.Hash() }
func (b *Block) ParentHash() common.Hash { return b.Header.ParentHash }

// Transactions implements DerivableList for a plain transaction slice.
type Transactions []*Transaction

func (t Transactions) Len() int { return len(t) }
func (t Transactions) GetRlp(i int) []byte {
	enc, err := rlp.EncodeToBytes(&t[i].data)
	if err != nil {
		panic(err)
	}
	return enc
}
