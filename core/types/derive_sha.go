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
	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/rlp"
	"github.com/eth-classic-core/chainstate/trie"
)

// DerivableList is a list whose Merkle root can be derived: anything that
// can hand back the RLP encoding of its i-th element on demand. Both
// Transactions and Receipts implement it.
type DerivableList interface {
	Len() int
	GetRlp(i int) []byte
}

// EmptyRootHash is the root of a trie with no entries, the TxHash/ReceiptHash
// of a block with no transactions or receipts.
var EmptyRootHash = emptyTrieRoot()

func emptyTrieRoot() common.Hash {
	return trie.New().Hash()
}

// DeriveSha computes the Merkle root of list by inserting (rlp(i), rlp(list[i]))
// into a fresh scratch trie and reading back its root hash.
func DeriveSha(list DerivableList) common.Hash {
	t := trie.New()
	for i := 0; i < list.Len(); i++ {
		key, err := rlp.EncodeToBytes(uint64(i))
		if err != nil {
			panic(err)
		}
		t.Update(key, list.GetRlp(i))
	}
	return t.Hash()
}

// CreateReceiptsBloom ORs together the bloom of every receipt in receipts --
// the value stored as Header.Bloom.
func CreateReceiptsBloom(receipts Receipts) common.Bloom {
	var bin common.Bloom
	for _, r := range receipts {
		bin.OrBloom(r.Bloom)
	}
	return bin
}
