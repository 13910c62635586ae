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

// Package trie implements the authenticated key-value structure the core
// uses to derive the three Merkle roots it fills or checks on every block:
// state root, transaction list root and receipts root. The persistence,
// proof and pruning machinery of a production trie is a separate concern
// (see PURPOSE & SCOPE); this package only needs to insert an ordered set
// of key/value pairs into a fresh tree and read back its root hash.
package trie

import (
	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
	"github.com/eth-classic-core/chainstate/rlp"
)

// Trie is a Merkle-Patricia trie. The zero value is not valid; use New.
type Trie struct {
	root node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{}
}

// Update inserts or overwrites the value for key.
func (t *Trie) Update(key, value []byte) {
	k := keybytesToHex(key)
	if len(value) == 0 {
		return
	}
	t.root = t.insert(t.root, k, valueNode(value))
}

func (t *Trie) insert(n node, key []byte, value node) node {
	if len(key) == 0 {
		return value
	}
	switch cur := n.(type) {
	case nil:
		return &shortNode{Key: append([]byte(nil), key...), Val: value}

	case *shortNode:
		match := prefixLen(key, cur.Key)
		if match == len(cur.Key) {
			// key extends cur.Key: recurse into the existing value/branch.
			newVal := t.insert(cur.Val, key[match:], value)
			return &shortNode{Key: cur.Key, Val: newVal}
		}
		// Branch out: split into a (possibly empty) shared prefix shortNode
		// wrapping a fullNode with the two diverging continuations.
		branch := &fullNode{}
		branch = t.placeIntoBranch(branch, cur.Key[match:], cur.Val)
		branch = t.placeIntoBranch(branch, key[match:], value)
		if match == 0 {
			return branch
		}
		return &shortNode{Key: cur.Key[:match], Val: branch}

	case *fullNode:
		return t.placeIntoBranch(cur.copy(), key, value)

	default:
		panic("trie: invalid node type during insert")
	}
}

// placeIntoBranch inserts (key, value) under branch, where key has already
// had any shared prefix stripped off by the caller.
func (t *Trie) placeIntoBranch(branch *fullNode, key []byte, value node) *fullNode {
	if len(key) == 0 {
		branch.Children[16] = value
		return branch
	}
	idx := key[0]
	branch.Children[idx] = t.insert(branch.Children[idx], key[1:], value)
	return branch
}

// Hash returns the root hash of the trie.
func (t *Trie) Hash() common.Hash {
	if t.root == nil {
		return emptyRoot
	}
	h, _ := hashNodeRLP(t.root)
	if len(h) < 32 {
		// Small tries (a handful of short-lived receipts) can encode under
		// 32 bytes; hash the canonical encoding directly so short and long
		// tries are both addressed by a 32-byte digest.
		return crypto.Keccak256Hash(h)
	}
	return common.BytesToHash(h)
}

// emptyRoot is the hash of an RLP-encoded empty byte string, the canonical
// root hash of a trie with no entries.
var emptyRoot = crypto.Keccak256Hash([]byte{0x80})

// hashNodeRLP returns either the RLP encoding of n (if under 32 bytes) or
// its Keccak-256 hash (if 32 bytes or more), per the trie's node-embedding
// rule: small subtrees are embedded inline, large ones are referenced.
func hashNodeRLP(n node) ([]byte, error) {
	enc, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	if len(enc) < 32 {
		return enc, nil
	}
	return crypto.Keccak256(enc), nil
}

func encodeNode(n node) ([]byte, error) {
	switch n := n.(type) {
	case nil:
		return []byte{0x80}, nil
	case valueNode:
		return rlp.EncodeToBytes([]byte(n))
	case hashNode:
		return rlp.EncodeToBytes([]byte(n))
	case *shortNode:
		valEnc, err := childEncoding(n.Val)
		if err != nil {
			return nil, err
		}
		keyEnc, err := rlp.EncodeToBytes(hexToCompact(n.Key))
		if err != nil {
			return nil, err
		}
		return rlp.EncodeListOfBytes([][]byte{keyEnc, valEnc}), nil
	case *fullNode:
		items := make([][]byte, 17)
		for i := 0; i < 17; i++ {
			enc, err := childEncoding(n.Children[i])
			if err != nil {
				return nil, err
			}
			items[i] = enc
		}
		return rlp.EncodeListOfBytes(items), nil
	default:
		panic("trie: invalid node type during encode")
	}
}

// childEncoding returns the already-RLP-encoded representation of a child
// node, collapsing it to its hash first if its own encoding is 32 bytes or
// more (node embedding).
func childEncoding(n node) ([]byte, error) {
	if n == nil {
		return []byte{0x80}, nil
	}
	enc, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	if len(enc) < 32 {
		return enc, nil
	}
	h := crypto.Keccak256(enc)
	return rlp.EncodeToBytes(h)
}
