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

package trie

// node is the in-memory representation of a trie node: a fullNode
// (16-way branch plus a value slot), a shortNode (leaf or extension), a
// valueNode (raw stored bytes) or a hashNode (a child collapsed to its
// hash because its own encoding was 32 bytes or more).
type node interface{}

type (
	fullNode struct {
		Children [17]node
	}
	shortNode struct {
		Key []byte // hex-encoded nibbles, possibly terminated
		Val node
	}
	hashNode  []byte
	valueNode []byte
)

func (n *fullNode) copy() *fullNode {
	cp := *n
	return &cp
}
