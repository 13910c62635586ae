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
	"github.com/eth-classic-core/chainstate/crypto"
)

// Log is a single event emitted by a contract during message execution. Its
// address and topics are folded into the block and receipt bloom filters.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Logs is a list of logs belonging to a single transaction.
type Logs []*Log

// CreateBloom ORs the per-entry bloom of every log in logs together.
func CreateBloom(logs Logs) common.Bloom {
	var bin common.Bloom
	for _, log := range logs {
		bloom9(&bin, log.Address.Bytes())
		for _, topic := range log.Topics {
			bloom9(&bin, topic.Bytes())
		}
	}
	return bin
}

// bloom9 sets the three bits derived from the Keccak-256 hash of data, per
// the Yellow Paper's bloom filter construction (section 4.3.1).
func bloom9(b *common.Bloom, data []byte) {
	h := crypto.Keccak256(data)
	for i := 0; i < 3; i++ {
		bitPair := (uint(h[i*2]) << 8) | uint(h[i*2+1])
		bit := bitPair & 0x7ff
		b[common.BloomByteLength-1-bit/8] |= 1 << (bit % 8)
	}
}

// BloomLookup reports whether topic's bits are all set in bin -- a
// probabilistic pre-filter only, never authoritative by itself.
func BloomLookup(bin common.Bloom, topic common.Hash) bool {
	var probe common.Bloom
	bloom9(&probe, topic.Bytes())
	for i := range probe {
		if probe[i]&bin[i] != probe[i] {
			return false
		}
	}
	return true
}
