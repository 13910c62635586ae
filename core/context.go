// Copyright 2015 The go-ethereum Authors
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

package core

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/state"
	"github.com/eth-classic-core/chainstate/core/types"
	"github.com/eth-classic-core/chainstate/core/vm"
	"github.com/eth-classic-core/chainstate/params"
)

// uncleCountCacheLimit bounds the UncleCounts side-table. Entries are keyed
// by header hash and only ever consulted for ancestors still reachable from
// AncestorChain, so an LRU well past MaxUncleDepth never evicts a hash that
// ValidateUncles or ValidateHeader will still ask about.
const uncleCountCacheLimit = 1024

// ChainContext is World State S: the live account trie (via StateDB) plus
// the transient per-block scratch the spec keeps alongside it -- the
// current block's index into its transaction list, cumulative gas used,
// running bloom, block-context fields, and the two bounded histories
// (prev_headers, recent_uncles) the uncle validator and Metropolis system
// contracts depend on.
type ChainContext struct {
	StateDB *state.StateDB
	Config  *params.ChainConfig
	VM      vm.VirtualMachine

	TxIndex uint64
	GasUsed uint64
	Bloom   common.Bloom

	Coinbase   common.Address
	Number     *big.Int
	Timestamp  *big.Int
	GasLimit   *big.Int
	Difficulty *big.Int

	// PrevHeaders is the recent ancestor chain, most recent (the parent)
	// first, bounded to MaxUncleDepth+1 entries.
	PrevHeaders []*types.Header

	// RecentUncles maps a block number to the uncle hashes declared by the
	// block at that number, retained for numbers in
	// [current-MaxUncleDepth, current].
	RecentUncles map[uint64][]common.Hash

	// UncleCounts records, for each retained ancestor header, how many
	// uncles its own block declared -- calc_difficulty's Metropolis-era
	// formula depends on len(parent.uncles), which the header alone (only
	// UncleHash) cannot answer. Bounded LRU rather than a plain map since
	// nothing else ages entries out by hash.
	UncleCounts *lru.Cache

	// LastCommittedRoot is the state root committed at the end of the
	// previous block, written into the stateroot-store system contract
	// from Metropolis onward.
	LastCommittedRoot common.Hash
}

// NewChainContext builds an empty context over db: no ancestor headers, no
// recorded uncles, and a zero LastCommittedRoot.
func NewChainContext(db *state.StateDB, config *params.ChainConfig, virtualMachine vm.VirtualMachine) *ChainContext {
	uncleCounts, _ := lru.New(uncleCountCacheLimit)
	return &ChainContext{
		StateDB:      db,
		Config:       config,
		VM:           virtualMachine,
		RecentUncles: make(map[uint64][]common.Hash),
		UncleCounts:  uncleCounts,
	}
}

// UncleCount returns how many uncles the block identified by hash declared,
// or 0 if hash has aged out of the cache or was never pushed (e.g. the
// genesis block, which has none).
func (c *ChainContext) UncleCount(hash common.Hash) int {
	v, ok := c.UncleCounts.Get(hash)
	if !ok {
		return 0
	}
	return v.(int)
}

// AncestorChain returns [header] followed by up to MaxUncleDepth+1 entries
// of PrevHeaders, per step 4 of the uncle validator: the candidate header
// plus its bounded recent ancestry, most recent first.
func (c *ChainContext) AncestorChain(header *types.Header) []*types.Header {
	limit := int(c.Config.MaxUncleDepth) + 1
	if limit > len(c.PrevHeaders) {
		limit = len(c.PrevHeaders)
	}
	chain := make([]*types.Header, 0, limit+1)
	chain = append(chain, header)
	chain = append(chain, c.PrevHeaders[:limit]...)
	return chain
}

// GetHash returns the hash of the n-th most recent ancestor of the block
// currently being processed (0 = the parent), or the zero hash if n reaches
// past the retained history.
func (c *ChainContext) GetHash(n uint64) common.Hash {
	if n >= uint64(len(c.PrevHeaders)) {
		return common.Hash{}
	}
	return c.PrevHeaders[n].Hash()
}

// PushHeader records header as the new most-recent ancestor, trimming the
// ring to MaxUncleDepth+1 entries, and remembers how many uncles its block
// declared for later difficulty recomputation.
func (c *ChainContext) PushHeader(header *types.Header, uncleCount int) {
	limit := int(c.Config.MaxUncleDepth) + 1
	c.PrevHeaders = append([]*types.Header{header}, c.PrevHeaders...)
	if len(c.PrevHeaders) > limit {
		c.PrevHeaders = c.PrevHeaders[:limit]
	}
	c.UncleCounts.Add(header.Hash(), uncleCount)
}

// AgeOutUncles deletes the RecentUncles entry for blockNumber - MaxUncleDepth,
// per the block processor's finalize step.
func (c *ChainContext) AgeOutUncles(blockNumber uint64) {
	if blockNumber < c.Config.MaxUncleDepth {
		return
	}
	delete(c.RecentUncles, blockNumber-c.Config.MaxUncleDepth)
}
