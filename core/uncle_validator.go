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

	"gopkg.in/fatih/set.v0"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/types"
)

// ValidateUncles checks uncles (the candidate block's uncle headers) against
// header's uncles-hash commitment, the MAX_UNCLES bound, and the
// sliding eligibility window built from ctx's ancestor chain and recently
// included uncle hashes.
func ValidateUncles(ctx *ChainContext, header *types.Header, uncles []*types.Header, verifier ConsensusVerifier) error {
	if got := types.CalcUncleHash(uncles); got != header.UncleHash {
		return UncleError("uncles hash mismatch: have %x, want %x", got, header.UncleHash)
	}
	if len(uncles) > ctx.Config.MaxUncles {
		return UncleError("too many uncles: %d > %d", len(uncles), ctx.Config.MaxUncles)
	}
	for _, u := range uncles {
		if u.Number.Cmp(header.Number) >= 0 {
			return UncleError("uncle number %v >= block number %v", u.Number, header.Number)
		}
	}

	ancestors := ctx.AncestorChain(header)

	ineligible := set.New()
	for _, a := range ancestors {
		ineligible.Add(a.Hash())
	}
	num := header.Number.Uint64()
	depth := ctx.Config.MaxUncleDepth
	for n := num - minUint64(depth, num); n < num; n++ {
		for _, h := range ctx.RecentUncles[n] {
			ineligible.Add(h)
		}
	}

	// ancestors[2:] are eligible uncle parents: a sibling of an ancestor
	// two or more generations back (ancestors[0] is header itself,
	// ancestors[1] is its direct parent -- neither can be an uncle's parent).
	eligibleParents := map[common.Hash]*types.Header{}
	if len(ancestors) > 2 {
		for _, a := range ancestors[2:] {
			eligibleParents[a.Hash()] = a
		}
	}

	for _, u := range uncles {
		parent, ok := eligibleParents[u.ParentHash]
		if !ok {
			return UncleError("uncle %x parent %x is not an eligible ancestor", u.Hash(), u.ParentHash)
		}
		expDiff := CalcDifficulty(parent, u.Time.Uint64(), ctx.UncleCount(parent.Hash()), ctx.Config)
		if u.Difficulty.Cmp(expDiff) != 0 {
			return UncleError("uncle %x difficulty mismatch: have %v, want %v", u.Hash(), u.Difficulty, expDiff)
		}
		wantNumber := new(big.Int).Add(parent.Number, common.Big1)
		if u.Number.Cmp(wantNumber) != 0 {
			return UncleError("uncle %x number mismatch: have %v, want %v", u.Hash(), u.Number, wantNumber)
		}
		if u.Time.Cmp(parent.Time) < 0 {
			return UncleError("uncle %x timestamp %v before parent timestamp %v", u.Hash(), u.Time, parent.Time)
		}
		if !verifier.VerifySeal(u) {
			return ConsensusVerifierFailed("uncle %x failed seal verification", u.Hash())
		}
		h := u.Hash()
		if ineligible.Has(h) {
			return UncleError("uncle %x already included or ineligible", h)
		}
		ineligible.Add(h)
	}
	return nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
