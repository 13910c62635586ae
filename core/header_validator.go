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

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/types"
)

// maxTimestamp bounds header.Time; Time is already a *big.Int so this only
// rejects a value that needs more than 256 bits, but the check is
// kept as its own step to mirror the algorithm.
var maxTimestamp = new(big.Int).Lsh(big.NewInt(1), 256)

// ValidateHeader checks header's seal and, if parent is non-nil, its
// linkage, gas bound and difficulty against parent. It does not look at
// uncles; see ValidateUncles for that.
func ValidateHeader(ctx *ChainContext, header, parent *types.Header, verifier ConsensusVerifier) error {
	if !verifier.VerifySeal(header) {
		return ConsensusVerifierFailed("header %x failed seal verification", header.Hash())
	}
	if parent == nil {
		return nil
	}

	parentHash := parent.Hash()
	if header.ParentHash != parentHash {
		return InvalidHeaderError("prevhash", header.ParentHash, parentHash)
	}

	wantNumber := new(big.Int).Add(parent.Number, common.Big1)
	if header.Number.Cmp(wantNumber) != 0 {
		return InvalidHeaderError("number", header.Number, wantNumber)
	}

	if !CheckGasLimit(parent, header.GasLimit, ctx.Config) {
		return InvalidHeaderError("gaslimit", header.GasLimit, parent.GasLimit)
	}

	wantDifficulty := CalcDifficulty(parent, header.Time.Uint64(), ctx.UncleCount(parentHash), ctx.Config)
	if header.Difficulty.Cmp(wantDifficulty) != 0 {
		return InvalidHeaderError("difficulty", header.Difficulty, wantDifficulty)
	}

	if header.GasUsed.Cmp(header.GasLimit) > 0 {
		return InvalidHeaderError("gas_used", header.GasUsed, header.GasLimit)
	}

	if header.Time.Cmp(parent.Time) <= 0 {
		return InvalidHeaderError("timestamp", header.Time, parent.Time)
	}
	if header.Time.Cmp(maxTimestamp) >= 0 {
		return InvalidHeaderError("timestamp", header.Time, maxTimestamp)
	}

	return nil
}
