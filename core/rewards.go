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

package core

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/core/types"
)

// AccumulateRewards credits coinbase with the block reward plus a nephew
// reward per included uncle, and each uncle's own coinbase with a reward
// scaled down by its depth below the block, per the block processor's
// finalize step.
func AccumulateRewards(ctx *ChainContext, header *types.Header, uncles []*types.Header) {
	reward := new(big.Int).Set(ctx.Config.BlockReward)
	nephews := new(big.Int).Mul(ctx.Config.NephewReward, big.NewInt(int64(len(uncles))))
	reward.Add(reward, nephews)
	ctx.StateDB.AddBalance(header.Coinbase, reward)

	for _, u := range uncles {
		depthFactor := new(big.Int).Sub(u.Number, header.Number)
		depthFactor.Add(depthFactor, ctx.Config.UncleDepthPenaltyFactor)

		uncleReward := new(big.Int).Mul(ctx.Config.BlockReward, depthFactor)
		uncleReward.Div(uncleReward, ctx.Config.UncleDepthPenaltyFactor)
		ctx.StateDB.AddBalance(u.Coinbase, uncleReward)
	}
}
