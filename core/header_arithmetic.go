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
	"github.com/eth-classic-core/chainstate/params"
)

var bigMinus99 = big.NewInt(-99)

// CalcGasLimit computes the gas limit a child of parent should carry, per
// an exponential-moving-average of parent's gas usage re-anchored toward
// the configured genesis target when it drifts too low.
func CalcGasLimit(parent *types.Header, c *params.ChainConfig) *big.Int {
	decay := new(big.Int).Div(parent.GasLimit, c.GasLimitEMAFactor)

	contrib := new(big.Int).Mul(parent.GasUsed, c.BlkLimFactorNom)
	contrib.Div(contrib, c.BlkLimFactorDen)
	contrib.Div(contrib, c.GasLimitEMAFactor)

	gl := new(big.Int).Sub(parent.GasLimit, decay)
	gl.Add(gl, contrib)
	gl = common.BigMax(gl, c.MinGasLimit)

	if gl.Cmp(c.GenesisGasLimit) < 0 {
		gl = common.BigMin(c.GenesisGasLimit, new(big.Int).Add(parent.GasLimit, decay))
	}
	return gl
}

// CheckGasLimit reports whether gl is a permissible successor to
// parent.GasLimit: within one GASLIMIT_ADJMAX_FACTOR step and never below
// MIN_GAS_LIMIT.
func CheckGasLimit(parent *types.Header, gl *big.Int, c *params.ChainConfig) bool {
	diff := new(big.Int).Sub(gl, parent.GasLimit)
	diff.Abs(diff)
	bound := new(big.Int).Div(parent.GasLimit, c.GasLimitAdjMaxFactor)
	return diff.Cmp(bound) <= 0 && gl.Cmp(c.MinGasLimit) >= 0
}

// CalcDifficulty computes the difficulty a child of parent, timestamped at
// ts and with the given number of parent uncles, should carry. childNumber
// is parent.Number+1 and determines which fork's sign formula applies.
func CalcDifficulty(parent *types.Header, ts uint64, parentUncleCount int, c *params.ChainConfig) *big.Int {
	childNumber := new(big.Int).Add(parent.Number, common.Big1)

	offset := new(big.Int).Div(parent.Difficulty, c.BlockDiffFactor)
	elapsed := new(big.Int).Sub(new(big.Int).SetUint64(ts), parent.Time)

	var sign *big.Int
	switch {
	case c.IsMetropolis(childNumber):
		sign = big.NewInt(int64(parentUncleCount))
		sign.Sub(sign, new(big.Int).Div(elapsed, c.MetropolisDiffAdjustCutoff))
	case c.IsHomestead(childNumber):
		sign = new(big.Int).Div(elapsed, c.HomesteadDiffAdjustCutoff)
		sign.Sub(common.Big1, sign)
	default:
		if elapsed.Cmp(c.DiffAdjustCutoff) < 0 {
			sign = big.NewInt(1)
		} else {
			sign = big.NewInt(-1)
		}
	}
	if sign.Cmp(bigMinus99) < 0 {
		sign.Set(bigMinus99)
	}

	o := new(big.Int).Mul(offset, sign)
	o.Add(parent.Difficulty, o)
	floor := common.BigMin(parent.Difficulty, c.MinDifficulty)
	o = common.BigMax(o, floor)

	period := new(big.Int).Div(childNumber, c.ExpDiffPeriod)
	if period.Cmp(c.ExpDiffFreePeriods) >= 0 {
		bomb := new(big.Int).Sub(period, c.ExpDiffFreePeriods)
		bomb.Exp(common.Big2, bomb, nil)
		o.Add(o, bomb)
		o = common.BigMax(o, c.MinDifficulty)
	}
	return o
}
