// Copyright 2016 The go-ethereum Authors
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

// Package params holds the protocol parameter set the core is configured
// with: fork activation blocks, the Metropolis system-contract addresses,
// header-arithmetic constants and the closed enumeration of consensus
// algorithms.
package params

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
)

// ConsensusAlgo is the closed enumeration of verifiers ValidateHeader may
// dispatch to.
type ConsensusAlgo string

const (
	ConsensusEthash   ConsensusAlgo = "ethash"
	ConsensusContract ConsensusAlgo = "contract"
)

// ChainConfig is the protocol parameter set C referenced throughout the
// core. All fork activation points are expressed as block numbers; a fork
// is active on a block when block.Number >= the corresponding field.
type ChainConfig struct {
	HomesteadBlock  *big.Int
	MetropolisBlock *big.Int

	MetropolisStateRootStore  common.Address
	MetropolisBlockhashStore  common.Address
	MetropolisGetterCode      []byte
	MetropolisWraparound      uint64
	MetropolisEntryPoint      common.Address
	MetropolisDiffAdjustCutoff *big.Int

	HomesteadDiffAdjustCutoff *big.Int
	DiffAdjustCutoff          *big.Int

	BlockDiffFactor *big.Int
	MinDifficulty   *big.Int
	ExpDiffPeriod   *big.Int
	ExpDiffFreePeriods *big.Int

	GasLimitEMAFactor    *big.Int
	GasLimitAdjMaxFactor *big.Int
	BlkLimFactorNom      *big.Int
	BlkLimFactorDen      *big.Int
	MinGasLimit          *big.Int
	GenesisGasLimit      *big.Int

	BlockReward             *big.Int
	NephewReward            *big.Int
	UncleDepthPenaltyFactor *big.Int

	MaxUncleDepth uint64
	MaxUncles     int

	GSuicideRefund uint64

	ConsensusAlgo ConsensusAlgo
}

// IsHomestead reports whether num is at or past the Homestead fork block.
func (c *ChainConfig) IsHomestead(num *big.Int) bool {
	return isForked(c.HomesteadBlock, num)
}

// IsMetropolis reports whether num is at or past the Metropolis fork block.
func (c *ChainConfig) IsMetropolis(num *big.Int) bool {
	return isForked(c.MetropolisBlock, num)
}

// IsMetropolisActivation reports whether num is exactly the block at which
// Metropolis activates -- the one block where the system contracts are
// installed rather than merely written to.
func (c *ChainConfig) IsMetropolisActivation(num *big.Int) bool {
	return c.MetropolisBlock != nil && num.Cmp(c.MetropolisBlock) == 0
}

func isForked(fork, num *big.Int) bool {
	if fork == nil || num == nil {
		return false
	}
	return num.Cmp(fork) >= 0
}

// MainnetChainConfig mirrors the classic Ethereum mainnet fork schedule and
// constants; it exists as a ready-to-use default for tests and tooling, not
// as a consensus-critical value baked into the core itself.
var MainnetChainConfig = &ChainConfig{
	HomesteadBlock:  big.NewInt(1150000),
	MetropolisBlock: big.NewInt(4370000),

	MetropolisStateRootStore: common.BytesToAddress([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00}),
	MetropolisBlockhashStore: common.BytesToAddress([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01}),
	MetropolisGetterCode:      metropolisGetterCode,
	MetropolisWraparound:      256,
	MetropolisEntryPoint:      common.BytesToAddress([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x02}),
	MetropolisDiffAdjustCutoff: big.NewInt(9),

	HomesteadDiffAdjustCutoff: big.NewInt(10),
	DiffAdjustCutoff:          big.NewInt(13),

	BlockDiffFactor:    big.NewInt(2048),
	MinDifficulty:      big.NewInt(131072),
	ExpDiffPeriod:      big.NewInt(100000),
	ExpDiffFreePeriods: big.NewInt(2),

	GasLimitEMAFactor:    big.NewInt(1024),
	GasLimitAdjMaxFactor: big.NewInt(1024),
	BlkLimFactorNom:      big.NewInt(3),
	BlkLimFactorDen:      big.NewInt(2),
	MinGasLimit:          big.NewInt(5000),
	GenesisGasLimit:      big.NewInt(4712388),

	BlockReward:             big.NewInt(5e+18),
	NephewReward:            new(big.Int).Div(big.NewInt(5e+18), big.NewInt(32)),
	UncleDepthPenaltyFactor: big.NewInt(8),

	MaxUncleDepth: 7,
	MaxUncles:     2,

	GSuicideRefund: 24000,

	ConsensusAlgo: ConsensusEthash,
}

// metropolisGetterCode is the bytecode installed at the stateroot-store and
// blockhash-store system contract addresses at Metropolis activation: a
// trivial SLOAD(calldata-as-key)/RETURN getter. Its exact bytes are a
// config constant of the original protocol and are opaque to the core,
// which only ever writes to these contracts' storage directly.
var metropolisGetterCode = []byte{
	0x60, 0x00, 0x35, 0x54, 0x60, 0x00, 0x52, 0x60, 0x20, 0x60, 0x00, 0xf3,
}
