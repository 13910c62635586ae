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
	"github.com/eth-classic-core/chainstate/core/vm"
	"github.com/eth-classic-core/chainstate/crypto"
)

// ConsensusVerifier checks a header's seal. It is a pluggable collaborator:
// the full ethash DAG-based proof-of-work algorithm, like the bytecode
// interpreter, is an external concern of this core (mining/PoW production is
// a non-goal; only the closed {ethash, contract} dispatch and a verifier
// interface live here).
type ConsensusVerifier interface {
	VerifySeal(header *types.Header) bool
}

// EthashVerifier checks that keccak256(header.SigningHash() || nonce ||
// mixDigest), read as a big-endian integer, is at most the difficulty
// target 2^256 / difficulty. This is a
// simplified stand-in for full ethash DAG verification, adequate for
// exercising the header-validator dispatch without the external mining
// collaborator.
type EthashVerifier struct{}

func (EthashVerifier) VerifySeal(header *types.Header) bool {
	if header.Difficulty == nil || header.Difficulty.Sign() <= 0 {
		return false
	}
	digest := crypto.Keccak256(header.SigningHash().Bytes(), header.Nonce[:], header.MixDigest.Bytes())
	value := new(big.Int).SetBytes(digest)
	target := new(big.Int).Div(maxTarget, header.Difficulty)
	return value.Cmp(target) <= 0
}

var maxTarget = new(big.Int).Lsh(big.NewInt(1), 256)

// ContractVerifier dispatches seal verification to the VM at a configured
// system address, treating a non-empty return as success.
type ContractVerifier struct {
	VM         vm.VirtualMachine
	Env        func(header *types.Header) *vm.Environment
	EntryPoint common.Address
}

func (c ContractVerifier) VerifySeal(header *types.Header) bool {
	env := c.Env(header)
	msg := vm.Message{
		To:          &c.EntryPoint,
		CodeAddress: c.EntryPoint,
		Data:        append(header.SigningHash().Bytes(), header.Extra...),
	}
	success, _, output, err := c.VM.ApplyMessage(env, msg)
	return err == nil && success && len(output) > 0
}
