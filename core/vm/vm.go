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

package vm

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
)

// Message is the call the transaction processor hands to the VM: either a
// message call (To set) or a contract creation (To nil).
type Message struct {
	From          common.Address
	To            *common.Address
	Value         *big.Int
	Gas           uint64
	Data          []byte
	CodeAddress   common.Address // the account whose code actually runs; equals *To for a plain call
}

// VirtualMachine is the interpreter the core treats as a black box: given an
// environment and a message it returns whether execution succeeded, the gas
// left over, and any returned bytes. It alone is responsible for reverting
// its own sub-call mutations via env.Snapshot/env.Revert on failure.
type VirtualMachine interface {
	ApplyMessage(env *Environment, msg Message) (success bool, gasRemaining uint64, output []byte, err error)
	CreateContract(env *Environment, msg Message) (success bool, gasRemaining uint64, output []byte, err error)
}

// ValueTransferVM is a minimal VirtualMachine that only ever moves value: it
// has no instruction set and cannot execute contract code. It exists so the
// scenarios in the core's test suite (plain value transfers, out-of-gas,
// EOA-to-EOA sends) can exercise apply_transaction end-to-end without a real
// bytecode interpreter, which is an external collaborator of this core.
type ValueTransferVM struct{}

// ApplyMessage moves msg.Value from msg.From to *msg.To. Any msg.Data is
// ignored: a real interpreter would treat a non-empty To with code as a
// contract call, but that code path belongs to the external VM.
func (ValueTransferVM) ApplyMessage(env *Environment, msg Message) (bool, uint64, []byte, error) {
	if msg.To == nil {
		return false, msg.Gas, nil, nil
	}
	if msg.Value != nil && msg.Value.Sign() > 0 {
		if !env.CanTransfer(msg.From, msg.Value) {
			return false, msg.Gas, nil, nil
		}
		env.Transfer(msg.From, *msg.To, msg.Value)
	}
	return true, msg.Gas, nil, nil
}

// CreateContract has no code to deploy under ValueTransferVM; it simply
// transfers value to the would-be contract address and succeeds with empty
// output (no code is installed).
func (ValueTransferVM) CreateContract(env *Environment, msg Message) (bool, uint64, []byte, error) {
	if msg.Value != nil && msg.Value.Sign() > 0 {
		if !env.CanTransfer(msg.From, msg.Value) {
			return false, msg.Gas, nil, nil
		}
		// The sender's nonce has already been bumped for this transaction,
		// so the creating nonce is one below the current value.
		contract := crypto.CreateAddress(msg.From, env.GetNonce(msg.From)-1)
		env.Transfer(msg.From, contract, msg.Value)
	}
	return true, msg.Gas, nil, nil
}
