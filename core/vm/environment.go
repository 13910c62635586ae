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

// Package vm defines the boundary between the block-state-transition core
// and the bytecode interpreter: the capability bundle (Environment) the core
// hands the VM for the duration of one message, and the VirtualMachine
// interface the core treats as a black box. Neither the interpreter's
// instruction set nor its gas-accounting tables live here.
package vm

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/types"
)

// Database is the state accessor surface the environment façade is built
// over. It is satisfied by the state package's StateDB; the façade itself
// holds no storage of its own.
type Database interface {
	Exist(common.Address) bool
	CreateAccount(common.Address)

	GetBalance(common.Address) *big.Int
	AddBalance(common.Address, *big.Int)
	SubBalance(common.Address, *big.Int)
	SetBalance(common.Address, *big.Int)

	GetNonce(common.Address) uint64
	SetNonce(common.Address, uint64)

	GetCode(common.Address) []byte
	GetCodeHash(common.Address) common.Hash
	SetCode(common.Address, []byte)

	GetState(common.Address, common.Hash) common.Hash
	SetState(common.Address, common.Hash, common.Hash)

	Suicide(common.Address)
	HasSuicided(common.Address) bool

	AddRefund(uint64)
	GetRefund() uint64

	AddLog(*types.Log)

	Snapshot() int
	RevertToSnapshot(int)
}

// BlockContext is the block-scoped, read-only information the façade exposes
// to the VM alongside state access.
type BlockContext struct {
	Coinbase    common.Address
	Number      *big.Int
	Time        *big.Int
	Difficulty  *big.Int
	GasLimit    *big.Int
	GetHash     func(n uint64) common.Hash // hash of the n-th most recent ancestor, 0 = the parent
}

// Environment is the capability bundle borrowed by the VM for the lifetime
// of a single apply_msg/create_contract call. It holds no state of its own:
// every method is a thin pass-through to Database plus the fixed block and
// transaction context it was constructed with.
type Environment struct {
	Db Database
	BlockContext

	Origin   common.Address // tx.sender
	GasPrice *big.Int       // tx.gasprice

	homestead  bool
	metropolis bool

	depth int
}

// NewEnvironment builds a façade scoped to one transaction.
func NewEnvironment(db Database, ctx BlockContext, origin common.Address, gasPrice *big.Int, homestead, metropolis bool) *Environment {
	return &Environment{
		Db:         db,
		BlockContext: ctx,
		Origin:     origin,
		GasPrice:   gasPrice,
		homestead:  homestead,
		metropolis: metropolis,
	}
}

func (e *Environment) PostHomestead() bool  { return e.homestead }
func (e *Environment) PostMetropolis() bool { return e.metropolis }

func (e *Environment) Depth() int     { return e.depth }
func (e *Environment) SetDepth(d int) { e.depth = d }

// BlockHash returns the hash of block (state.number - n - 1), or the zero
// hash when that block lies outside the permitted lookback window.
func (e *Environment) BlockHash(n uint64) common.Hash {
	if e.Number == nil || e.BlockContext.GetHash == nil {
		return common.Hash{}
	}
	num := e.Number.Uint64()
	if n > num {
		return common.Hash{}
	}
	lookback := num - n
	if lookback < 1 || lookback > 256 {
		return common.Hash{}
	}
	return e.BlockContext.GetHash(n)
}

// AccountExists reports whether addr has a live (not deleted) account in
// state.
func (e *Environment) AccountExists(addr common.Address) bool {
	return e.Db.Exist(addr)
}

func (e *Environment) GetBalance(addr common.Address) *big.Int { return e.Db.GetBalance(addr) }
func (e *Environment) GetNonce(addr common.Address) uint64     { return e.Db.GetNonce(addr) }
func (e *Environment) GetCode(addr common.Address) []byte      { return e.Db.GetCode(addr) }
func (e *Environment) GetState(addr common.Address, key common.Hash) common.Hash {
	return e.Db.GetState(addr, key)
}
func (e *Environment) SetState(addr common.Address, key, value common.Hash) {
	e.Db.SetState(addr, key, value)
}

// Snapshot returns an opaque handle that Revert can later roll back to.
func (e *Environment) Snapshot() int          { return e.Db.Snapshot() }
func (e *Environment) Revert(handle int)      { e.Db.RevertToSnapshot(handle) }

func (e *Environment) AddLog(log *types.Log)     { e.Db.AddLog(log) }
func (e *Environment) AddSuicide(addr common.Address) { e.Db.Suicide(addr) }
func (e *Environment) AddRefund(gas uint64)       { e.Db.AddRefund(gas) }

// CanTransfer reports whether addr's balance can cover amount.
func (e *Environment) CanTransfer(addr common.Address, amount *big.Int) bool {
	return e.Db.GetBalance(addr).Cmp(amount) >= 0
}

// Transfer moves amount from sender's balance to recipient's.
func (e *Environment) Transfer(sender, recipient common.Address, amount *big.Int) {
	e.Db.SubBalance(sender, amount)
	e.Db.AddBalance(recipient, amount)
}
