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

// Package state implements the world state S: account balances, nonces,
// code and storage, plus the transaction-scoped scratch (logs, suicides,
// refunds) the VM environment façade reads and writes. Persistence, proofs
// and pruning of the backing trie are out of scope; StateDB keeps the
// canonical account data in memory and only touches the trie package to
// produce a root on Commit.
package state

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/types"
	"github.com/eth-classic-core/chainstate/rlp"
	"github.com/eth-classic-core/chainstate/trie"
)

// StateDB is the live world state for one block's execution. It satisfies
// vm.Database structurally (no import needed; the interface is implemented,
// not declared, here).
type StateDB struct {
	objects map[common.Address]*stateObject

	// per-transaction scratch, cleared on StartTransaction and harvested by
	// the transaction processor before the next call.
	logs     []*types.Log
	suicided []common.Address // insertion order, duplicates possible
	refund   uint64

	snapshots []map[common.Address]*stateObject
}

// New returns an empty StateDB, as used for the genesis block or in tests.
func New() *StateDB {
	return &StateDB{objects: make(map[common.Address]*stateObject)}
}

func (s *StateDB) getOrNil(addr common.Address) *stateObject {
	obj, ok := s.objects[addr]
	if !ok || obj.deleted {
		return nil
	}
	return obj
}

func (s *StateDB) getOrNew(addr common.Address) *stateObject {
	obj := s.getOrNil(addr)
	if obj == nil {
		obj = newStateObject(addr)
		s.objects[addr] = obj
	}
	return obj
}

// Exist reports whether addr has a live account, including a suicided
// account in the transaction that suicided it (not yet finalized).
func (s *StateDB) Exist(addr common.Address) bool {
	obj, ok := s.objects[addr]
	return ok && !obj.deleted
}

// CreateAccount installs a fresh account at addr (zero nonce, no code, empty
// storage), overwriting any that exists but carrying over its balance (used
// for CREATE landing on an existing address).
func (s *StateDB) CreateAccount(addr common.Address) {
	prev := s.getOrNil(addr)
	obj := newStateObject(addr)
	if prev != nil {
		obj.data.Balance = new(big.Int).Set(prev.data.Balance)
	}
	s.objects[addr] = obj
}

func (s *StateDB) GetBalance(addr common.Address) *big.Int {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.data.Balance
	}
	return new(big.Int)
}

func (s *StateDB) AddBalance(addr common.Address, amount *big.Int) {
	s.getOrNew(addr).addBalance(amount)
}

func (s *StateDB) SubBalance(addr common.Address, amount *big.Int) {
	s.getOrNew(addr).subBalance(amount)
}

func (s *StateDB) SetBalance(addr common.Address, amount *big.Int) {
	s.getOrNew(addr).setBalance(amount)
}

func (s *StateDB) GetNonce(addr common.Address) uint64 {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.data.Nonce
	}
	return 0
}

func (s *StateDB) SetNonce(addr common.Address, nonce uint64) {
	s.getOrNew(addr).setNonce(nonce)
}

func (s *StateDB) GetCode(addr common.Address) []byte {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.code
	}
	return nil
}

func (s *StateDB) GetCodeHash(addr common.Address) common.Hash {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.data.CodeHash
	}
	return common.Hash{}
}

func (s *StateDB) SetCode(addr common.Address, code []byte) {
	s.getOrNew(addr).setCode(code)
}

func (s *StateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.getState(key)
	}
	return common.Hash{}
}

func (s *StateDB) SetState(addr common.Address, key, value common.Hash) {
	s.getOrNew(addr).setState(key, value)
}

// Suicide marks addr for deletion at the end of the transaction. Finalizing
// (zeroing balance, removing the account) is the transaction processor's
// job, performed once the enclosing transaction is known to have succeeded.
func (s *StateDB) Suicide(addr common.Address) {
	if obj := s.getOrNil(addr); obj != nil {
		obj.suicided = true
	}
	s.suicided = append(s.suicided, addr)
}

func (s *StateDB) HasSuicided(addr common.Address) bool {
	if obj := s.getOrNil(addr); obj != nil {
		return obj.suicided
	}
	return false
}

// FinalizeSuicides zeroes the balance and deletes every distinct address
// suicided during the transaction just processed, per the transaction
// processor's step 8. It must only be called when the transaction succeeded.
func (s *StateDB) FinalizeSuicides() {
	seen := make(map[common.Address]bool, len(s.suicided))
	for _, addr := range s.suicided {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		if obj := s.objects[addr]; obj != nil {
			obj.data.Balance = new(big.Int)
			obj.deleted = true
		}
	}
}

// DistinctSuicideCount returns the number of distinct addresses suicided
// during the in-flight transaction, the multiplicand of GSUICIDEREFUND.
func (s *StateDB) DistinctSuicideCount() int {
	seen := make(map[common.Address]bool, len(s.suicided))
	for _, addr := range s.suicided {
		seen[addr] = true
	}
	return len(seen)
}

func (s *StateDB) AddRefund(gas uint64) { s.refund += gas }
func (s *StateDB) GetRefund() uint64    { return s.refund }

func (s *StateDB) AddLog(log *types.Log) { s.logs = append(s.logs, log) }

// StartTransaction clears the per-transaction scratch (logs, suicides,
// refund) ahead of apply_transaction's step 1.
func (s *StateDB) StartTransaction() {
	s.logs = nil
	s.suicided = nil
	s.refund = 0
}

// Logs returns (without clearing) the logs accumulated by the in-flight
// transaction.
func (s *StateDB) Logs() []*types.Log { return s.logs }

// Snapshot returns an opaque handle a later RevertToSnapshot call can roll
// back to. Handles are a stack: reverting to handle h discards every
// snapshot taken after h as well.
func (s *StateDB) Snapshot() int {
	clone := make(map[common.Address]*stateObject, len(s.objects))
	for addr, obj := range s.objects {
		clone[addr] = obj.deepCopy()
	}
	s.snapshots = append(s.snapshots, clone)
	return len(s.snapshots) - 1
}

// RevertToSnapshot restores state to what it was when Snapshot returned id.
func (s *StateDB) RevertToSnapshot(id int) {
	if id < 0 || id >= len(s.snapshots) {
		panic("state: invalid snapshot id")
	}
	s.objects = s.snapshots[id]
	s.snapshots = s.snapshots[:id]
}

// DiscardSnapshots drops any outstanding snapshot handles once a block has
// been fully accepted and no further revert is possible, keeping the stack
// from growing across blocks.
func (s *StateDB) DiscardSnapshots() { s.snapshots = nil }

// IntermediateRoot rebuilds the account trie from the live object set and
// returns its root, without marking anything as committed. Used pre-
// Metropolis to stamp each receipt with the state root as of that tx.
func (s *StateDB) IntermediateRoot() common.Hash {
	t := trie.New()
	for addr, obj := range s.objects {
		if obj.deleted {
			continue
		}
		obj.data.Root = storageRoot(obj)
		enc, err := rlp.EncodeToBytes(&obj.data)
		if err != nil {
			panic(err)
		}
		t.Update(addr.Bytes(), enc)
	}
	return t.Hash()
}

// Commit is IntermediateRoot plus removal of deleted (suicided, emptied)
// accounts from the live object set, so future reads no longer see them.
func (s *StateDB) Commit() common.Hash {
	root := s.IntermediateRoot()
	for addr, obj := range s.objects {
		if obj.deleted {
			delete(s.objects, addr)
		}
	}
	return root
}

// storageRoot builds a fresh per-account storage trie from obj's live
// storage map and returns its root.
func storageRoot(obj *stateObject) common.Hash {
	if len(obj.storage) == 0 {
		return trie.New().Hash()
	}
	t := trie.New()
	for k, v := range obj.storage {
		enc, err := rlp.EncodeToBytes(v.Bytes())
		if err != nil {
			panic(err)
		}
		t.Update(k.Bytes(), enc)
	}
	return t.Hash()
}
