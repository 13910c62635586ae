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

package state

import (
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
)

// Account is the consensus-relevant, RLP-encoded account record stored in
// the state trie.
type Account struct {
	Nonce    uint64
	Balance  *big.Int
	Root     common.Hash // storage trie root
	CodeHash common.Hash
}

// stateObject is the live, mutable in-memory form of an Account plus its
// storage and code, as seen during one block's execution.
type stateObject struct {
	address common.Address
	data    Account

	code    []byte
	storage map[common.Hash]common.Hash

	suicided bool
	deleted  bool
}

func newStateObject(addr common.Address) *stateObject {
	return &stateObject{
		address: addr,
		data: Account{
			Balance:  new(big.Int),
			CodeHash: emptyCodeHash,
		},
		storage: make(map[common.Hash]common.Hash),
	}
}

var emptyCodeHash = crypto.Keccak256Hash(nil)

// deepCopy returns an independent stateObject usable as a snapshot entry.
func (s *stateObject) deepCopy() *stateObject {
	cpy := &stateObject{
		address:  s.address,
		data:     Account{Nonce: s.data.Nonce, Balance: new(big.Int).Set(s.data.Balance), Root: s.data.Root, CodeHash: s.data.CodeHash},
		suicided: s.suicided,
		deleted:  s.deleted,
		storage:  make(map[common.Hash]common.Hash, len(s.storage)),
	}
	if len(s.code) > 0 {
		cpy.code = common.CopyBytes(s.code)
	}
	for k, v := range s.storage {
		cpy.storage[k] = v
	}
	return cpy
}

func (s *stateObject) setCode(code []byte) {
	s.code = code
	s.data.CodeHash = crypto.Keccak256Hash(code)
}

func (s *stateObject) setNonce(nonce uint64) { s.data.Nonce = nonce }

func (s *stateObject) addBalance(amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.data.Balance = new(big.Int).Add(s.data.Balance, amount)
}

func (s *stateObject) subBalance(amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.data.Balance = new(big.Int).Sub(s.data.Balance, amount)
}

func (s *stateObject) setBalance(amount *big.Int) { s.data.Balance = new(big.Int).Set(amount) }

func (s *stateObject) getState(key common.Hash) common.Hash { return s.storage[key] }

func (s *stateObject) setState(key, value common.Hash) {
	if value == (common.Hash{}) {
		delete(s.storage, key)
		return
	}
	s.storage[key] = value
}
