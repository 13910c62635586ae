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

package types

import (
	"errors"
	"math/big"
	"sync/atomic"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
)

var (
	ErrInvalidSig          = errors.New("invalid transaction v, r, s values")
	ErrUnsignedTransaction = errors.New("unsigned transaction")
)

// txdata is the wire/consensus representation of a transaction; Recipient
// is nil for a contract-creation transaction.
type txdata struct {
	AccountNonce uint64
	Price        *big.Int
	GasLimit     *big.Int
	Recipient    *common.Address
	Amount       *big.Int
	Payload      []byte
	V            *big.Int
	R            *big.Int
	S            *big.Int
}

// Transaction wraps the wire representation together with a cache of the
// derived sender, populated lazily by Sender.
type Transaction struct {
	data txdata
	from atomic.Value
}

// NewTransaction builds a value-transfer or call transaction addressed to to.
func NewTransaction(nonce uint64, to common.Address, amount, gasLimit, gasPrice *big.Int, data []byte) *Transaction {
	return newTransaction(nonce, &to, amount, gasLimit, gasPrice, data)
}

// NewContractCreation builds a contract-creation transaction (no recipient).
func NewContractCreation(nonce uint64, amount, gasLimit, gasPrice *big.Int, data []byte) *Transaction {
	return newTransaction(nonce, nil, amount, gasLimit, gasPrice, data)
}

func newTransaction(nonce uint64, to *common.Address, amount, gasLimit, gasPrice *big.Int, data []byte) *Transaction {
	d := txdata{
		AccountNonce: nonce,
		Recipient:    to,
		Payload:      data,
		Amount:       new(big.Int),
		GasLimit:     new(big.Int),
		Price:        new(big.Int),
		V:            new(big.Int),
		R:            new(big.Int),
		S:            new(big.Int),
	}
	if amount != nil {
		d.Amount.Set(amount)
	}
	if gasLimit != nil {
		d.GasLimit.Set(gasLimit)
	}
	if gasPrice != nil {
		d.Price.Set(gasPrice)
	}
	return &Transaction{data: d}
}

func (tx *Transaction) Nonce() uint64        { return tx.data.AccountNonce }
func (tx *Transaction) GasPrice() *big.Int   { return new(big.Int).Set(tx.data.Price) }
func (tx *Transaction) Gas() *big.Int        { return new(big.Int).Set(tx.data.GasLimit) }
func (tx *Transaction) Value() *big.Int      { return new(big.Int).Set(tx.data.Amount) }
func (tx *Transaction) Data() []byte         { return common.CopyBytes(tx.data.Payload) }
func (tx *Transaction) CheckNonce() bool     { return true }
func (tx *Transaction) SignatureValues() (v byte, r, s *big.Int) {
	return byte(tx.data.V.Uint64()), new(big.Int).Set(tx.data.R), new(big.Int).Set(tx.data.S)
}

// To returns the recipient address, or nil for a contract-creation tx.
func (tx *Transaction) To() *common.Address {
	if tx.data.Recipient == nil {
		return nil
	}
	cpy := *tx.data.Recipient
	return &cpy
}

// ContractCreation reports whether tx has no recipient.
func (tx *Transaction) ContractCreation() bool {
	return tx.data.Recipient == nil
}

// Hash returns the transaction's identifying hash (includes v, r, s).
func (tx *Transaction) Hash() common.Hash {
	return crypto.RlpHash(&tx.data)
}

// SigHash returns the hash that is signed to produce v, r, s.
func (tx *Transaction) SigHash() common.Hash {
	return crypto.RlpHash([]interface{}{
		tx.data.AccountNonce,
		tx.data.Price,
		tx.data.GasLimit,
		tx.data.Recipient,
		tx.data.Amount,
		tx.data.Payload,
	})
}

// sigCache remembers the address derived from a prior Sender call; v, r, s
// never change on an already-signed transaction so the derivation is stable.
type sigCache struct {
	from common.Address
}

// Sender recovers and caches the signing address of tx. The v component is
// expected as the raw recovery id (0 or 1), as stored on the wire by this
// protocol (no EIP-155 chain id multiplexing).
func Sender(tx *Transaction) (common.Address, error) {
	if sc := tx.from.Load(); sc != nil {
		return sc.(sigCache).from, nil
	}
	if tx.data.V == nil || tx.data.R == nil || tx.data.S == nil ||
		tx.data.R.Sign() == 0 || tx.data.S.Sign() == 0 {
		return common.Address{}, ErrUnsignedTransaction
	}
	v := byte(tx.data.V.Uint64())
	addr, err := crypto.SigToAddress(tx.SigHash(), v, tx.data.R, tx.data.S)
	if err != nil {
		return common.Address{}, err
	}
	tx.from.Store(sigCache{from: addr})
	return addr, nil
}

// WithSignature returns a copy of tx carrying the given recovery id and r, s.
func (tx *Transaction) WithSignature(v byte, r, s *big.Int) *Transaction {
	cpy := &Transaction{data: tx.data}
	cpy.data.V = new(big.Int).SetUint64(uint64(v))
	cpy.data.R = new(big.Int).Set(r)
	cpy.data.S = new(big.Int).Set(s)
	return cpy
}

// SignatureUnset reports whether tx carries no signature at all -- the
// meta-transaction case routed through METROPOLIS_ENTRY_POINT post-Metropolis.
func (tx *Transaction) SignatureUnset() bool {
	return tx.data.R == nil || tx.data.R.Sign() == 0
}
