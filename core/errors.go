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
	"fmt"
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
)

// UnsignedTxErr is returned when a transaction has no signature and no
// Metropolis meta-transaction substitution applies.
type UnsignedTxErr struct {
	Hash common.Hash
}

func (err *UnsignedTxErr) Error() string {
	return fmt.Sprintf("transaction %x has no signature", err.Hash)
}

func IsUnsignedTxErr(err error) bool {
	_, ok := err.(*UnsignedTxErr)
	return ok
}

// NonceErr is returned when a transaction's nonce does not match the
// sender's current account nonce.
type NonceErr struct {
	Sender  common.Address
	Have, Want uint64
}

func (err *NonceErr) Error() string {
	return fmt.Sprintf("invalid nonce for %x: tx=%d state=%d", err.Sender, err.Have, err.Want)
}

func NonceError(sender common.Address, have, want uint64) *NonceErr {
	return &NonceErr{Sender: sender, Have: have, Want: want}
}

func IsNonceErr(err error) bool {
	_, ok := err.(*NonceErr)
	return ok
}

// StartGasErr is returned when a transaction's declared gas is below its
// intrinsic gas requirement.
type StartGasErr struct {
	Have, Want uint64
}

func (err *StartGasErr) Error() string {
	return fmt.Sprintf("insufficient start gas: have %d, need %d", err.Have, err.Want)
}

func IsStartGasErr(err error) bool {
	_, ok := err.(*StartGasErr)
	return ok
}

// InsufficientBalanceErr is returned when a sender cannot cover value plus
// gasprice*startgas.
type InsufficientBalanceErr struct {
	Sender     common.Address
	Have, Want *big.Int
}

func (err *InsufficientBalanceErr) Error() string {
	return fmt.Sprintf("insufficient balance for %x: have %v, need %v", err.Sender, err.Have, err.Want)
}

func IsInsufficientBalanceErr(err error) bool {
	_, ok := err.(*InsufficientBalanceErr)
	return ok
}

// BlockGasLimitErr is returned when a transaction would push cumulative gas
// used past the block's gas limit.
type BlockGasLimitErr struct {
	GasUsed, StartGas, GasLimit uint64
}

func (err *BlockGasLimitErr) Error() string {
	return fmt.Sprintf("block gas limit reached: used %d, tx wants %d, limit %d", err.GasUsed, err.StartGas, err.GasLimit)
}

func IsBlockGasLimitErr(err error) bool {
	_, ok := err.(*BlockGasLimitErr)
	return ok
}

// HeaderFieldErr reports a specific mismatching header field, distinguished
// by Sub (one of "prevhash", "number", "gaslimit", "difficulty", "gas_used",
// "timestamp").
type HeaderFieldErr struct {
	Sub         string
	Have, Want  interface{}
}

func (err *HeaderFieldErr) Error() string {
	return fmt.Sprintf("invalid header.%s: have %v, want %v", err.Sub, err.Have, err.Want)
}

func InvalidHeaderError(sub string, have, want interface{}) *HeaderFieldErr {
	return &HeaderFieldErr{Sub: sub, Have: have, Want: want}
}

func IsInvalidHeaderErr(err error) bool {
	_, ok := err.(*HeaderFieldErr)
	return ok
}

// UnclesErr reports a failed uncle-set check.
type UnclesErr struct {
	Message string
}

func (err *UnclesErr) Error() string { return err.Message }

func UncleError(format string, v ...interface{}) *UnclesErr {
	return &UnclesErr{Message: fmt.Sprintf(format, v...)}
}

func IsUncleErr(err error) bool {
	_, ok := err.(*UnclesErr)
	return ok
}

// RootMismatchErr reports a computed Merkle root that disagrees with the
// block header's declared value, distinguished by Which ("state", "tx" or
// "receipts").
type RootMismatchErr struct {
	Which      string
	Have, Want common.Hash
}

func (err *RootMismatchErr) Error() string {
	return fmt.Sprintf("%s root mismatch: have %x, want %x", err.Which, err.Have, err.Want)
}

func RootMismatch(which string, have, want common.Hash) *RootMismatchErr {
	return &RootMismatchErr{Which: which, Have: have, Want: want}
}

func IsRootMismatchErr(err error) bool {
	_, ok := err.(*RootMismatchErr)
	return ok
}

// ConsensusVerifierErr reports a failed PoW check or system-contract
// consensus call.
type ConsensusVerifierErr struct {
	Message string
}

func (err *ConsensusVerifierErr) Error() string { return err.Message }

func ConsensusVerifierFailed(format string, v ...interface{}) *ConsensusVerifierErr {
	return &ConsensusVerifierErr{Message: fmt.Sprintf(format, v...)}
}

func IsConsensusVerifierErr(err error) bool {
	_, ok := err.(*ConsensusVerifierErr)
	return ok
}
