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

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/core/types"
	"github.com/eth-classic-core/chainstate/crypto"
)

var (
	TxGas                 = big.NewInt(21000)
	TxGasContractCreation = big.NewInt(53000)
	TxDataZeroGas         = big.NewInt(4)
	TxDataNonZeroGas      = big.NewInt(68)
)

// IntrinsicGas computes the gas a transaction owes before any execution,
// based on its payload and whether it creates a contract. The creation
// surcharge (TxGasContractCreation over the plain TxGas base) only applies
// post-Homestead.
func IntrinsicGas(data []byte, contractCreation, homestead bool) *big.Int {
	igas := new(big.Int)
	if contractCreation && homestead {
		igas.Set(TxGasContractCreation)
	} else {
		igas.Set(TxGas)
	}
	if len(data) > 0 {
		var nz int64
		for _, b := range data {
			if b != 0 {
				nz++
			}
		}
		m := big.NewInt(nz)
		m.Mul(m, TxDataNonZeroGas)
		igas.Add(igas, m)
		m.SetInt64(int64(len(data)) - nz)
		m.Mul(m, TxDataZeroGas)
		igas.Add(igas, m)
	}
	return igas
}

// ValidateTransaction runs the sequential, read-only pre-checks of
// apply_transaction's step 2 against ctx's live state. It never mutates
// ctx.StateDB.
func ValidateTransaction(ctx *ChainContext, tx *types.Transaction) (common.Address, error) {
	var sender common.Address
	if tx.SignatureUnset() {
		if !ctx.Config.IsMetropolis(ctx.Number) {
			return common.Address{}, &UnsignedTxErr{Hash: tx.Hash()}
		}
		sender = ctx.Config.MetropolisEntryPoint
	} else {
		var err error
		sender, err = types.Sender(tx)
		if err != nil {
			return common.Address{}, err
		}
		v, r, s := tx.SignatureValues()
		homestead := ctx.Config.IsHomestead(ctx.Number)
		if !crypto.ValidateSignatureValues(v, r, s, homestead) {
			return common.Address{}, types.ErrInvalidSig
		}
	}

	if have, want := tx.Nonce(), ctx.StateDB.GetNonce(sender); have != want {
		return common.Address{}, NonceError(sender, have, want)
	}

	homestead := ctx.Config.IsHomestead(ctx.Number)
	needGas := IntrinsicGas(tx.Data(), tx.ContractCreation(), homestead)
	if tx.Gas().Cmp(needGas) < 0 {
		return common.Address{}, &StartGasErr{Have: tx.Gas().Uint64(), Want: needGas.Uint64()}
	}

	cost := new(big.Int).Mul(tx.GasPrice(), tx.Gas())
	cost.Add(cost, tx.Value())
	if balance := ctx.StateDB.GetBalance(sender); balance.Cmp(cost) < 0 {
		return common.Address{}, &InsufficientBalanceErr{Sender: sender, Have: balance, Want: cost}
	}

	if ctx.GasUsed+tx.Gas().Uint64() > ctx.GasLimit.Uint64() {
		return common.Address{}, &BlockGasLimitErr{GasUsed: ctx.GasUsed, StartGas: tx.Gas().Uint64(), GasLimit: ctx.GasLimit.Uint64()}
	}

	return sender, nil
}
