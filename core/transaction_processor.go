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
	"github.com/eth-classic-core/chainstate/core/vm"
	"github.com/eth-classic-core/chainstate/crypto"
)

// ApplyTransaction runs one transaction against ctx, mutating ctx.StateDB
// and ctx.GasUsed, and returns the receipt it produces, the logs harvested
// for it, and the VM's raw output bytes.
func ApplyTransaction(ctx *ChainContext, tx *types.Transaction) (*types.Receipt, types.Logs, []byte, error) {
	ctx.StateDB.StartTransaction()

	sender, err := ValidateTransaction(ctx, tx)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx.StateDB.SetNonce(sender, ctx.StateDB.GetNonce(sender)+1)

	startgas := tx.Gas().Uint64()
	gasPrice := tx.GasPrice()
	ctx.StateDB.SubBalance(sender, new(big.Int).Mul(gasPrice, tx.Gas()))

	homestead := ctx.Config.IsHomestead(ctx.Number)
	intrinsic := IntrinsicGas(tx.Data(), tx.ContractCreation(), homestead).Uint64()
	messageGas := startgas - intrinsic

	to := tx.To()
	codeAddress := common.Address{}
	if to != nil {
		codeAddress = *to
	}
	msg := vm.Message{
		From:        sender,
		To:          to,
		Value:       tx.Value(),
		Gas:         messageGas,
		Data:        tx.Data(),
		CodeAddress: codeAddress,
	}

	env := vm.NewEnvironment(
		ctx.StateDB,
		vm.BlockContext{
			Coinbase:   ctx.Coinbase,
			Number:     ctx.Number,
			Time:       ctx.Timestamp,
			Difficulty: ctx.Difficulty,
			GasLimit:   ctx.GasLimit,
			GetHash:    ctx.GetHash,
		},
		sender, gasPrice, homestead, ctx.Config.IsMetropolis(ctx.Number),
	)

	var (
		success bool
		gasLeft uint64
		output  []byte
		execErr error
	)
	if tx.ContractCreation() {
		success, gasLeft, output, execErr = ctx.VM.CreateContract(env, msg)
	} else {
		success, gasLeft, output, execErr = ctx.VM.ApplyMessage(env, msg)
	}
	if execErr != nil {
		return nil, nil, nil, execErr
	}

	var gasUsedTx uint64
	if !success {
		gasUsedTx = startgas
		ctx.StateDB.AddBalance(ctx.Coinbase, new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(startgas)))
		output = nil
	} else {
		gasUsedTx = startgas - gasLeft

		refund := ctx.StateDB.GetRefund()
		suicideRefund := uint64(ctx.StateDB.DistinctSuicideCount()) * ctx.Config.GSuicideRefund
		refund += suicideRefund
		if cap := gasUsedTx / 2; refund > cap {
			refund = cap
		}
		gasLeft += refund
		gasUsedTx -= refund

		ctx.StateDB.AddBalance(sender, new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gasLeft)))
		ctx.StateDB.AddBalance(ctx.Coinbase, new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gasUsedTx)))

		ctx.StateDB.FinalizeSuicides()
	}
	ctx.GasUsed += gasUsedTx

	logs := ctx.StateDB.Logs()
	ctx.StateDB.StartTransaction()

	var postState common.Hash
	if !ctx.Config.IsMetropolis(ctx.Number) {
		postState = ctx.StateDB.IntermediateRoot()
	}

	receipt := types.NewReceipt(postState, new(big.Int).SetUint64(ctx.GasUsed))
	receipt.TxHash = tx.Hash()
	receipt.GasUsed = new(big.Int).SetUint64(gasUsedTx)
	receipt.Logs = logs
	receipt.Bloom = types.CreateBloom(logs)
	if tx.ContractCreation() && success {
		receipt.ContractAddress = crypto.CreateAddress(sender, ctx.StateDB.GetNonce(sender)-1)
	}

	return receipt, logs, output, nil
}
