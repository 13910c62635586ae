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
	"github.com/eth-classic-core/chainstate/core/types"
	"github.com/eth-classic-core/chainstate/logger"
	"github.com/eth-classic-core/chainstate/logger/glog"
)

// ProcessMode selects whether ApplyBlock checks header's three Merkle roots
// against what it computes (ModeValidate) or fills them in (ModeCreate).
type ProcessMode int

const (
	ModeValidate ProcessMode = iota
	ModeCreate
)

// ApplyBlock is the block-level state transition: it validates header and
// uncles (in both modes), executes txs in order against ctx, credits
// rewards, and then checks (ModeValidate) or stamps (ModeCreate) the
// state/tx/receipts roots. parent is nil only for the genesis block.
func ApplyBlock(
	ctx *ChainContext,
	parent *types.Header,
	header *types.Header,
	txs []*types.Transaction,
	uncles []*types.Header,
	verifier ConsensusVerifier,
	mode ProcessMode,
) (*types.Block, types.Receipts, error) {
	// 1. Initialize.
	snap := ctx.StateDB.Snapshot()
	ctx.TxIndex = 0
	ctx.GasUsed = 0
	ctx.Bloom = common.Bloom{}
	ctx.Coinbase = header.Coinbase
	ctx.Number = header.Number
	ctx.Timestamp = header.Time
	ctx.GasLimit = header.GasLimit
	ctx.Difficulty = header.Difficulty

	num := header.Number.Uint64()

	if ctx.Config.IsMetropolisActivation(header.Number) {
		ctx.StateDB.SetCode(ctx.Config.MetropolisStateRootStore, ctx.Config.MetropolisGetterCode)
		ctx.StateDB.SetCode(ctx.Config.MetropolisBlockhashStore, ctx.Config.MetropolisGetterCode)
	}
	if ctx.Config.IsMetropolis(header.Number) {
		slot := common.BytesToHash(new(big.Int).SetUint64(num % ctx.Config.MetropolisWraparound).Bytes())
		ctx.StateDB.SetState(ctx.Config.MetropolisStateRootStore, slot, ctx.LastCommittedRoot)
		var parentHash common.Hash
		if parent != nil {
			parentHash = parent.Hash()
		}
		ctx.StateDB.SetState(ctx.Config.MetropolisBlockhashStore, slot, parentHash)
	}

	// 2. Validate header and uncles.
	if err := ValidateHeader(ctx, header, parent, verifier); err != nil {
		ctx.StateDB.RevertToSnapshot(snap)
		glog.V(logger.Warn).Infof("block #%d rejected: %v", num, err)
		return nil, nil, err
	}
	if err := ValidateUncles(ctx, header, uncles, verifier); err != nil {
		ctx.StateDB.RevertToSnapshot(snap)
		glog.V(logger.Warn).Infof("block #%d rejected: %v", num, err)
		return nil, nil, err
	}

	// 3. Execute transactions in order.
	receipts := make(types.Receipts, 0, len(txs))
	for _, tx := range txs {
		receipt, _, _, err := ApplyTransaction(ctx, tx)
		if err != nil {
			ctx.StateDB.RevertToSnapshot(snap)
			glog.V(logger.Warn).Infof("block #%d rejected: tx %x: %v", num, tx.Hash(), err)
			return nil, nil, err
		}
		ctx.Bloom.OrBloom(receipt.Bloom)
		ctx.TxIndex++
		receipts = append(receipts, receipt)
	}

	// 4. Finalize.
	AccumulateRewards(ctx, header, uncles)
	stateRoot := ctx.StateDB.Commit()

	// 5. Roots.
	var receiptsRoot, txRoot common.Hash
	if len(receipts) == 0 {
		receiptsRoot = types.EmptyRootHash
	} else {
		receiptsRoot = types.DeriveSha(receipts)
	}
	if len(txs) == 0 {
		txRoot = types.EmptyRootHash
	} else {
		txRoot = types.DeriveSha(types.Transactions(txs))
	}

	switch mode {
	case ModeValidate:
		if header.ReceiptHash != receiptsRoot {
			ctx.StateDB.RevertToSnapshot(snap)
			return nil, nil, RootMismatch("receipts", receiptsRoot, header.ReceiptHash)
		}
		if header.TxHash != txRoot {
			ctx.StateDB.RevertToSnapshot(snap)
			return nil, nil, RootMismatch("tx", txRoot, header.TxHash)
		}
		if header.Root != stateRoot {
			ctx.StateDB.RevertToSnapshot(snap)
			return nil, nil, RootMismatch("state", stateRoot, header.Root)
		}
	case ModeCreate:
		header.ReceiptHash = receiptsRoot
		header.TxHash = txRoot
		header.Root = stateRoot
		header.Bloom = ctx.Bloom
		header.GasUsed = new(big.Int).SetUint64(ctx.GasUsed)
		header.UncleHash = types.CalcUncleHash(uncles)
	default:
		ctx.StateDB.RevertToSnapshot(snap)
		return nil, nil, fmt.Errorf("core: unknown process mode %d", mode)
	}

	// Block fully accepted: only now record its uncles in the sliding
	// eligibility window. Before this point every failure path returns via
	// ctx.StateDB.RevertToSnapshot, and RecentUncles lives outside that
	// snapshot stack -- writing it any earlier would leave a rejected
	// block's uncles observable despite the revert.
	uncleHashes := make([]common.Hash, len(uncles))
	for i, u := range uncles {
		uncleHashes[i] = u.Hash()
	}
	ctx.RecentUncles[num] = uncleHashes

	ctx.AgeOutUncles(num)
	ctx.LastCommittedRoot = stateRoot
	ctx.PushHeader(header, len(uncles))
	ctx.StateDB.DiscardSnapshots()

	glog.V(logger.Core).Infof("accepted block #%d (%d txs, %d uncles, root %x)", num, len(txs), len(uncles), stateRoot)
	return &types.Block{Header: header, Transactions: txs, Uncles: uncles}, receipts, nil
}
