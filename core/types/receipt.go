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
	"fmt"
	"math/big"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/rlp"
)

// Receipt is the outcome of one transaction's execution. PostState is the
// committed state root immediately after the transaction pre-Metropolis, and
// the all-zero hash post-Metropolis (intermediate roots are no longer
// recorded).
type Receipt struct {
	// Consensus fields
	PostState         common.Hash
	CumulativeGasUsed *big.Int
	Bloom             common.Bloom
	Logs              Logs

	// Implementation fields, not part of the consensus encoding.
	TxHash          common.Hash
	ContractAddress common.Address
	GasUsed         *big.Int
}

// receiptRLP is the consensus-only subset of a Receipt's fields, mirroring
// the split between "Consensus fields" and "Implementation fields" above.
type receiptRLP struct {
	PostState         common.Hash
	CumulativeGasUsed *big.Int
	Bloom             common.Bloom
	Logs              Logs
}

// NewReceipt creates a barebone receipt, copying the given post-state root.
func NewReceipt(root common.Hash, cumulativeGasUsed *big.Int) *Receipt {
	return &Receipt{PostState: root, CumulativeGasUsed: new(big.Int).Set(cumulativeGasUsed)}
}

// EncodeRLP implements rlp.Encoder, flattening only the consensus fields.
func (r *Receipt) EncodeRLP() ([]byte, error) {
	return rlp.EncodeToBytes(&receiptRLP{r.PostState, r.CumulativeGasUsed, r.Bloom, r.Logs})
}

// DecodeRLP implements rlp.Decoder, populating only the consensus fields.
func (r *Receipt) DecodeRLP(raw []byte) error {
	var dec receiptRLP
	if err := rlp.DecodeBytes(raw, &dec); err != nil {
		return err
	}
	r.PostState, r.CumulativeGasUsed, r.Bloom, r.Logs = dec.PostState, dec.CumulativeGasUsed, dec.Bloom, dec.Logs
	return nil
}

func (r *Receipt) String() string {
	return fmt.Sprintf("receipt{med=%x cgas=%v bloom=%x logs=%v}", r.PostState, r.CumulativeGasUsed, r.Bloom, r.Logs)
}

// Receipts is a list of receipts, the argument to the receipts-root builder.
type Receipts []*Receipt

func (r Receipts) Len() int { return len(r) }

// GetRlp returns the RLP encoding of the i-th receipt, used as the trie leaf
// value when deriving the receipts root.
func (r Receipts) GetRlp(i int) []byte {
	b, err := rlp.EncodeToBytes(r[i])
	if err != nil {
		panic(err)
	}
	return b
}
