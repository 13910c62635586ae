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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/crypto"
)

func TestSignAndRecoverSender(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	to := common.BytesToAddress([]byte{0x01})
	tx := NewTransaction(0, to, big.NewInt(100), big.NewInt(21000), big.NewInt(1), nil)
	require.True(t, tx.SignatureUnset())

	v, r, s, err := crypto.Sign(tx.SigHash(), key)
	require.NoError(t, err)
	signed := tx.WithSignature(v, r, s)
	require.False(t, signed.SignatureUnset())

	got, err := Sender(signed)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSenderIsCached(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	to := common.BytesToAddress([]byte{0x01})
	tx := NewTransaction(0, to, big.NewInt(100), big.NewInt(21000), big.NewInt(1), nil)
	v, r, s, err := crypto.Sign(tx.SigHash(), key)
	require.NoError(t, err)
	signed := tx.WithSignature(v, r, s)

	first, err := Sender(signed)
	require.NoError(t, err)
	second, err := Sender(signed)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUnsignedSenderFails(t *testing.T) {
	to := common.BytesToAddress([]byte{0x01})
	tx := NewTransaction(0, to, big.NewInt(100), big.NewInt(21000), big.NewInt(1), nil)
	_, err := Sender(tx)
	require.Error(t, err)
}

func TestHashChangesWithSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	to := common.BytesToAddress([]byte{0x01})
	tx := NewTransaction(0, to, big.NewInt(100), big.NewInt(21000), big.NewInt(1), nil)
	unsignedHash := tx.Hash()

	v, r, s, err := crypto.Sign(tx.SigHash(), key)
	require.NoError(t, err)
	signed := tx.WithSignature(v, r, s)

	require.NotEqual(t, unsignedHash, signed.Hash())
	require.Equal(t, tx.SigHash(), signed.SigHash())
}
