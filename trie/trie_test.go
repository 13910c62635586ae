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

package trie

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-classic-core/chainstate/common"
)

func TestEmptyTrieHash(t *testing.T) {
	tr := New()
	require.Equal(t, emptyRoot, tr.Hash())
}

func TestUpdateIsOrderIndependent(t *testing.T) {
	pairs := map[string]string{
		"do":    "verb",
		"dog":   "puppy",
		"dodge": "viper",
		"horse": "stallion",
	}

	a := New()
	for _, k := range []string{"do", "dog", "dodge", "horse"} {
		a.Update([]byte(k), []byte(pairs[k]))
	}

	b := New()
	for _, k := range []string{"horse", "dodge", "dog", "do"} {
		b.Update([]byte(k), []byte(pairs[k]))
	}

	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, emptyRoot, a.Hash())
}

func TestUpdateOverwritesExistingKey(t *testing.T) {
	a := New()
	a.Update([]byte("key"), []byte("value1"))
	h1 := a.Hash()

	a.Update([]byte("key"), []byte("value2"))
	h2 := a.Hash()

	b := New()
	b.Update([]byte("key"), []byte("value2"))

	require.NotEqual(t, h1, h2)
	require.Equal(t, b.Hash(), h2)
}

func TestDeterministicHash(t *testing.T) {
	build := func() common.Hash {
		tr := New()
		tr.Update([]byte("a"), []byte{1})
		tr.Update([]byte("ab"), []byte{2})
		tr.Update([]byte("abc"), []byte{3})
		return tr.Hash()
	}
	require.Equal(t, build(), build())
}
