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

package common

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash represents the 32 byte Keccak256 hash of arbitrary data.
type Hash [HashLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

func StringToHash(s string) Hash { return BytesToHash([]byte(s)) }

func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

func (h Hash) Bytes() []byte  { return h[:] }
func (h Hash) Big() *big.Int  { return new(big.Int).SetBytes(h[:]) }
func (h Hash) Hex() string    { return "0x" + hex.EncodeToString(h[:]) }
func (h Hash) String() string { return h.Hex() }

// IsZero reports whether h is the all-zero hash, used throughout the core
// to mean "absent" (no parent, no recorded intermediate root, etc).
func (h Hash) IsZero() bool { return h == Hash{} }

// Address represents the 20 byte address of an Ethereum account.
type Address [AddressLength]byte

func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

func (a Address) Bytes() []byte  { return a[:] }
func (a Address) Big() *big.Int  { return new(big.Int).SetBytes(a[:]) }
func (a Address) Hex() string    { return "0x" + hex.EncodeToString(a[:]) }
func (a Address) String() string { return a.Hex() }
func (a Address) IsZero() bool   { return a == Address{} }

// Bloom represents the 2048 bit (256 byte) bloom filter carried on headers
// and receipts.
type Bloom [256]byte

func (b Bloom) Bytes() []byte { return b[:] }
func (b Bloom) Big() *big.Int { return new(big.Int).SetBytes(b[:]) }

func (b *Bloom) SetBytes(d []byte) {
	if len(b) < len(d) {
		panic(fmt.Sprintf("bloom bytes too big %d %d", len(b), len(d)))
	}
	copy(b[BloomByteLength-len(d):], d)
}

const BloomByteLength = 256

// OrBloom ORs other into b in place, used to accumulate a block's bloom
// from its receipts. The per-entry bit-setting (bloom9 in the Yellow
// Paper) lives in core/types, which hashes the entries before this package
// ever sees them; common only knows how to store and combine the result.
func (b *Bloom) OrBloom(other Bloom) {
	for i := range b {
		b[i] |= other[i]
	}
}
