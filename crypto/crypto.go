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

// Package crypto wraps the hashing and signature primitives the core treats
// as black-box collaborators: Keccak-256 and secp256k1 signature recovery.
package crypto

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/sha3"

	"github.com/eth-classic-core/chainstate/common"
	"github.com/eth-classic-core/chainstate/rlp"
)

// secp256k1N is the order of the secp256k1 curve group. A signature is only
// canonical (post-Homestead) when s is in the lower half of this range.
var (
	secp256k1N     = btcec.S256().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash returns the Keccak-256 digest of data as a common.Hash.
func Keccak256Hash(data ...[]byte) common.Hash {
	return common.BytesToHash(Keccak256(data...))
}

// RlpHash returns the Keccak-256 hash of the RLP encoding of x, the
// construction used throughout the core for header, transaction and
// receipt hashes.
func RlpHash(x interface{}) common.Hash {
	enc, err := rlp.EncodeToBytes(x)
	if err != nil {
		panic(err)
	}
	return Keccak256Hash(enc)
}

// CreateAddress computes the address of a contract created by sender at the
// given nonce: keccak256(rlp([sender, nonce]))[12:].
func CreateAddress(sender common.Address, nonce uint64) common.Address {
	enc, err := rlp.EncodeToBytes([]interface{}{sender, nonce})
	if err != nil {
		panic(err)
	}
	return common.BytesToAddress(Keccak256(enc)[12:])
}

var ErrInvalidSignature = errors.New("invalid signature recovery id or curve point")

// SigToAddress recovers the sender address from a signing hash and the
// (v, r, s) signature triple. v is the recovery id in {0, 1}.
func SigToAddress(sighash common.Hash, v byte, r, s *big.Int) (common.Address, error) {
	if !validateSignatureRange(r, s) {
		return common.Address{}, ErrInvalidSignature
	}
	sig := make([]byte, 65)
	copy(sig[1:33], leftPad32(r))
	copy(sig[33:65], leftPad32(s))
	sig[0] = v + 27

	pub, _, err := ecdsaRecoverCompact(sig, sighash.Bytes())
	if err != nil {
		return common.Address{}, err
	}
	pubBytes := marshalPubkey(pub)
	return common.BytesToAddress(Keccak256(pubBytes[1:])[12:]), nil
}

// ValidateSignatureValues reports whether r, s form a signature whose
// values are within range. When homestead is true, s must additionally sit
// in the lower half of the curve order (EIP-2 malleability fix).
func ValidateSignatureValues(v byte, r, s *big.Int, homestead bool) bool {
	if !validateSignatureRange(r, s) {
		return false
	}
	if homestead && s.Cmp(secp256k1HalfN) > 0 {
		return false
	}
	return v == 0 || v == 1
}

func validateSignatureRange(r, s *big.Int) bool {
	return r.Sign() > 0 && s.Sign() > 0 &&
		r.Cmp(secp256k1N) < 0 && s.Cmp(secp256k1N) < 0
}

func leftPad32(b *big.Int) []byte {
	return common.LeftPadBytes(b.Bytes(), 32)
}

// ecdsaRecoverCompact recovers the public key from a 65-byte
// [recid|r|s]-encoded compact signature over hash, using btcec's
// recovery routine.
func ecdsaRecoverCompact(sig, hash []byte) (*ecdsa.PublicKey, bool, error) {
	pub, wasCompressed, err := btcec.RecoverCompact(sig, hash)
	if err != nil {
		return nil, false, err
	}
	return pub.ToECDSA(), wasCompressed, nil
}

// marshalPubkey encodes pub as an uncompressed SEC1 point: a 0x04 prefix
// byte followed by X and Y, each left-padded to the curve's field width.
func marshalPubkey(pub *ecdsa.PublicKey) []byte {
	byteLen := (pub.Curve.Params().BitSize + 7) / 8
	ret := make([]byte, 1+2*byteLen)
	ret[0] = 4 // uncompressed point
	pub.X.FillBytes(ret[1 : 1+byteLen])
	pub.Y.FillBytes(ret[1+byteLen:])
	return ret
}

// PubkeyToAddress derives the account address belonging to pub, the same
// keccak256(pubkey)[12:] construction SigToAddress uses for a recovered key.
func PubkeyToAddress(pub ecdsa.PublicKey) common.Address {
	pubBytes := marshalPubkey(&pub)
	return common.BytesToAddress(Keccak256(pubBytes[1:])[12:])
}

// GenerateKey returns a fresh secp256k1 private key, for use by tests and
// tooling that need to sign transactions rather than merely verify them.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return key.ToECDSA(), nil
}

// Sign produces a (v, r, s) signature of hash under priv, with v the raw
// recovery id (0 or 1) this protocol stores on the wire.
func Sign(hash common.Hash, priv *ecdsa.PrivateKey) (v byte, r, s *big.Int, err error) {
	key := btcec.PrivKeyFromBytes(priv.D.Bytes())
	sig := btcec.SignCompact(key, hash.Bytes(), false)
	if len(sig) != 65 {
		return 0, nil, nil, ErrInvalidSignature
	}
	v = (sig[0] - 27) & 1
	r = new(big.Int).SetBytes(sig[1:33])
	s = new(big.Int).SetBytes(sig[33:65])
	return v, r, s, nil
}
