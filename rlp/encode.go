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

// Package rlp implements the recursive-length-prefix encoding the core
// relies on for canonical header, transaction and receipt serialization and
// for keying the scratch tries that produce Merkle roots.
//
// Encoding rules follow the Ethereum Yellow Paper appendix B: a single byte
// below 0x80 encodes itself; a byte string of length 0-55 is prefixed with
// 0x80+len; longer byte strings are prefixed with 0xb7+len(lenbytes) followed
// by the big-endian length; lists follow the same scheme offset by 0xc0/0xf7.
// Integers are encoded as their minimal big-endian byte string (no leading
// zero byte), with zero encoded as the empty string.
package rlp

import (
	"errors"
	"math/big"
	"reflect"
)

var ErrNegativeBigInt = errors.New("rlp: cannot encode negative big.Int")

var bigIntType = reflect.TypeOf(big.Int{})

// Encoder is implemented by types that know how to RLP-encode themselves.
type Encoder interface {
	EncodeRLP() ([]byte, error)
}

// EncodeToBytes returns the RLP encoding of val.
func EncodeToBytes(val interface{}) ([]byte, error) {
	return encodeValue(reflect.ValueOf(val))
}

func encodeValue(v reflect.Value) ([]byte, error) {
	if !v.IsValid() {
		return encodeString(nil), nil
	}

	if v.CanInterface() {
		if enc, ok := v.Interface().(Encoder); ok {
			return enc.EncodeRLP()
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			if v.Type().Elem() == bigIntType {
				return encodeBigInt(new(big.Int)), nil
			}
			return encodeString(nil), nil
		}
		return encodeValue(v.Elem())

	case reflect.Struct:
		if bi, ok := v.Interface().(big.Int); ok {
			return encodeBigInt(&bi), nil
		}
		return encodeStruct(v)

	case reflect.Slice, reflect.Array:
		// []byte and fixed byte arrays (Hash, Address, Bloom) are byte strings.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(toBytes(v)), nil
		}
		return encodeList(v)

	case reflect.String:
		return encodeString([]byte(v.String())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return encodeUint(v.Uint()), nil

	case reflect.Bool:
		if v.Bool() {
			return encodeString([]byte{1}), nil
		}
		return encodeString(nil), nil

	case reflect.Interface:
		return encodeValue(v.Elem())

	default:
		return nil, errUnsupportedType(v.Type())
	}
}

func toBytes(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	b := make([]byte, v.Len())
	for i := 0; i < v.Len(); i++ {
		b[i] = byte(v.Index(i).Uint())
	}
	return b
}

func encodeStruct(v reflect.Value) ([]byte, error) {
	t := v.Type()
	var items [][]byte
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		if f.Tag.Get("rlp") == "-" {
			continue
		}
		enc, err := encodeValue(v.Field(i))
		if err != nil {
			return nil, err
		}
		items = append(items, enc)
	}
	return wrapList(items), nil
}

func encodeList(v reflect.Value) ([]byte, error) {
	var items [][]byte
	for i := 0; i < v.Len(); i++ {
		enc, err := encodeValue(v.Index(i))
		if err != nil {
			return nil, err
		}
		items = append(items, enc)
	}
	return wrapList(items), nil
}

// EncodeListOfBytes wraps already-encoded items into an RLP list, used by
// callers that build up a list of heterogeneous pre-encoded values (e.g.
// the trie's short- and full-node encoders).
func EncodeListOfBytes(items [][]byte) []byte {
	return wrapList(items)
}

func encodeBigInt(b *big.Int) ([]byte, error) {
	if b.Sign() < 0 {
		return nil, ErrNegativeBigInt
	}
	if b.Sign() == 0 {
		return encodeString(nil), nil
	}
	return encodeString(b.Bytes()), nil
}

func encodeUint(n uint64) []byte {
	if n == 0 {
		return encodeString(nil)
	}
	var buf [8]byte
	i := 8
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	return encodeString(buf[i:])
}

func encodeString(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return append(encodeLength(len(b), 0x80), b...)
}

func wrapList(items [][]byte) []byte {
	var total int
	for _, it := range items {
		total += len(it)
	}
	out := encodeLength(total, 0xc0)
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

// encodeLength returns the length prefix for a string/list payload of size
// n, offset by offset (0x80 for strings, 0xc0 for lists).
func encodeLength(n int, offset byte) []byte {
	if n <= 55 {
		return []byte{offset + byte(n)}
	}
	lb := bigEndianMinimal(uint64(n))
	return append([]byte{offset + 55 + byte(len(lb))}, lb...)
}

func bigEndianMinimal(n uint64) []byte {
	var buf [8]byte
	i := 8
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	if i == 8 {
		return []byte{0}
	}
	return buf[i:]
}

type errUnsupportedType reflect.Type

func (e errUnsupportedType) Error() string {
	return "rlp: type not supported: " + reflect.Type(e).String()
}
