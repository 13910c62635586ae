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

package rlp

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
)

var (
	ErrExpectedString = errors.New("rlp: expected string, got list")
	ErrExpectedList   = errors.New("rlp: expected list, got string")
	ErrCanonSize      = errors.New("rlp: non-canonical size information")
	ErrUnexpectedEOF  = errors.New("rlp: unexpected end of input")
)

// Decoder is implemented by types that know how to populate themselves from
// a raw RLP-encoded item.
type Decoder interface {
	DecodeRLP(raw []byte) error
}

// DecodeBytes parses RLP-encoded data from b into val, which must be a
// non-nil pointer. It is an error if b contains trailing data after the
// decoded value.
func DecodeBytes(b []byte, val interface{}) error {
	item, rest, err := splitItem(b)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("rlp: %d trailing bytes after value", len(rest))
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("rlp: DecodeBytes requires a non-nil pointer")
	}
	return decodeInto(item, rv.Elem())
}

// rawItem is a decoded-but-unparsed RLP item: either a byte string's
// content, or the concatenated, still-encoded content of a list.
type rawItem struct {
	isList  bool
	content []byte // string bytes, or concatenated list item encodings
}

// splitItem parses one RLP item off the front of b and returns it plus the
// unconsumed remainder of b.
func splitItem(b []byte) (rawItem, []byte, error) {
	if len(b) == 0 {
		return rawItem{}, nil, ErrUnexpectedEOF
	}
	tag := b[0]
	switch {
	case tag < 0x80:
		return rawItem{content: b[:1]}, b[1:], nil
	case tag < 0xb8:
		size := int(tag - 0x80)
		if len(b) < 1+size {
			return rawItem{}, nil, ErrUnexpectedEOF
		}
		if size == 1 && b[1] < 0x80 {
			return rawItem{}, nil, ErrCanonSize
		}
		return rawItem{content: b[1 : 1+size]}, b[1+size:], nil
	case tag < 0xc0:
		lenlen := int(tag - 0xb7)
		size, rest, err := readLength(b[1:], lenlen)
		if err != nil {
			return rawItem{}, nil, err
		}
		if len(rest) < size {
			return rawItem{}, nil, ErrUnexpectedEOF
		}
		return rawItem{content: rest[:size]}, rest[size:], nil
	case tag < 0xf8:
		size := int(tag - 0xc0)
		if len(b) < 1+size {
			return rawItem{}, nil, ErrUnexpectedEOF
		}
		return rawItem{isList: true, content: b[1 : 1+size]}, b[1+size:], nil
	default:
		lenlen := int(tag - 0xf7)
		size, rest, err := readLength(b[1:], lenlen)
		if err != nil {
			return rawItem{}, nil, err
		}
		if len(rest) < size {
			return rawItem{}, nil, ErrUnexpectedEOF
		}
		return rawItem{isList: true, content: rest[:size]}, rest[size:], nil
	}
}

func readLength(b []byte, lenlen int) (int, []byte, error) {
	if len(b) < lenlen {
		return 0, nil, ErrUnexpectedEOF
	}
	if lenlen > 0 && b[0] == 0 {
		return 0, nil, ErrCanonSize
	}
	var size uint64
	for _, c := range b[:lenlen] {
		size = size<<8 | uint64(c)
	}
	if size <= 55 {
		return 0, nil, ErrCanonSize
	}
	return int(size), b[lenlen:], nil
}

// splitListItems splits the content of a list item into its element rawItems.
func splitListItems(content []byte) ([]rawItem, error) {
	var items []rawItem
	for len(content) > 0 {
		item, rest, err := splitItem(content)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		content = rest
	}
	return items, nil
}

func decodeInto(item rawItem, v reflect.Value) error {
	if v.CanAddr() && v.Addr().CanInterface() {
		if dec, ok := v.Addr().Interface().(Decoder); ok {
			return dec.DecodeRLP(rawEncode(item))
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		elem := v.Type().Elem()
		if !item.isList && len(item.content) == 0 &&
			elem.Kind() == reflect.Array && elem.Elem().Kind() == reflect.Uint8 {
			// Empty string decoding to a pointer-to-fixed-byte-array (e.g.
			// *common.Address) means "absent", not "present and zero": leave
			// the pointer nil so an optional recipient round-trips correctly.
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(elem))
		}
		return decodeInto(item, v.Elem())

	case reflect.Struct:
		if v.Type() == bigIntType {
			if item.isList {
				return ErrExpectedString
			}
			v.Set(reflect.ValueOf(*new(big.Int).SetBytes(item.content)))
			return nil
		}
		if !item.isList {
			return ErrExpectedList
		}
		fieldItems, err := splitListItems(item.content)
		if err != nil {
			return err
		}
		t := v.Type()
		fi := 0
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" || f.Tag.Get("rlp") == "-" {
				continue
			}
			if fi >= len(fieldItems) {
				return fmt.Errorf("rlp: too few list elements for %s", t.Name())
			}
			if err := decodeInto(fieldItems[fi], v.Field(i)); err != nil {
				return err
			}
			fi++
		}
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if item.isList {
				return ErrExpectedString
			}
			v.SetBytes(append([]byte(nil), item.content...))
			return nil
		}
		if !item.isList {
			return ErrExpectedList
		}
		elems, err := splitListItems(item.content)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(v.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := decodeInto(e, out.Index(i)); err != nil {
				return err
			}
		}
		v.Set(out)
		return nil

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if item.isList {
				return ErrExpectedString
			}
			if len(item.content) > v.Len() {
				return fmt.Errorf("rlp: input too long for %s", v.Type())
			}
			reflect.Copy(v, reflect.ValueOf(leftPad(item.content, v.Len())))
			return nil
		}
		return errUnsupportedTypeDecode(v.Type())

	case reflect.String:
		if item.isList {
			return ErrExpectedString
		}
		v.SetString(string(item.content))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if item.isList {
			return ErrExpectedString
		}
		if len(item.content) > 8 {
			return fmt.Errorf("rlp: uint64 overflow")
		}
		var n uint64
		for _, c := range item.content {
			n = n<<8 | uint64(c)
		}
		v.SetUint(n)
		return nil

	case reflect.Bool:
		if item.isList {
			return ErrExpectedString
		}
		v.SetBool(len(item.content) == 1 && item.content[0] == 1)
		return nil

	default:
		return errUnsupportedTypeDecode(v.Type())
	}
}

func leftPad(b []byte, l int) []byte {
	if len(b) >= l {
		return b
	}
	out := make([]byte, l)
	copy(out[l-len(b):], b)
	return out
}

// rawEncode reconstructs the original encoded bytes of item, used to hand a
// self-decoding type its raw input.
func rawEncode(item rawItem) []byte {
	if !item.isList {
		return encodeString(item.content)
	}
	return append(encodeLength(len(item.content), 0xc0), item.content...)
}

type errUnsupportedTypeDecode reflect.Type

func (e errUnsupportedTypeDecode) Error() string {
	return "rlp: decode: type not supported: " + reflect.Type(e).String()
}
