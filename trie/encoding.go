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

// keybytesToHex expands a byte key into a nibble slice terminated by a
// sentinel value (16), following the hex-prefix scheme of the Yellow Paper
// appendix D.
func keybytesToHex(key []byte) []byte {
	l := len(key)*2 + 1
	hex := make([]byte, l)
	for i, b := range key {
		hex[i*2] = b / 16
		hex[i*2+1] = b % 16
	}
	hex[l-1] = 16
	return hex
}

// hexToCompact encodes a nibble slice (possibly terminated) into the
// compact "hex-prefix" byte encoding used inside extension/leaf nodes.
func hexToCompact(hex []byte) []byte {
	terminator := byte(0)
	if hasTerm(hex) {
		terminator = 1
		hex = hex[:len(hex)-1]
	}
	buf := make([]byte, len(hex)/2+1)
	buf[0] = terminator << 5
	if len(hex)&1 == 1 {
		buf[0] |= 1 << 4
		buf[0] |= hex[0]
		hex = hex[1:]
	}
	decodeNibbles(hex, buf[1:])
	return buf
}

func decodeNibbles(nibbles []byte, bytes []byte) {
	for bi, ni := 0, 0; ni < len(nibbles); bi, ni = bi+1, ni+2 {
		bytes[bi] = nibbles[ni]<<4 | nibbles[ni+1]
	}
}

func hasTerm(s []byte) bool {
	return len(s) > 0 && s[len(s)-1] == 16
}

// prefixLen returns the length of the common prefix of a and b.
func prefixLen(a, b []byte) int {
	i, l := 0, len(a)
	if len(b) < l {
		l = len(b)
	}
	for i < l && a[i] == b[i] {
		i++
	}
	return i
}
