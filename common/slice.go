// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Returns true when the byte slice is non-nil and non-empty
func NonEmptyBytes(bz []byte) bool {
	return bz != nil && 0 < len(bz)
}

// Returns true when all of the slices in the multi-dimensional byte slice are non-nil and non-empty
func NonEmptyMultiBytes(bzs [][]byte, expectLen ...int) bool {
	if len(bzs) == 0 {
		return false
	}
	if 0 < len(expectLen) && expectLen[0] != len(bzs) {
		return false
	}
	for _, bz := range bzs {
		if !NonEmptyBytes(bz) {
			return false
		}
	}
	return true
}

// AppendLengthPrefixed appends a big-endian uint32 length followed by the
// field bytes. All wire artifacts are framed this way, in declared order.
func AppendLengthPrefixed(dst, field []byte) []byte {
	var lenBz [4]byte
	binary.BigEndian.PutUint32(lenBz[:], uint32(len(field)))
	dst = append(dst, lenBz[:]...)
	return append(dst, field...)
}

// SplitLengthPrefixed decodes a run of length-prefixed fields.
func SplitLengthPrefixed(buf []byte) ([][]byte, error) {
	var fields [][]byte
	rest := buf
	for len(rest) > 0 {
		field, r, err := ReadLengthPrefixed(rest)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		rest = r
	}
	return fields, nil
}

// ReadLengthPrefixed consumes one length-prefixed field from buf and returns
// the field along with the remaining bytes.
func ReadLengthPrefixed(buf []byte) (field, rest []byte, err error) {
	if len(buf) < 4 {
		return nil, nil, errors.New("short buffer: missing length prefix")
	}
	fieldLen := binary.BigEndian.Uint32(buf[:4])
	buf = buf[4:]
	if uint32(len(buf)) < fieldLen {
		return nil, nil, errors.Errorf("short buffer: field wants %d bytes, %d remain", fieldLen, len(buf))
	}
	return buf[:fieldLen], buf[fieldLen:], nil
}
