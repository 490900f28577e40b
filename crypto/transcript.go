// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/binance-chain/ecdaa-lib/common"
)

// Transcript accumulates a Fiat-Shamir challenge transcript. Each operation
// owns a domain separator, and fields are appended in the order fixed by the
// protocol; there is no API to reorder or remove an appended field.
//
// Points enter the transcript in their canonical compressed encoding
// (32 bytes for G1, 64 bytes for G2), scalars as 32 big-endian bytes.
type Transcript struct {
	h hash.Hash
}

// NewTranscript opens a transcript under the given domain separator. The
// separator is framed with its length so that it can never collide with
// appended field data.
func (s *Suite) NewTranscript(domain string) *Transcript {
	t := &Transcript{h: s.newHash()}
	var lenBz [8]byte
	binary.LittleEndian.PutUint64(lenBz[:], uint64(len(domain)))
	t.write(lenBz[:])
	t.write([]byte(domain))
	return t
}

func (t *Transcript) write(bz []byte) {
	// hash.Hash.Write never returns an error per the hash contract
	if _, err := t.h.Write(bz); err != nil {
		common.Logger.Errorf("transcript Write() failed: %v", err)
	}
}

func (t *Transcript) AppendG1(p *bn254.G1Affine) *Transcript {
	bz := p.Bytes()
	t.write(bz[:])
	return t
}

func (t *Transcript) AppendG2(p *bn254.G2Affine) *Transcript {
	bz := p.Bytes()
	t.write(bz[:])
	return t
}

func (t *Transcript) AppendScalar(el *fr.Element) *Transcript {
	bz := el.Bytes()
	t.write(bz[:])
	return t
}

func (t *Transcript) AppendBytes(bz []byte) *Transcript {
	t.write(bz)
	return t
}

// Scalar finalizes the transcript: the digest is interpreted as a big-endian
// integer and reduced mod r.
func (t *Transcript) Scalar() fr.Element {
	var el fr.Element
	el.SetBytes(t.h.Sum(nil))
	return el
}
