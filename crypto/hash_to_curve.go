// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
)

// ErrHashingFailed is returned when try-and-increment exhausts its counter
// range without landing on a curve point.
var ErrHashingFailed = errors.New("hashing failed: no counter produced a curve point")

// the counter is a single byte in 0..231
const hashToCurveMaxCounter = 231

// HashToG1 maps arbitrary bytes to a point of G1 by try-and-increment: a
// one-byte counter is appended to the input, the digest is reduced to an
// x-coordinate, and the first x with a quadratic-residue y² = x³ + 3 wins.
// The cofactor of G1 is one on BN254, so every curve point is in the prime
// subgroup.
//
// Roughly half of all counters are rejected, so multi-attempt inputs are the
// norm rather than the exception.
func (s *Suite) HashToG1(data []byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	for i := 0; i <= hashToCurveMaxCounter; i++ {
		h := s.newHash()
		if _, err := h.Write(append(buf, byte(i))); err != nil {
			common.Logger.Errorf("HashToG1 Write() failed: %v", err)
			return p, errors.Wrap(err, "HashToG1")
		}

		var x fp.Element
		x.SetBytes(h.Sum(nil))

		// y² = x³ + 3
		var ySq, y, b fp.Element
		b.SetUint64(3)
		ySq.Square(&x)
		ySq.Mul(&ySq, &x)
		ySq.Add(&ySq, &b)
		if y.Sqrt(&ySq) == nil {
			continue
		}
		// canonical root: the lexicographically smaller of ±y
		if y.LexicographicallyLargest() {
			y.Neg(&y)
		}

		p.X, p.Y = x, y
		if !p.IsOnCurve() {
			continue
		}
		return p, nil
	}
	return p, ErrHashingFailed
}
