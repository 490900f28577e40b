// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// Strict decoders for wire fields. Points must be exactly one canonical
// compressed encoding (on-curve and subgroup membership enforced); scalars
// must be exactly fr.Bytes big-endian bytes below the group order.

func ReadG1(bz []byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if len(bz) != bn254.SizeOfG1AffineCompressed {
		return p, errors.Errorf("G1 point must be %d bytes, got %d", bn254.SizeOfG1AffineCompressed, len(bz))
	}
	if _, err := p.SetBytes(bz); err != nil {
		return p, errors.Wrap(err, "decoding G1 point")
	}
	return p, nil
}

func ReadG2(bz []byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if len(bz) != bn254.SizeOfG2AffineCompressed {
		return p, errors.Errorf("G2 point must be %d bytes, got %d", bn254.SizeOfG2AffineCompressed, len(bz))
	}
	if _, err := p.SetBytes(bz); err != nil {
		return p, errors.Wrap(err, "decoding G2 point")
	}
	return p, nil
}

func ReadScalar(bz []byte) (fr.Element, error) {
	var el fr.Element
	if len(bz) != fr.Bytes {
		return el, errors.Errorf("scalar must be %d bytes, got %d", fr.Bytes, len(bz))
	}
	v := new(big.Int).SetBytes(bz)
	if v.Cmp(fr.Modulus()) >= 0 {
		return el, errors.New("scalar is not canonical: value exceeds the group order")
	}
	el.SetBigInt(v)
	return el, nil
}
