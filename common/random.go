// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// GetRandomScalar draws a uniformly random element of Zr from the given
// entropy source. The source must be cryptographically secure; callers that
// share one across goroutines are responsible for its concurrency safety.
func GetRandomScalar(rnd io.Reader) (fr.Element, error) {
	var el fr.Element
	n, err := rand.Int(rnd, fr.Modulus())
	if err != nil {
		return el, errors.Wrap(err, "rand.Int failure in GetRandomScalar")
	}
	el.SetBigInt(n)
	return el, nil
}

// GetRandomNonZeroScalar draws a uniformly random element of Zr \ {0}.
func GetRandomNonZeroScalar(rnd io.Reader) (fr.Element, error) {
	for {
		el, err := GetRandomScalar(rnd)
		if err != nil {
			return el, err
		}
		if !el.IsZero() {
			return el, nil
		}
	}
}

// ZeroizeScalar clears a secret scalar in place.
func ZeroizeScalar(el *fr.Element) {
	if el == nil {
		return
	}
	el.SetZero()
}
