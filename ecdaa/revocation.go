// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/binance-chain/ecdaa-lib/crypto"
)

// RevocationList is a blacklist of leaked member secret keys. A link=true
// signature by a revoked key is detected through its token
// K = H_G1(bsn)^sk. A link=false signature carries no token and cannot be
// matched against the list; that is inherent to the scheme, not an
// oversight. List distribution is out of scope.
type RevocationList struct {
	mtx sync.RWMutex
	sks []fr.Element
}

func NewRevocationList() *RevocationList {
	return &RevocationList{}
}

func (rl *RevocationList) Add(sk fr.Element) {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()
	for i := range rl.sks {
		if rl.sks[i].Equal(&sk) {
			return
		}
	}
	rl.sks = append(rl.sks, sk)
}

// Remove deletes a key from the list; returns whether it was present.
func (rl *RevocationList) Remove(sk fr.Element) bool {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()
	for i := range rl.sks {
		if rl.sks[i].Equal(&sk) {
			rl.sks = append(rl.sks[:i], rl.sks[i+1:]...)
			return true
		}
	}
	return false
}

func (rl *RevocationList) Size() int {
	rl.mtx.RLock()
	defer rl.mtx.RUnlock()
	return len(rl.sks)
}

// Revoked reports whether the signature's linkability token matches any
// revoked key under the given base-name. ErrKNotInSignature when the
// signature carries no token.
func (rl *RevocationList) Revoked(suite *crypto.Suite, sig *Signature, bsn []byte) (bool, error) {
	if sig == nil || sig.Proof.K == nil {
		return false, ErrKNotInSignature
	}
	b, err := suite.HashToG1(bsn)
	if err != nil {
		return false, err
	}
	rl.mtx.RLock()
	defer rl.mtx.RUnlock()
	for i := range rl.sks {
		var k bn254.G1Affine
		k.ScalarMultiplication(&b, rl.sks[i].BigInt(new(big.Int)))
		if k.Equal(sig.Proof.K) {
			return true, nil
		}
	}
	return false, nil
}
