// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

// testRand is a deterministic byte stream for fixture tests: SHA-256 over
// (seed ‖ counter) blocks.
type testRand struct {
	seed []byte
	ctr  uint64
	buf  []byte
}

func newTestRand(seed []byte) *testRand {
	return &testRand{seed: seed}
}

func (r *testRand) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			h := sha256.New()
			h.Write(r.seed)
			var ctrBz [8]byte
			binary.BigEndian.PutUint64(ctrBz[:], r.ctr)
			h.Write(ctrBz[:])
			r.ctr++
			r.buf = h.Sum(nil)
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

func testIssuer(t *testing.T, suite *crypto.Suite) (*IssuerSecretKey, *IssuerPublicKey) {
	isk, ipk, err := GenerateIssuer(suite)
	require.NoError(t, err)
	return isk, ipk
}

// testMember manufactures a member with an honestly issued credential,
// bypassing the join protocol (which has its own tests):
//
//	A = g1^ℓ, B = g1^{ℓy}, D = Q^{ℓy}, C = (A+D)^x with Q = g1^sk
func testMember(t *testing.T, suite *crypto.Suite, isk *IssuerSecretKey, ipk *IssuerPublicKey) *Member {
	sk, err := common.GetRandomNonZeroScalar(suite.Rand())
	require.NoError(t, err)

	l, err := common.GetRandomNonZeroScalar(suite.Rand())
	require.NoError(t, err)

	var w fr.Element
	w.Mul(&l, &isk.Y)

	g1 := suite.G1()
	var q, a, b, d, ad, c bn254.G1Affine
	q.ScalarMultiplication(&g1, sk.BigInt(new(big.Int)))
	a.ScalarMultiplication(&g1, l.BigInt(new(big.Int)))
	b.ScalarMultiplication(&g1, w.BigInt(new(big.Int)))
	d.ScalarMultiplication(&q, w.BigInt(new(big.Int)))
	ad.Add(&a, &d)
	c.ScalarMultiplication(&ad, isk.X.BigInt(new(big.Int)))

	cred := &Credential{A: a, B: b, C: c, D: d}
	require.NoError(t, cred.Valid(suite, ipk))
	return NewMember(sk, ipk, cred)
}
