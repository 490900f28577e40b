// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package schnorr

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

const (
	domainJoinRequest    = "ecdaa/join-request"
	domainJoinCredential = "ecdaa/join-credential"
	domainJoinSeed       = "ecdaa/join-seed"
)

// JoinProof is the member's proof of knowledge of sk with Q = g1^sk, bound
// to the issuer's per-join nonce. N echoes that nonce; the issuer compares
// it against its session state before verifying.
type JoinProof struct {
	C1, S1, N fr.Element
}

// NewJoinProof produces the join-request proof. A non-empty seed is folded
// into the derivation of the commitment randomness together with a fresh
// draw, so equal RNG states with distinct seeds still yield distinct
// requests; the challenge transcript itself is unchanged.
func NewJoinProof(suite *crypto.Suite, sk *fr.Element, q *bn254.G1Affine, nonce fr.Element, seed []byte) (*JoinProof, error) {
	if suite == nil || sk == nil || q == nil {
		return nil, errors.New("schnorr.NewJoinProof received nil value(s)")
	}
	r1, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, err
	}
	if len(seed) > 0 {
		mixed := suite.NewTranscript(domainJoinSeed).AppendBytes(seed).AppendScalar(&r1).Scalar()
		common.ZeroizeScalar(&r1)
		r1 = mixed
	}
	defer common.ZeroizeScalar(&r1)

	g1 := suite.G1()
	var u1 bn254.G1Affine
	u1.ScalarMultiplication(&g1, r1.BigInt(new(big.Int)))

	// c1 = H(U1 ‖ Q ‖ n)
	c1 := suite.NewTranscript(domainJoinRequest).AppendG1(&u1).AppendG1(q).AppendScalar(&nonce).Scalar()

	var s1 fr.Element
	s1.Mul(&c1, sk)
	s1.Add(&s1, &r1)

	return &JoinProof{C1: c1, S1: s1, N: nonce}, nil
}

func (pf *JoinProof) Verify(suite *crypto.Suite, q *bn254.G1Affine) error {
	if pf == nil || suite == nil || q == nil {
		return ErrInvalidProof
	}
	g1 := suite.G1()
	// U1 = g1^s1 − c1·Q
	u1 := recoverCommitment(&g1, q, &pf.S1, &pf.C1)

	c1 := suite.NewTranscript(domainJoinRequest).AppendG1(&u1).AppendG1(q).AppendScalar(&pf.N).Scalar()
	if !c1.Equal(&pf.C1) {
		return ErrInvalidProof
	}
	return nil
}

// JointProof shows that two points share a single exponent across two bases:
// b = g1^w and d = base2^w. The issuer uses it to prove the issued
// credential's B and D carry the same ℓ·y.
type JointProof struct {
	C2, S2 fr.Element
}

func NewJointProof(suite *crypto.Suite, w *fr.Element, base2, b, d *bn254.G1Affine) (*JointProof, error) {
	if suite == nil || w == nil || base2 == nil || b == nil || d == nil {
		return nil, errors.New("schnorr.NewJointProof received nil value(s)")
	}
	r2, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, err
	}
	defer common.ZeroizeScalar(&r2)

	g1 := suite.G1()
	var u2, v2 bn254.G1Affine
	u2.ScalarMultiplication(&g1, r2.BigInt(new(big.Int)))
	v2.ScalarMultiplication(base2, r2.BigInt(new(big.Int)))

	// c2 = H(U2 ‖ V2 ‖ B ‖ Q ‖ D)
	c2 := suite.NewTranscript(domainJoinCredential).
		AppendG1(&u2).AppendG1(&v2).AppendG1(b).AppendG1(base2).AppendG1(d).
		Scalar()

	var s2 fr.Element
	s2.Mul(&c2, w)
	s2.Add(&s2, &r2)

	return &JointProof{C2: c2, S2: s2}, nil
}

func (pf *JointProof) Verify(suite *crypto.Suite, base2, b, d *bn254.G1Affine) error {
	if pf == nil || suite == nil || base2 == nil || b == nil || d == nil {
		return ErrInvalidProof
	}
	g1 := suite.G1()
	// U2 = g1^s2 − c2·B, V2 = Q^s2 − c2·D
	u2 := recoverCommitment(&g1, b, &pf.S2, &pf.C2)
	v2 := recoverCommitment(base2, d, &pf.S2, &pf.C2)

	c2 := suite.NewTranscript(domainJoinCredential).
		AppendG1(&u2).AppendG1(&v2).AppendG1(b).AppendG1(base2).AppendG1(d).
		Scalar()
	if !c2.Equal(&pf.C2) {
		return ErrInvalidProof
	}
	return nil
}
