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

var (
	ErrInvalidProof    = errors.New("invalid schnorr proof")
	ErrKNotInSignature = errors.New("linkability requested but K is absent from the signature")
)

const (
	domainProof = "ecdaa/schnorr"
	domainNonce = "ecdaa/schnorr-nonce"
)

// Proof is a Fiat-Shamir Schnorr proof of knowledge of sk with W = S^sk.
// With the linkable branch it additionally ties the token K = H_G1(bsn)^sk
// to the same sk. The nonce N decouples the proof's binding from any outer
// nonce protocol; it enters the challenge as c = H(N ‖ c2) and verification
// must recompute it the same way.
type Proof struct {
	C, S, N fr.Element
	// K is the linkability token; nil unless the proof was produced with link=true
	K *bn254.G1Affine
}

// NewProof proves knowledge of sk such that w = sBase^sk. With link=true the
// base-name bsn is hashed to a second base B = H_G1(bsn) and the proof also
// covers K = B^sk under the same sk.
func NewProof(suite *crypto.Suite, msg, bsn []byte, sk *fr.Element, sBase, w *bn254.G1Affine, link bool) (*Proof, error) {
	if suite == nil || sk == nil || sBase == nil || w == nil {
		return nil, errors.New("schnorr.NewProof received nil value(s)")
	}
	r, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, err
	}
	defer common.ZeroizeScalar(&r)

	var e bn254.G1Affine
	e.ScalarMultiplication(sBase, r.BigInt(new(big.Int)))

	t := suite.NewTranscript(domainProof)
	t.AppendG1(&e).AppendG1(sBase).AppendG1(w)

	var k *bn254.G1Affine
	if link {
		b, err := suite.HashToG1(bsn)
		if err != nil {
			return nil, err
		}
		var kp, l bn254.G1Affine
		kp.ScalarMultiplication(&b, sk.BigInt(new(big.Int)))
		l.ScalarMultiplication(&b, r.BigInt(new(big.Int)))
		t.AppendG1(&l).AppendG1(&b).AppendG1(&kp).AppendBytes(bsn)
		k = &kp
	}
	t.AppendBytes(msg)
	c2 := t.Scalar()

	n, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, err
	}
	c := outerChallenge(suite, &n, &c2)

	var s fr.Element
	s.Mul(&c, sk)
	s.Add(&s, &r)

	return &Proof{C: c, S: s, N: n, K: k}, nil
}

// Verify recomputes the challenge from the recovered commitments and the
// transcript of NewProof.
func (pf *Proof) Verify(suite *crypto.Suite, msg, bsn []byte, sBase, w *bn254.G1Affine, link bool) error {
	if pf == nil || suite == nil || sBase == nil || w == nil || !pf.ValidateBasic() {
		return ErrInvalidProof
	}

	// E = S^s − c·W
	e := recoverCommitment(sBase, w, &pf.S, &pf.C)

	t := suite.NewTranscript(domainProof)
	t.AppendG1(&e).AppendG1(sBase).AppendG1(w)

	if link {
		if pf.K == nil {
			return ErrKNotInSignature
		}
		b, err := suite.HashToG1(bsn)
		if err != nil {
			return err
		}
		// L = B^s − c·K
		l := recoverCommitment(&b, pf.K, &pf.S, &pf.C)
		t.AppendG1(&l).AppendG1(&b).AppendG1(pf.K).AppendBytes(bsn)
	}
	t.AppendBytes(msg)
	c2 := t.Scalar()

	c := outerChallenge(suite, &pf.N, &c2)
	if !c.Equal(&pf.C) {
		return ErrInvalidProof
	}
	return nil
}

func (pf *Proof) ValidateBasic() bool {
	if pf == nil {
		return false
	}
	if pf.K != nil && (pf.K.IsInfinity() || !pf.K.IsInSubGroup()) {
		return false
	}
	return true
}

// recoverCommitment computes base^s − c·pub, the verifier-side image of the
// prover's commitment.
func recoverCommitment(base, pub *bn254.G1Affine, s, c *fr.Element) bn254.G1Affine {
	var sb, cp bn254.G1Affine
	sb.ScalarMultiplication(base, s.BigInt(new(big.Int)))
	cp.ScalarMultiplication(pub, c.BigInt(new(big.Int)))
	sb.Sub(&sb, &cp)
	return sb
}

// c = H(n ‖ c2)
func outerChallenge(suite *crypto.Suite, n, c2 *fr.Element) fr.Element {
	return suite.NewTranscript(domainNonce).AppendScalar(n).AppendScalar(c2).Scalar()
}
