// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

// Credential is the quadruple (A, B, C, D) issued during Join, satisfying
// e(A, Y) = e(B, g2) and e(C, g2) = e(A+D, X). It contains no secrets.
type Credential struct {
	A, B, C, D bn254.G1Affine
}

// RandomizedCredential is a credential scaled by a fresh ℓ ≠ 0. The pairing
// relations are preserved because ℓ cancels; the scaling hides which
// credential it came from.
type RandomizedCredential struct {
	R, S, T, W bn254.G1Affine
}

// Valid checks the two issuance pairing relations against the issuer key.
func (cred *Credential) Valid(suite *crypto.Suite, ipk *IssuerPublicKey) error {
	if cred == nil || ipk == nil {
		return ErrInvalidCredential1
	}
	return validCredentialPoints(suite, ipk, &cred.A, &cred.B, &cred.C, &cred.D)
}

// Randomize draws a fresh non-zero ℓ and scales every component.
func (cred *Credential) Randomize(rnd io.Reader) (*RandomizedCredential, error) {
	l, err := common.GetRandomNonZeroScalar(rnd)
	if err != nil {
		return nil, err
	}
	defer common.ZeroizeScalar(&l)
	return cred.randomize(&l), nil
}

func (cred *Credential) randomize(l *fr.Element) *RandomizedCredential {
	lBig := l.BigInt(new(big.Int))
	rc := new(RandomizedCredential)
	rc.R.ScalarMultiplication(&cred.A, lBig)
	rc.S.ScalarMultiplication(&cred.B, lBig)
	rc.T.ScalarMultiplication(&cred.C, lBig)
	rc.W.ScalarMultiplication(&cred.D, lBig)
	lBig.SetInt64(0)
	return rc
}

func (cred *Credential) ValidateBasic() bool {
	if cred == nil {
		return false
	}
	for _, p := range []*bn254.G1Affine{&cred.A, &cred.B, &cred.C, &cred.D} {
		if p.IsInfinity() || !p.IsInSubGroup() {
			return false
		}
	}
	return true
}

// Valid checks the same pairing relations as Credential.Valid; they hold for
// any non-zero randomization of a valid credential.
func (rc *RandomizedCredential) Valid(suite *crypto.Suite, ipk *IssuerPublicKey) error {
	if rc == nil || ipk == nil {
		return ErrInvalidCredential1
	}
	return validCredentialPoints(suite, ipk, &rc.R, &rc.S, &rc.T, &rc.W)
}

// validCredentialPoints evaluates the credential predicate on (a, b, c, d):
//
//	e(a, Y) == e(b, g2)   and   e(c, g2) == e(a+d, X)
//
// via product-of-pairings checks with one side negated.
func validCredentialPoints(suite *crypto.Suite, ipk *IssuerPublicKey, a, b, c, d *bn254.G1Affine) error {
	g2 := suite.G2()

	var negB bn254.G1Affine
	negB.Neg(b)
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{*a, negB},
		[]bn254.G2Affine{ipk.Y, g2},
	)
	if err != nil {
		return errors.Wrap(err, "pairing check e(A, Y) = e(B, g2)")
	}
	if !ok {
		return ErrInvalidCredential1
	}

	var ad, negC bn254.G1Affine
	ad.Add(a, d)
	negC.Neg(c)
	ok, err = bn254.PairingCheck(
		[]bn254.G1Affine{ad, negC},
		[]bn254.G2Affine{ipk.X, g2},
	)
	if err != nil {
		return errors.Wrap(err, "pairing check e(C, g2) = e(A+D, X)")
	}
	if !ok {
		return ErrInvalidCredential2
	}
	return nil
}
