// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

const domainIssuerKey = "ecdaa/ipk"

// IssuerSecretKey is the pair (x, y) ∈ Zr². It is never serialized and
// should be zeroized when the issuer is destroyed.
type IssuerSecretKey struct {
	X, Y fr.Element
}

func (isk *IssuerSecretKey) Zeroize() {
	common.ZeroizeScalar(&isk.X)
	common.ZeroizeScalar(&isk.Y)
}

func (isk *IssuerSecretKey) String() string {
	return "ecdaa.IssuerSecretKey(redacted)"
}

// IssuerPublicKey is (X, Y) = (g2^x, g2^y) together with a non-interactive
// Schnorr proof (c, sx, sy) of knowledge of (x, y). It contains no secrets
// and is immutable once published.
type IssuerPublicKey struct {
	X, Y      bn254.G2Affine
	C, Sx, Sy fr.Element
}

// GenerateIssuer draws a fresh issuer key pair and the IPK self-proof:
// c = H(Ux ‖ Uy ‖ g2 ‖ X ‖ Y), sx = rx + c·x, sy = ry + c·y.
func GenerateIssuer(suite *crypto.Suite) (*IssuerSecretKey, *IssuerPublicKey, error) {
	x, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, nil, err
	}
	y, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, nil, err
	}

	g2 := suite.G2()
	var pkX, pkY bn254.G2Affine
	pkX.ScalarMultiplication(&g2, x.BigInt(new(big.Int)))
	pkY.ScalarMultiplication(&g2, y.BigInt(new(big.Int)))

	rx, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, nil, err
	}
	ry, err := common.GetRandomScalar(suite.Rand())
	if err != nil {
		return nil, nil, err
	}
	defer common.ZeroizeScalar(&rx)
	defer common.ZeroizeScalar(&ry)

	var ux, uy bn254.G2Affine
	ux.ScalarMultiplication(&g2, rx.BigInt(new(big.Int)))
	uy.ScalarMultiplication(&g2, ry.BigInt(new(big.Int)))

	c := ipkChallenge(suite, &ux, &uy, &pkX, &pkY)

	var sx, sy fr.Element
	sx.Mul(&c, &x)
	sx.Add(&sx, &rx)
	sy.Mul(&c, &y)
	sy.Add(&sy, &ry)

	common.Logger.Debugf("issuer key pair generated")
	isk := &IssuerSecretKey{X: x, Y: y}
	ipk := &IssuerPublicKey{X: pkX, Y: pkY, C: c, Sx: sx, Sy: sy}
	return isk, ipk, nil
}

// Valid checks the IPK self-proof by recovering Ux = g2^sx − c·X and
// Uy = g2^sy − c·Y and recomputing the challenge.
func (ipk *IssuerPublicKey) Valid(suite *crypto.Suite) error {
	if ipk == nil || !ipk.ValidateBasic() {
		return ErrInvalidPublicKey
	}
	g2 := suite.G2()
	ux := recoverG2Commitment(&g2, &ipk.X, &ipk.Sx, &ipk.C)
	uy := recoverG2Commitment(&g2, &ipk.Y, &ipk.Sy, &ipk.C)

	c := ipkChallenge(suite, &ux, &uy, &ipk.X, &ipk.Y)
	if !c.Equal(&ipk.C) {
		return ErrInvalidPublicKey
	}
	return nil
}

func (ipk *IssuerPublicKey) ValidateBasic() bool {
	if ipk == nil {
		return false
	}
	if ipk.X.IsInfinity() || ipk.Y.IsInfinity() {
		return false
	}
	return ipk.X.IsInSubGroup() && ipk.Y.IsInSubGroup()
}

func ipkChallenge(suite *crypto.Suite, ux, uy, x, y *bn254.G2Affine) fr.Element {
	g2 := suite.G2()
	return suite.NewTranscript(domainIssuerKey).
		AppendG2(ux).AppendG2(uy).AppendG2(&g2).AppendG2(x).AppendG2(y).
		Scalar()
}

func recoverG2Commitment(base, pub *bn254.G2Affine, s, c *fr.Element) bn254.G2Affine {
	var sb, cp bn254.G2Affine
	sb.ScalarMultiplication(base, s.BigInt(new(big.Int)))
	cp.ScalarMultiplication(pub, c.BigInt(new(big.Int)))
	sb.Sub(&sb, &cp)
	return sb
}
