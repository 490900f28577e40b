// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/crypto"
)

// VerifySignature checks a signature against the issuer public key: the
// degenerate-credential guards, the Schnorr proof over (S, W), and the two
// pairing relations on the randomized credential.
func VerifySignature(suite *crypto.Suite, ipk *IssuerPublicKey, sig *Signature, msg, bsn []byte, link bool) error {
	if sig == nil || ipk == nil {
		return errors.New("VerifySignature received nil value(s)")
	}
	g1 := suite.G1()
	if sig.Credential.S.IsInfinity() {
		return errors.Wrap(ErrInvalidCredential1, "degenerate credential: S is the identity")
	}
	if sig.Credential.R.Equal(&g1) {
		return errors.Wrap(ErrInvalidCredential1, "degenerate credential: R is the generator")
	}
	if err := sig.Proof.Verify(suite, msg, bsn, &sig.Credential.S, &sig.Credential.W, link); err != nil {
		return err
	}
	return sig.Credential.Valid(suite, ipk)
}

// Verifier bundles the suite, the issuer public key and an optional
// revocation list behind a single Verify entry point.
type Verifier struct {
	suite   *crypto.Suite
	ipk     *IssuerPublicKey
	revoked *RevocationList
}

func NewVerifier(suite *crypto.Suite, ipk *IssuerPublicKey) *Verifier {
	return &Verifier{suite: suite, ipk: ipk}
}

func (v *Verifier) SetRevocationList(rl *RevocationList) {
	v.revoked = rl
}

// Verify checks the signature and, for link=true with a revocation list
// installed, rejects revoked members via their linkability token.
func (v *Verifier) Verify(sig *Signature, msg, bsn []byte, link bool) error {
	if err := VerifySignature(v.suite, v.ipk, sig, msg, bsn, link); err != nil {
		return err
	}
	if link && v.revoked != nil {
		hit, err := v.revoked.Revoked(v.suite, sig, bsn)
		if err != nil {
			return err
		}
		if hit {
			return ErrMemberRevoked
		}
	}
	return nil
}
