// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binance-chain/ecdaa-lib/crypto"
)

var (
	testMsg = []byte{0, 2, 3}
	testBsn = []byte{0, 2, 3, 4}
)

func TestSignVerify(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	assert.Nil(t, sig.Proof.K)
	assert.NoError(t, VerifySignature(suite, ipk, sig, testMsg, testBsn, false))
}

func TestSignVerifyLinkable(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	assert.NotNil(t, sig.Proof.K)
	assert.NoError(t, VerifySignature(suite, ipk, sig, testMsg, testBsn, true))
}

func TestVerifyWrongMessage(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)

	// scenario: verifying with the base-name in place of the message
	err = VerifySignature(suite, ipk, sig, testBsn, testBsn, true)
	assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))
}

func TestVerifyWrongBaseName(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	err = VerifySignature(suite, ipk, sig, testMsg, []byte("other-bsn"), true)
	assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))
}

func TestVerifyTamperedProof(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	var one fr.Element
	one.SetOne()

	for _, tamper := range []func(sig *Signature){
		func(sig *Signature) { sig.Proof.S.Add(&sig.Proof.S, &one) },
		func(sig *Signature) { sig.Proof.C.Add(&sig.Proof.C, &one) },
		func(sig *Signature) { sig.Proof.N.Add(&sig.Proof.N, &one) },
	} {
		sig, err := m.Sign(suite, testMsg, testBsn, true)
		require.NoError(t, err)
		tamper(sig)
		err = VerifySignature(suite, ipk, sig, testMsg, testBsn, true)
		assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))
	}
}

func TestVerifyTamperedCredential(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	// replacing T leaves the proof transcript intact but breaks the second
	// pairing relation
	sig, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	other, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	sig.Credential.T = other.Credential.T
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, false)
	assert.Equal(t, ErrInvalidCredential2, errors.Cause(err))

	// replacing R breaks the first pairing relation
	sig, err = m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	sig.Credential.R = other.Credential.R
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, false)
	assert.Equal(t, ErrInvalidCredential1, errors.Cause(err))

	// replacing W invalidates the Schnorr transcript before any pairing
	sig, err = m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	sig.Credential.W = other.Credential.W
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, false)
	assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))
}

func TestVerifyDegenerateCredential(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	var inf bn254.G1Affine
	sig.Credential.S = inf
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, false)
	assert.Equal(t, ErrInvalidCredential1, errors.Cause(err))

	sig, err = m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	sig.Credential.R = suite.G1()
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, false)
	assert.Equal(t, ErrInvalidCredential1, errors.Cause(err))
}

func TestLinkabilityToken(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig1, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	sig2, err := m.Sign(suite, []byte("entirely different msg"), testBsn, true)
	require.NoError(t, err)
	assert.True(t, sig1.Proof.K.Equal(sig2.Proof.K),
		"same member and base-name must produce the same K")

	sig3, err := m.Sign(suite, testMsg, []byte("other-bsn"), true)
	require.NoError(t, err)
	assert.False(t, sig1.Proof.K.Equal(sig3.Proof.K),
		"a different base-name must produce a different K")

	other := testMember(t, suite, isk, ipk)
	sig4, err := other.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	assert.False(t, sig1.Proof.K.Equal(sig4.Proof.K),
		"a different member must produce a different K")
}

func TestSignaturesUnlinkable(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	sig1, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	sig2, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)

	assert.False(t, sig1.Credential.R.Equal(&sig2.Credential.R))
	assert.False(t, sig1.Credential.S.Equal(&sig2.Credential.S))
	assert.False(t, sig1.Credential.T.Equal(&sig2.Credential.T))
	assert.False(t, sig1.Credential.W.Equal(&sig2.Credential.W))
}

func TestRevocation(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	v := NewVerifier(suite, ipk)
	rl := NewRevocationList()
	v.SetRevocationList(rl)

	sig, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	assert.NoError(t, v.Verify(sig, testMsg, testBsn, true))

	rl.Add(m.sk)
	assert.Equal(t, 1, rl.Size())
	assert.Equal(t, ErrMemberRevoked, v.Verify(sig, testMsg, testBsn, true))

	// a link=false signature carries no token and is not rejectable
	plain, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	assert.NoError(t, v.Verify(plain, testMsg, testBsn, false))

	assert.True(t, rl.Remove(m.sk))
	assert.NoError(t, v.Verify(sig, testMsg, testBsn, true))
}

func TestRevokedOnUnlinkedSignature(t *testing.T) {
	suite := crypto.NewSuite()
	isk, ipk := testIssuer(t, suite)
	m := testMember(t, suite, isk, ipk)

	rl := NewRevocationList()
	rl.Add(m.sk)

	sig, err := m.Sign(suite, testMsg, testBsn, false)
	require.NoError(t, err)
	_, err = rl.Revoked(suite, sig, testBsn)
	assert.Equal(t, ErrKNotInSignature, err)
}

// Deterministic fixture covering the concrete end-to-end scenario: a seeded
// RNG, issuer generation, a manufactured join, signing and the documented
// failure modes.
func TestDeterministicScenario(t *testing.T) {
	seed := make([]byte, 100)
	for i := range seed {
		seed[i] = byte(i)
	}
	suite := crypto.NewSuite()
	suite.SetRand(newTestRand(seed))

	isk, ipk, err := GenerateIssuer(suite)
	require.NoError(t, err)
	require.NoError(t, ipk.Valid(suite))

	m := testMember(t, suite, isk, ipk)
	require.NoError(t, m.Credential().Valid(suite, ipk))

	sig, err := m.Sign(suite, testMsg, testBsn, true)
	require.NoError(t, err)
	assert.NoError(t, VerifySignature(suite, ipk, sig, testMsg, testBsn, true))

	// verifying with the wrong message
	err = VerifySignature(suite, ipk, sig, testBsn, testBsn, true)
	assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))

	// corrupting the response scalar
	var one fr.Element
	one.SetOne()
	sig.Proof.S.Add(&sig.Proof.S, &one)
	err = VerifySignature(suite, ipk, sig, testMsg, testBsn, true)
	assert.Equal(t, ErrInvalidSchnorrProof, errors.Cause(err))

	// corrupting the credential
	cred := *m.Credential()
	cred.A = cred.B
	assert.Equal(t, ErrInvalidCredential1, cred.Valid(suite, ipk))
}
