// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package join

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
	"github.com/binance-chain/ecdaa-lib/crypto/schnorr"
	"github.com/binance-chain/ecdaa-lib/ecdaa"
)

// Request is message 2 of the protocol: the member's join point Q = g1^sk
// and the proof π₁ binding it to the issuer nonce.
type Request struct {
	Q     bn254.G1Affine
	Proof schnorr.JoinProof
}

func (req *Request) ValidateBasic() bool {
	if req == nil {
		return false
	}
	return !req.Q.IsInfinity() && req.Q.IsInSubGroup()
}

// PendingMember holds the member's freshly drawn secret between sending the
// request and receiving the credential. Activate consumes it.
type PendingMember struct {
	suite *crypto.Suite
	sk    fr.Element
	ipk   *ecdaa.IssuerPublicKey
	done  bool
}

// NewRequest validates the issuer public key, draws the member secret and
// builds the join request bound to the issuer's nonce. The optional seed is
// folded into the proof's commitment-randomness derivation.
func NewRequest(suite *crypto.Suite, ipk *ecdaa.IssuerPublicKey, nonce fr.Element, seed []byte) (*Request, *PendingMember, error) {
	if suite == nil || ipk == nil {
		return nil, nil, errors.New("join.NewRequest received nil value(s)")
	}
	if err := ipk.Valid(suite); err != nil {
		return nil, nil, err
	}

	sk, err := common.GetRandomNonZeroScalar(suite.Rand())
	if err != nil {
		return nil, nil, err
	}

	g1 := suite.G1()
	skBig := sk.BigInt(new(big.Int))
	var q bn254.G1Affine
	q.ScalarMultiplication(&g1, skBig)
	skBig.SetInt64(0)

	proof, err := schnorr.NewJoinProof(suite, &sk, &q, nonce, seed)
	if err != nil {
		common.ZeroizeScalar(&sk)
		return nil, nil, err
	}
	common.Logger.Debugf("join: request created")
	return &Request{Q: q, Proof: *proof},
		&PendingMember{suite: suite, sk: sk, ipk: ipk},
		nil
}

// Activate verifies the issued credential (message 3) and completes the
// join: the degenerate-A guard, the issuer's π₂ against the member's own
// Q = g1^sk, and the two pairing relations. On success the member persists
// (sk, ipk, credential); on failure the pending secret is zeroized and the
// join must be restarted.
func (pm *PendingMember) Activate(msg *CredentialMessage) (*ecdaa.Member, error) {
	if pm == nil || pm.done {
		return nil, errors.New("join: member state already consumed")
	}
	pm.done = true
	if msg == nil {
		common.ZeroizeScalar(&pm.sk)
		return nil, errors.New("join: nil credential message")
	}

	cred := msg.Credential
	g1 := pm.suite.G1()
	if cred.A.Equal(&g1) {
		common.ZeroizeScalar(&pm.sk)
		return nil, errors.Wrap(ecdaa.ErrInvalidCredential1, "degenerate credential: A is the generator")
	}

	skBig := pm.sk.BigInt(new(big.Int))
	var q bn254.G1Affine
	q.ScalarMultiplication(&g1, skBig)
	skBig.SetInt64(0)

	if err := msg.Proof.Verify(pm.suite, &q, &cred.B, &cred.D); err != nil {
		common.ZeroizeScalar(&pm.sk)
		return nil, err
	}
	if err := cred.Valid(pm.suite, pm.ipk); err != nil {
		common.ZeroizeScalar(&pm.sk)
		return nil, err
	}
	common.Logger.Debugf("join: credential accepted, member activated")
	return ecdaa.NewMember(pm.sk, pm.ipk, &cred), nil
}
