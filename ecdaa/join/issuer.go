// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package join

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
	"github.com/binance-chain/ecdaa-lib/crypto/schnorr"
	"github.com/binance-chain/ecdaa-lib/ecdaa"
)

// Issuer is the long-lived issuer side of the join protocol. Its key
// material is read-only after construction and may be shared across
// concurrent sessions; the nonce replay set is the only mutable state and
// is guarded by a mutex.
type Issuer struct {
	suite *crypto.Suite
	isk   *ecdaa.IssuerSecretKey
	ipk   *ecdaa.IssuerPublicKey

	mtx  sync.Mutex
	seen map[[fr.Bytes]byte]struct{}
}

func NewIssuer(suite *crypto.Suite, isk *ecdaa.IssuerSecretKey, ipk *ecdaa.IssuerPublicKey) (*Issuer, error) {
	if suite == nil || isk == nil || ipk == nil {
		return nil, errors.New("join.NewIssuer received nil value(s)")
	}
	if err := ipk.Valid(suite); err != nil {
		return nil, err
	}
	return &Issuer{
		suite: suite,
		isk:   isk,
		ipk:   ipk,
		seen:  make(map[[fr.Bytes]byte]struct{}),
	}, nil
}

func (iss *Issuer) PublicKey() *ecdaa.IssuerPublicKey {
	return iss.ipk
}

// NewSession opens a join session and draws its nonce (message 1). Nonces
// are per-join; a drawn nonce is recorded and never handed out again.
func (iss *Issuer) NewSession() (*AwaitingRequest, error) {
	for {
		n, err := common.GetRandomScalar(iss.suite.Rand())
		if err != nil {
			return nil, err
		}
		key := n.Bytes()
		iss.mtx.Lock()
		if _, dup := iss.seen[key]; !dup {
			iss.seen[key] = struct{}{}
			iss.mtx.Unlock()
			common.Logger.Debugf("join: session opened")
			return &AwaitingRequest{issuer: iss, nonce: n}, nil
		}
		iss.mtx.Unlock()
	}
}

// AwaitingRequest is an issuer session that has sent its nonce and waits
// for the member's request. Receive consumes it; a consumed or failed
// session cannot be replayed — open a new one instead.
type AwaitingRequest struct {
	issuer   *Issuer
	nonce    fr.Element
	consumed bool
}

// Nonce is message 1, sent to the joining member.
func (st *AwaitingRequest) Nonce() fr.Element {
	return st.nonce
}

// Receive verifies the member's request (message 2) against this session's
// nonce and advances to ReadyToIssue. Any failure aborts the session.
func (st *AwaitingRequest) Receive(req *Request) (*ReadyToIssue, error) {
	if st == nil || st.consumed {
		return nil, errors.New("join: session is not awaiting a request")
	}
	st.consumed = true
	if req == nil || !req.ValidateBasic() {
		return nil, errors.New("join: malformed request")
	}
	if !req.Proof.N.Equal(&st.nonce) {
		return nil, errors.New("join: request is bound to a different nonce")
	}
	if err := req.Proof.Verify(st.issuer.suite, &req.Q); err != nil {
		return nil, err
	}
	common.Logger.Debugf("join: request accepted")
	return &ReadyToIssue{issuer: st.issuer, q: req.Q}, nil
}

// ReadyToIssue is an issuer session whose member proof has verified.
type ReadyToIssue struct {
	issuer   *Issuer
	q        bn254.G1Affine
	consumed bool
}

// Issue produces message 3: the credential
//
//	A = g1^ℓ, B = A^y, C = (A+D)^x, D = Q^{ℓy}
//
// together with a proof that B and D share the exponent w = ℓ·y. Issue
// consumes the session.
func (st *ReadyToIssue) Issue() (*CredentialMessage, error) {
	if st == nil || st.consumed {
		return nil, errors.New("join: session is not ready to issue")
	}
	st.consumed = true
	suite := st.issuer.suite

	l, err := common.GetRandomNonZeroScalar(suite.Rand())
	if err != nil {
		return nil, err
	}
	defer common.ZeroizeScalar(&l)

	// w = ℓ·y
	var w fr.Element
	w.Mul(&l, &st.issuer.isk.Y)
	defer common.ZeroizeScalar(&w)

	lBig := l.BigInt(new(big.Int))
	wBig := w.BigInt(new(big.Int))
	xBig := st.issuer.isk.X.BigInt(new(big.Int))
	defer func() {
		lBig.SetInt64(0)
		wBig.SetInt64(0)
		xBig.SetInt64(0)
	}()

	g1 := suite.G1()
	var a, b, d bn254.G1Affine
	a.ScalarMultiplication(&g1, lBig)
	b.ScalarMultiplication(&g1, wBig)
	d.ScalarMultiplication(&st.q, wBig)

	// C = (A+D)^x = A^x · Q^{xyℓ}
	var ad, c bn254.G1Affine
	ad.Add(&a, &d)
	c.ScalarMultiplication(&ad, xBig)

	proof, err := schnorr.NewJointProof(suite, &w, &st.q, &b, &d)
	if err != nil {
		return nil, err
	}
	common.Logger.Debugf("join: credential issued")
	return &CredentialMessage{
		Credential: ecdaa.Credential{A: a, B: b, C: c, D: d},
		Proof:      *proof,
	}, nil
}

// CredentialMessage is message 3 of the protocol: the issued credential and
// the issuer's well-formedness proof π₂.
type CredentialMessage struct {
	Credential ecdaa.Credential
	Proof      schnorr.JointProof
}
