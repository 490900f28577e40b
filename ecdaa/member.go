// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
	"github.com/binance-chain/ecdaa-lib/crypto/schnorr"
)

// Member holds the secret key obtained during Join together with the issuer
// public key and the issued credential. The secret never leaves the Member;
// signing only ever reveals randomized credentials and proofs over them.
type Member struct {
	sk         fr.Element
	ipk        *IssuerPublicKey
	credential *Credential
}

// NewMember assembles a member from a completed join. The join package is
// the intended caller.
func NewMember(sk fr.Element, ipk *IssuerPublicKey, credential *Credential) *Member {
	return &Member{sk: sk, ipk: ipk, credential: credential}
}

func (m *Member) PublicKey() *IssuerPublicKey {
	return m.ipk
}

func (m *Member) Credential() *Credential {
	return m.credential
}

// Sign randomizes the credential with a fresh ℓ and proves knowledge of sk
// over the bases (S, W). With link=true the signature carries the
// linkability token K = H_G1(bsn)^sk; signatures by the same member under
// the same base-name then share K, while distinct base-names stay
// unlinkable.
func (m *Member) Sign(suite *crypto.Suite, msg, bsn []byte, link bool) (*Signature, error) {
	if m == nil || m.credential == nil {
		return nil, errors.New("Sign: member has no credential")
	}
	rc, err := m.credential.Randomize(suite.Rand())
	if err != nil {
		return nil, err
	}
	proof, err := schnorr.NewProof(suite, msg, bsn, &m.sk, &rc.S, &rc.W, link)
	if err != nil {
		return nil, err
	}
	return &Signature{Credential: *rc, Proof: *proof}, nil
}

func (m *Member) Zeroize() {
	common.ZeroizeScalar(&m.sk)
}

func (m *Member) String() string {
	return "ecdaa.Member(redacted)"
}
