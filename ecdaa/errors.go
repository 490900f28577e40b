// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/crypto"
	"github.com/binance-chain/ecdaa-lib/crypto/schnorr"
)

// The terminal error taxonomy. No operation retries; classify with
// errors.Cause against these sentinels.
var (
	// recomputed challenge mismatch in any Schnorr proof
	ErrInvalidSchnorrProof = schnorr.ErrInvalidProof
	// linkability was requested but the signature carries no K
	ErrKNotInSignature = schnorr.ErrKNotInSignature
	// try-and-increment exhausted its counter range
	ErrHashingFailed = crypto.ErrHashingFailed

	// the issuer public key's self-proof does not verify
	ErrInvalidPublicKey = errors.New("invalid issuer public key: self-proof failed")
	// pairing relation e(A, Y) = e(B, g2) does not hold
	ErrInvalidCredential1 = errors.New("invalid credential: e(A, Y) != e(B, g2)")
	// pairing relation e(C, g2) = e(A+D, X) does not hold
	ErrInvalidCredential2 = errors.New("invalid credential: e(C, g2) != e(A+D, X)")
	// the signer's secret key is on the verifier's revocation list
	ErrMemberRevoked = errors.New("member secret key is revoked")
)
