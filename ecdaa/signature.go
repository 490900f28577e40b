// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"github.com/binance-chain/ecdaa-lib/crypto/schnorr"
)

// Signature is a randomized credential plus a Schnorr proof over its (S, W)
// bases. Proof.K is present iff the signature was produced with link=true.
// Signatures are ephemeral, one randomization per message.
type Signature struct {
	Credential RandomizedCredential
	Proof      schnorr.Proof
}

func (sig *Signature) ValidateBasic() bool {
	if sig == nil {
		return false
	}
	return sig.Proof.ValidateBasic()
}
