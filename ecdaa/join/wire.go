// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package join

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

// Wire format, length-prefixed fields in declared order:
//
//	Request:           Q ‖ c1 ‖ s1 ‖ n
//	CredentialMessage: A ‖ B ‖ C ‖ D ‖ c2 ‖ s2

const (
	requestWireFields           = 4
	credentialMessageWireFields = 6
)

func (req *Request) Bytes() []byte {
	var buf []byte
	qBz := req.Q.Bytes()
	buf = common.AppendLengthPrefixed(buf, qBz[:])
	c1 := req.Proof.C1.Bytes()
	buf = common.AppendLengthPrefixed(buf, c1[:])
	s1 := req.Proof.S1.Bytes()
	buf = common.AppendLengthPrefixed(buf, s1[:])
	n := req.Proof.N.Bytes()
	buf = common.AppendLengthPrefixed(buf, n[:])
	return buf
}

func NewRequestFromBytes(bz []byte) (*Request, error) {
	fields, err := common.SplitLengthPrefixed(bz)
	if err != nil {
		return nil, errors.Wrap(err, "Request")
	}
	if len(fields) != requestWireFields {
		return nil, errors.Errorf("Request wants %d fields, got %d", requestWireFields, len(fields))
	}
	req := new(Request)
	var mErr error
	if p, err := crypto.ReadG1(fields[0]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field Q"))
	} else {
		req.Q = p
	}
	if el, err := crypto.ReadScalar(fields[1]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field c1"))
	} else {
		req.Proof.C1 = el
	}
	if el, err := crypto.ReadScalar(fields[2]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field s1"))
	} else {
		req.Proof.S1 = el
	}
	if el, err := crypto.ReadScalar(fields[3]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field n"))
	} else {
		req.Proof.N = el
	}
	if mErr != nil {
		return nil, mErr
	}
	return req, nil
}

func (msg *CredentialMessage) Bytes() []byte {
	buf := msg.Credential.Bytes()
	c2 := msg.Proof.C2.Bytes()
	buf = common.AppendLengthPrefixed(buf, c2[:])
	s2 := msg.Proof.S2.Bytes()
	buf = common.AppendLengthPrefixed(buf, s2[:])
	return buf
}

func NewCredentialMessageFromBytes(bz []byte) (*CredentialMessage, error) {
	fields, err := common.SplitLengthPrefixed(bz)
	if err != nil {
		return nil, errors.Wrap(err, "CredentialMessage")
	}
	if len(fields) != credentialMessageWireFields {
		return nil, errors.Errorf("CredentialMessage wants %d fields, got %d", credentialMessageWireFields, len(fields))
	}
	msg := new(CredentialMessage)
	var mErr error
	points := []*bn254.G1Affine{&msg.Credential.A, &msg.Credential.B, &msg.Credential.C, &msg.Credential.D}
	for i, dst := range points {
		p, err := crypto.ReadG1(fields[i])
		if err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "field %c", 'A'+i))
			continue
		}
		*dst = p
	}
	if el, err := crypto.ReadScalar(fields[4]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field c2"))
	} else {
		msg.Proof.C2 = el
	}
	if el, err := crypto.ReadScalar(fields[5]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field s2"))
	} else {
		msg.Proof.S2 = el
	}
	if mErr != nil {
		return nil, mErr
	}
	return msg, nil
}
