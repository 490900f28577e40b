// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package ecdaa

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/ecdaa-lib/common"
	"github.com/binance-chain/ecdaa-lib/crypto"
)

// Wire format: length-prefixed fields concatenated in declared order.
//
//	IssuerPublicKey:        X ‖ Y ‖ c ‖ sx ‖ sy
//	Credential:             A ‖ B ‖ C ‖ D
//	Signature (link=false): R ‖ S ‖ T ‖ W ‖ c ‖ s ‖ n
//	Signature (link=true):  R ‖ S ‖ T ‖ W ‖ c ‖ s ‖ n ‖ K
//
// Decoders validate every group element and report all invalid fields
// together rather than stopping at the first.

const (
	ipkWireFields           = 5
	credentialWireFields    = 4
	signatureWireFields     = 7
	signatureLinkWireFields = 8
)

func (ipk *IssuerPublicKey) Bytes() []byte {
	var buf []byte
	buf = appendG2Field(buf, &ipk.X)
	buf = appendG2Field(buf, &ipk.Y)
	buf = appendScalarField(buf, ipk.C.Bytes())
	buf = appendScalarField(buf, ipk.Sx.Bytes())
	buf = appendScalarField(buf, ipk.Sy.Bytes())
	return buf
}

func NewIssuerPublicKeyFromBytes(bz []byte) (*IssuerPublicKey, error) {
	fields, err := splitWireFields(bz, ipkWireFields, "IssuerPublicKey")
	if err != nil {
		return nil, err
	}
	ipk := new(IssuerPublicKey)
	var mErr error
	if p, err := crypto.ReadG2(fields[0]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field X"))
	} else {
		ipk.X = p
	}
	if p, err := crypto.ReadG2(fields[1]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field Y"))
	} else {
		ipk.Y = p
	}
	if el, err := crypto.ReadScalar(fields[2]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field c"))
	} else {
		ipk.C = el
	}
	if el, err := crypto.ReadScalar(fields[3]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field sx"))
	} else {
		ipk.Sx = el
	}
	if el, err := crypto.ReadScalar(fields[4]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field sy"))
	} else {
		ipk.Sy = el
	}
	if mErr != nil {
		return nil, mErr
	}
	return ipk, nil
}

func (cred *Credential) Bytes() []byte {
	var buf []byte
	buf = appendG1Field(buf, &cred.A)
	buf = appendG1Field(buf, &cred.B)
	buf = appendG1Field(buf, &cred.C)
	buf = appendG1Field(buf, &cred.D)
	return buf
}

func NewCredentialFromBytes(bz []byte) (*Credential, error) {
	fields, err := splitWireFields(bz, credentialWireFields, "Credential")
	if err != nil {
		return nil, err
	}
	cred := new(Credential)
	var mErr error
	for i, dst := range []*bn254.G1Affine{&cred.A, &cred.B, &cred.C, &cred.D} {
		p, err := crypto.ReadG1(fields[i])
		if err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "field %c", 'A'+i))
			continue
		}
		*dst = p
	}
	if mErr != nil {
		return nil, mErr
	}
	return cred, nil
}

func (sig *Signature) Bytes() []byte {
	var buf []byte
	buf = appendG1Field(buf, &sig.Credential.R)
	buf = appendG1Field(buf, &sig.Credential.S)
	buf = appendG1Field(buf, &sig.Credential.T)
	buf = appendG1Field(buf, &sig.Credential.W)
	buf = appendScalarField(buf, sig.Proof.C.Bytes())
	buf = appendScalarField(buf, sig.Proof.S.Bytes())
	buf = appendScalarField(buf, sig.Proof.N.Bytes())
	if sig.Proof.K != nil {
		buf = appendG1Field(buf, sig.Proof.K)
	}
	return buf
}

func NewSignatureFromBytes(bz []byte) (*Signature, error) {
	fields, err := common.SplitLengthPrefixed(bz)
	if err != nil {
		return nil, errors.Wrap(err, "Signature")
	}
	if len(fields) != signatureWireFields && len(fields) != signatureLinkWireFields {
		return nil, errors.Errorf("Signature wants %d or %d fields, got %d",
			signatureWireFields, signatureLinkWireFields, len(fields))
	}
	sig := new(Signature)
	var mErr error
	points := []*bn254.G1Affine{&sig.Credential.R, &sig.Credential.S, &sig.Credential.T, &sig.Credential.W}
	names := []string{"R", "S", "T", "W"}
	for i, dst := range points {
		p, err := crypto.ReadG1(fields[i])
		if err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "field %s", names[i]))
			continue
		}
		*dst = p
	}
	if el, err := crypto.ReadScalar(fields[4]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field c"))
	} else {
		sig.Proof.C = el
	}
	if el, err := crypto.ReadScalar(fields[5]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field s"))
	} else {
		sig.Proof.S = el
	}
	if el, err := crypto.ReadScalar(fields[6]); err != nil {
		mErr = multierror.Append(mErr, errors.Wrap(err, "field n"))
	} else {
		sig.Proof.N = el
	}
	if len(fields) == signatureLinkWireFields {
		p, err := crypto.ReadG1(fields[7])
		if err != nil {
			mErr = multierror.Append(mErr, errors.Wrap(err, "field K"))
		} else {
			sig.Proof.K = &p
		}
	}
	if mErr != nil {
		return nil, mErr
	}
	return sig, nil
}

func appendG1Field(buf []byte, p *bn254.G1Affine) []byte {
	bz := p.Bytes()
	return common.AppendLengthPrefixed(buf, bz[:])
}

func appendG2Field(buf []byte, p *bn254.G2Affine) []byte {
	bz := p.Bytes()
	return common.AppendLengthPrefixed(buf, bz[:])
}

func appendScalarField(buf []byte, bz [32]byte) []byte {
	return common.AppendLengthPrefixed(buf, bz[:])
}

func splitWireFields(bz []byte, want int, what string) ([][]byte, error) {
	fields, err := common.SplitLengthPrefixed(bz)
	if err != nil {
		return nil, errors.Wrap(err, what)
	}
	if len(fields) != want {
		return nil, errors.Errorf("%s wants %d fields, got %d", what, want, len(fields))
	}
	return fields, nil
}
