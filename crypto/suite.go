// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"hash"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// HashAlg selects the hash used for every transcript and for hashing to the
// curve. A deployment must use the same algorithm everywhere; suites built
// with different algorithms do not interoperate.
type HashAlg int

const (
	SHA256 HashAlg = iota
	SHA3_256
)

// Suite carries the group parameters shared by every protocol operation:
// the fixed generators g1 ∈ G1 and g2 ∈ G2 of the BN254 pairing groups, the
// transcript hash and the entropy source. It replaces any process-global
// initialisation; construct one Suite and pass it by reference.
//
// A Suite is read-only after construction apart from the Set* methods, which
// must not race with protocol operations.
type Suite struct {
	g1      bn254.G1Affine
	g2      bn254.G2Affine
	newHash func() hash.Hash
	rnd     io.Reader
}

// NewSuite returns a Suite over BN254 with SHA-256 transcripts and
// crypto/rand as the entropy source.
func NewSuite() *Suite {
	_, _, g1Aff, g2Aff := bn254.Generators()
	return &Suite{
		g1:      g1Aff,
		g2:      g2Aff,
		newHash: sha256.New,
		rnd:     rand.Reader,
	}
}

// G1 returns the fixed generator of G1.
func (s *Suite) G1() bn254.G1Affine {
	return s.g1
}

// G2 returns the fixed generator of G2.
func (s *Suite) G2() bn254.G2Affine {
	return s.g2
}

func (s *Suite) Rand() io.Reader {
	return s.rnd
}

// SetRand replaces the entropy source. Callers providing a shared reader are
// responsible for making it safe for concurrent use.
func (s *Suite) SetRand(rnd io.Reader) {
	if rnd == nil {
		panic(errors.New("SetRand received a nil reader"))
	}
	s.rnd = rnd
}

func (s *Suite) SetHash(alg HashAlg) error {
	switch alg {
	case SHA256:
		s.newHash = sha256.New
	case SHA3_256:
		s.newHash = sha3.New256
	default:
		return errors.Errorf("unknown hash algorithm %d", alg)
	}
	return nil
}

// NewHash returns a fresh instance of the suite hash.
func (s *Suite) NewHash() hash.Hash {
	return s.newHash()
}
