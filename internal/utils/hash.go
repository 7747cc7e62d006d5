// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 digests. A Signer with an empty key is
// disabled: Sign returns "" and Verify accepts everything.
type Signer struct {
	key  []byte
	pool sync.Pool
}

// NewSigner returns a Signer for hashKey. Hash instances are pooled to keep
// allocations off the request path.
func NewSigner(hashKey string) *Signer {
	s := &Signer{key: []byte(hashKey)}
	s.pool.New = func() any {
		return hmac.New(sha256.New, s.key)
	}
	return s
}

// Enabled reports whether a key is configured.
func (s *Signer) Enabled() bool {
	return s != nil && len(s.key) > 0
}

// Hash returns the raw digest of data.
func (s *Signer) Hash(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex digest of data, or "" when the signer is disabled.
func (s *Signer) Sign(data []byte) string {
	if !s.Enabled() {
		return ""
	}
	return hex.EncodeToString(s.Hash(data))
}

// Verify compares signature with the digest of data in constant time.
func (s *Signer) Verify(data []byte, signature string) bool {
	if !s.Enabled() {
		return true
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Hash(data))
}
