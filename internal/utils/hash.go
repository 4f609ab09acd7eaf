package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes and checks the HashSHA256 signature that accompanies every
// sync envelope. Hashers are pooled per key since ingest signs whole
// transmissions on every request.
type Signer struct {
	pool sync.Pool
}

func NewSigner(key string) *Signer {
	s := &Signer{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return s
}

// Sign returns the hex encoded HMAC-SHA256 of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.sum(data))
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// runs in constant time.
func (s *Signer) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.sum(data), expected)
}

func (s *Signer) sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	defer s.pool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// HashString signs data with key without going through a pool. The adapter
// uses it once per outgoing envelope.
func HashString(data string, key string) string {
	hasher := hmac.New(sha256.New, []byte(key))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
