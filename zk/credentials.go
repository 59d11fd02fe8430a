// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"math/rand/v2"
	"sync"

	"github.com/raulk/clock"

	"github.com/danielhkuo/zkvote/auth"
)

// CredentialStore holds every issued credential. The nullifier index is
// filled at issuance so FindByNullifier does not scan.
type CredentialStore struct {
	mu          sync.RWMutex
	clock       clock.Clock
	byToken     map[string]Credential
	byNullifier map[string]string // nullifier -> token
}

func NewCredentialStore(clk clock.Clock) *CredentialStore {
	if clk == nil {
		clk = clock.New()
	}
	return &CredentialStore{
		clock:       clk,
		byToken:     make(map[string]Credential),
		byNullifier: make(map[string]string),
	}
}

// Issue creates a credential with a fresh 256-bit token. An empty or
// unknown region is replaced by one picked uniformly at random.
func (s *CredentialStore) Issue(region Region) Credential {
	if !region.Valid() {
		region = Regions[rand.IntN(len(Regions))]
	}
	cred := Credential{
		Token:    auth.GenerateCredentialToken(),
		Region:   region,
		IssuedAt: s.clock.Now(),
	}
	s.put(cred)
	return cred
}

func (s *CredentialStore) Lookup(token string) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.byToken[token]
	return cred, ok
}

// FindByNullifier returns the credential whose token hashes to nullifier.
func (s *CredentialStore) FindByNullifier(nullifier string) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.byNullifier[nullifier]
	if !ok {
		return Credential{}, false
	}
	return s.byToken[token], true
}

func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}

func (s *CredentialStore) put(cred Credential) {
	n := NullifierOf(cred.Token)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken[cred.Token] = cred
	s.byNullifier[n] = cred.Token
}

func (s *CredentialStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken = make(map[string]Credential)
	s.byNullifier = make(map[string]string)
}
