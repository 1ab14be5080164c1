package identity

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndLookup(t *testing.T) {
	s := NewSessionStore(time.Hour)

	token := s.Create("alice@hagerstone.com")
	if token == "" {
		t.Fatalf("expected a token")
	}

	email, ok := s.Lookup(token)
	if !ok || email != "alice@hagerstone.com" {
		t.Fatalf("expected alice, got %q ok=%v", email, ok)
	}

	if _, ok := s.Lookup("unknown"); ok {
		t.Fatalf("unknown token must not resolve")
	}
	if _, ok := s.Lookup(""); ok {
		t.Fatalf("empty token must not resolve")
	}
}

func TestSessionStore_Delete(t *testing.T) {
	s := NewSessionStore(time.Hour)

	token := s.Create("alice@hagerstone.com")
	s.Delete(token)

	if _, ok := s.Lookup(token); ok {
		t.Fatalf("deleted token must not resolve")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore(-time.Second) // already expired on creation

	token := s.Create("alice@hagerstone.com")
	if _, ok := s.Lookup(token); ok {
		t.Fatalf("expired session must not resolve")
	}
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	s := NewSessionStore(time.Hour)

	a := s.Create("alice@hagerstone.com")
	b := s.Create("alice@hagerstone.com")
	if a == b {
		t.Fatalf("two sessions must not share a token")
	}
}
