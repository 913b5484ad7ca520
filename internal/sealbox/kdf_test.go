package sealbox

import (
	"bytes"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	first, err := DeriveKey("correct horse battery staple")
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	second, err := DeriveKey("correct horse battery staple")
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same passphrase derived different keys")
	}
	if len(first) != KeySize {
		t.Errorf("key is %d bytes, want %d", len(first), KeySize)
	}
}

func TestDeriveKey_DistinctPassphrases(t *testing.T) {
	a, err := DeriveKey("passphrase-a")
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	b, err := DeriveKey("passphrase-b")
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if bytes.Equal(a, b) {
		t.Error("different passphrases derived the same key")
	}
}

func TestDeriveKey_EmptyPassphrase(t *testing.T) {
	// The codec does not enforce a non-empty passphrase; derivation must
	// still succeed so the policy decision stays with the caller.
	key, err := DeriveKey("")
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if len(key) != KeySize {
		t.Errorf("key is %d bytes, want %d", len(key), KeySize)
	}
}
