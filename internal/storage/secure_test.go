package storage

import (
	"bytes"
	"testing"
)

func TestSecureStoreRoundTrip(t *testing.T) {
	inner := NewMemoryStore()
	s, err := NewSecureStore(inner, "correct horse")
	if err != nil {
		t.Fatalf("NewSecureStore: %v", err)
	}

	plain := []byte(`{"answers":{"user-name":"Priya"}}`)
	if err := s.Save(StateKey, plain); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The inner store must only ever see ciphertext.
	raw, ok, _ := inner.Load(StateKey)
	if !ok {
		t.Fatal("nothing reached the inner store")
	}
	if bytes.Contains(raw, []byte("Priya")) {
		t.Fatal("plaintext leaked into the inner store")
	}

	got, ok, err := s.Load(StateKey)
	if err != nil || !ok || !bytes.Equal(got, plain) {
		t.Fatalf("Load = %q, %v, %v", got, ok, err)
	}
}

func TestSecureStoreWrongPassphrase(t *testing.T) {
	inner := NewMemoryStore()
	s, err := NewSecureStore(inner, "right")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(StateKey, []byte("secret")); err != nil {
		t.Fatal(err)
	}

	other, err := NewSecureStore(inner, "wrong")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := other.Load(StateKey); err == nil {
		t.Fatal("wrong passphrase decrypted the snapshot")
	}
}

func TestSecureStoreRejectsBadConfig(t *testing.T) {
	if _, err := NewSecureStore(nil, "pass"); err == nil {
		t.Fatal("accepted a nil inner store")
	}
	if _, err := NewSecureStore(NewMemoryStore(), ""); err == nil {
		t.Fatal("accepted an empty passphrase")
	}
}

func TestSecureStoreCorruptCiphertext(t *testing.T) {
	inner := NewMemoryStore()
	s, err := NewSecureStore(inner, "pass")
	if err != nil {
		t.Fatal(err)
	}
	if err := inner.Save(StateKey, []byte("too short")); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Load(StateKey); err == nil {
		t.Fatal("corrupt ciphertext loaded without error")
	}
}
