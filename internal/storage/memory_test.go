package storage

import (
	"bytes"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Load("missing"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent without error", ok, err)
	}

	if err := s.Save(StateKey, []byte("v1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(StateKey)
	if err != nil || !ok || !bytes.Equal(got, []byte("v1")) {
		t.Fatalf("Load = %q, %v, %v", got, ok, err)
	}

	// Overwrite.
	if err := s.Save(StateKey, []byte("v2")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _, _ = s.Load(StateKey)
	if !bytes.Equal(got, []byte("v2")) {
		t.Fatalf("after overwrite = %q, want v2", got)
	}

	if err := s.Remove(StateKey); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Load(StateKey); ok {
		t.Fatal("key survived Remove")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	in := []byte("original")
	if err := s.Save("k", in); err != nil {
		t.Fatal(err)
	}
	in[0] = 'X'

	out, _, _ := s.Load("k")
	if !bytes.Equal(out, []byte("original")) {
		t.Fatalf("stored value aliased caller's slice: %q", out)
	}
	out[0] = 'Y'
	again, _, _ := s.Load("k")
	if !bytes.Equal(again, []byte("original")) {
		t.Fatalf("loaded value aliased store's slice: %q", again)
	}
}
