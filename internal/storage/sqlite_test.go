package storage

import (
	"bytes"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	if _, ok, err := s.Load(StateKey); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent without error", ok, err)
	}

	if err := s.Save(StateKey, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(StateKey)
	if err != nil || !ok || !bytes.Equal(got, []byte(`{"a":1}`)) {
		t.Fatalf("Load = %q, %v, %v", got, ok, err)
	}

	if err := s.Save(StateKey, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Load(StateKey)
	if !bytes.Equal(got, []byte(`{"a":2}`)) {
		t.Fatalf("after overwrite = %q", got)
	}

	if err := s.Remove(StateKey); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Load(StateKey); ok {
		t.Fatal("key survived Remove")
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Save(ResultsKey, []byte("kept")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, ok, err := s2.Load(ResultsKey)
	if err != nil || !ok || !bytes.Equal(got, []byte("kept")) {
		t.Fatalf("Load after reopen = %q, %v, %v", got, ok, err)
	}
}
