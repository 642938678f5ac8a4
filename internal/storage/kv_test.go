package storage_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/plateful-app/plateful-cli/internal/storage"
)

func TestKVRoundTripAndOverwrite(t *testing.T) {
	t.Parallel()

	kv, err := storage.Open(filepath.Join(t.TempDir(), "plateful.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("expected miss for unknown key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(storage.StateKey, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(storage.StateKey, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := kv.Get(storage.StateKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || !bytes.Equal(value, []byte(`{"v":2}`)) {
		t.Fatalf("expected latest blob, got ok=%v value=%s", ok, value)
	}
}

func TestKVSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plateful.db")
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	if err := kv.Set(storage.CredentialsKey, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen kv: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get(storage.CredentialsKey)
	if err != nil || !ok {
		t.Fatalf("expected persisted blob, got ok=%v err=%v", ok, err)
	}
	if string(value) != `[]` {
		t.Fatalf("unexpected blob %q", value)
	}
}
