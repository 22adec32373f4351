package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func newTestFS(t *testing.T) *FS {
	t.Helper()
	f, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return f
}

func TestFS_SetGetRoundTrip(t *testing.T) {
	f := newTestFS(t)

	want := []byte(`{"hello":"world"}`)
	if err := f.Set("groceries", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := f.Get("groceries")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %s, want %s", got, want)
	}
}

func TestFS_GetMissingKey(t *testing.T) {
	f := newTestFS(t)
	if _, err := f.Get("absent"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(absent) = %v, want ErrKeyNotFound", err)
	}
}

func TestFS_SetOverwrites(t *testing.T) {
	f := newTestFS(t)
	if err := f.Set("k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, err := f.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v2" {
		t.Errorf("Get = %s, want v2", got)
	}
}

func TestFS_RejectsUnsafeKeys(t *testing.T) {
	f := newTestFS(t)
	for _, key := range []string{"", "../escape", "/abs", "a/b"} {
		if err := f.Set(key, []byte("x")); err == nil {
			t.Errorf("Set(%q) should fail", key)
		}
		if _, err := f.Get(key); err == nil || errors.Is(err, ErrKeyNotFound) {
			t.Errorf("Get(%q) should fail with a key error", key)
		}
	}
}

func TestFS_RemoveIsIdempotent(t *testing.T) {
	f := newTestFS(t)
	if err := f.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := f.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := f.Remove("k"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if _, err := f.Get("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after remove = %v, want ErrKeyNotFound", err)
	}
}

func TestFS_Keys(t *testing.T) {
	f := newTestFS(t)
	for _, k := range []string{"groceries", "wireframes", "activity"} {
		if err := f.Set(k, []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := f.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	sort.Strings(keys)
	want := []string{"activity", "groceries", "wireframes"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestFS_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestNewFS_MissingDir(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("NewFS on a missing directory should fail")
	}
}

func TestMemory_FailSets(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	m.FailSets = errors.New("disk full")
	if err := m.Set("k", []byte("v2")); err == nil {
		t.Fatal("Set should fail when FailSets is set")
	}
	got, err := m.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v" {
		t.Errorf("failed Set must not change stored value, got %s", got)
	}
}
