// Package testutil provides shared test helpers for setting up data
// directories, providers and databases.
package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/dokonepal/doko/internal/index"
	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/store"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "doko-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestProvider creates a temporary data directory with an FS provider.
func TestProvider(t *testing.T) (string, kvstore.Provider) {
	t.Helper()
	dataDir := t.TempDir()
	provider, err := kvstore.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	return dataDir, provider
}

// TestStore creates a loaded record store over an in-memory provider.
func TestStore(t *testing.T) (*store.Store, *kvstore.Memory) {
	t.Helper()
	mem := kvstore.NewMemory()
	st := store.New(mem, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	return st, mem
}
