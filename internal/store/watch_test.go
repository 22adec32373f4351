package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/models"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_ExternalEditReloads(t *testing.T) {
	dataDir := t.TempDir()
	provider, err := kvstore.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st := New(provider, logger)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int64
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		_ = st.Watch(ctx, dataDir, logger, func() { reloads.Add(1) })
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	// Edit the groceries file behind the store's back.
	edited := []models.Grocery{{
		ID: "external-1", Name: "External Edit", Category: "Dairy",
		Price: 1, Quantity: 1, Unit: "kg", DateAdded: time.Now(),
	}}
	raw, err := json.Marshal(edited)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "groceries.json"), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		items := st.Groceries()
		return len(items) == 1 && items[0].ID == "external-1"
	}, "external edit not picked up by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		return reloads.Load() >= 1
	}, "expected onReload callback")

	cancel()
	select {
	case <-watchDone:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatch_IgnoresNonJSONFiles(t *testing.T) {
	dataDir := t.TempDir()
	provider, err := kvstore.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st := New(provider, logger)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int64
	go func() {
		_ = st.Watch(ctx, dataDir, logger, func() { reloads.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dataDir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(600 * time.Millisecond)
	if reloads.Load() != 0 {
		t.Errorf("reloads = %d, want 0 for a non-JSON file", reloads.Load())
	}
}
