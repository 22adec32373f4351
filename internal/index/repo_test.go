package index

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dokonepal/doko/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "doko-index-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func entry(id, kind, message string, ts time.Time) models.Activity {
	return models.Activity{ID: id, Kind: kind, Message: message, Timestamp: ts}
}

func TestInsertAndRecent(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		e := entry(fmt.Sprintf("id-%d", i), models.ActivityGroceryAdded,
			fmt.Sprintf("Added new grocery item: Item %d", i), base.Add(time.Duration(i)*time.Minute))
		if err := db.Insert(e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	recent, err := db.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Recent(3) = %d entries", len(recent))
	}
	if recent[0].ID != "id-4" || recent[2].ID != "id-2" {
		t.Errorf("order = %s..%s, want id-4..id-2 (newest first)", recent[0].ID, recent[2].ID)
	}
}

func TestInsert_DuplicateIDIsNoOp(t *testing.T) {
	db := testDB(t)
	ts := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)
	e := entry("dup", models.ActivityLogin, "User demo logged in", ts)

	if err := db.Insert(e); err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(e); err != nil {
		t.Fatalf("replayed insert should not error: %v", err)
	}

	recent, err := db.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Errorf("entries = %d, want 1 after replay", len(recent))
	}
}

func TestSearch_TermAndKind(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)
	seed := []models.Activity{
		entry("1", models.ActivityGroceryAdded, "Added new grocery item: Organic Basmati Rice", base),
		entry("2", models.ActivityGroceryUpdated, "Updated grocery item: Fresh Buffalo Milk", base.Add(time.Minute)),
		entry("3", models.ActivityWireframeCreated, "Created wireframe: E-commerce Mobile App", base.Add(2*time.Minute)),
	}
	for _, e := range seed {
		if err := db.Insert(e); err != nil {
			t.Fatal(err)
		}
	}

	// Case-insensitive substring on message.
	got, err := db.Search("basmati", "", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Search(basmati) = %v", got)
	}

	// Kind filter alone.
	got, err = db.Search("", models.ActivityWireframeCreated, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("Search(kind) = %v", got)
	}

	// Term and kind must both match.
	got, err = db.Search("grocery", models.ActivityGroceryUpdated, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Search(term+kind) = %v", got)
	}
}

func TestSearch_EscapesLikeMetacharacters(t *testing.T) {
	db := testDB(t)
	ts := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)
	if err := db.Insert(entry("1", models.ActivityExport, "Exported 100% of data", ts)); err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(entry("2", models.ActivityExport, "Exported nothing", ts.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}

	got, err := db.Search("100%", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Search(100%%) = %v, want only the literal match", got)
	}
}

func TestCountByKind(t *testing.T) {
	db := testDB(t)
	ts := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)
	kinds := []string{
		models.ActivityGroceryAdded,
		models.ActivityGroceryAdded,
		models.ActivityLogin,
	}
	for i, k := range kinds {
		if err := db.Insert(entry(fmt.Sprintf("id-%d", i), k, "m", ts)); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := db.CountByKind()
	if err != nil {
		t.Fatalf("CountByKind: %v", err)
	}
	if counts[models.ActivityGroceryAdded] != 2 || counts[models.ActivityLogin] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
