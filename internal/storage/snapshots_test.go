package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/twistyworks/twisty"
	"github.com/twistyworks/twisty/internal/scheme"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "twisty.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	c := twisty.New()
	scheme.Apply(c, scheme.Classic())
	// One off-scheme sticker so the round trip proves per-sticker
	// fidelity, not just per-face painting.
	c.SetSticker(0, 0, twisty.StickerOf(twisty.Green))

	id, err := repo.Save(c, "classic with one green sticker")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for slot := 0; slot < 26; slot++ {
		want := c.Cubie(slot).Faces()
		got := loaded.Cubie(slot).Faces()
		if len(got) != len(want) {
			t.Fatalf("slot %d: loaded %d stickers, want %d", slot, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("slot %d sticker %d = %v, want %v", slot, i, got[i], want[i])
			}
		}
	}
}

func TestSnapshotPreservesUninit(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	id, err := repo.Save(twisty.New(), "blank")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for slot := 0; slot < 26; slot++ {
		for i, f := range loaded.Cubie(slot).Faces() {
			if f.Color != twisty.Uninit {
				t.Errorf("slot %d sticker %d = %v, want Uninit", slot, i, f.Color)
			}
		}
	}
}

func TestGetAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	id1, err := repo.Save(twisty.New(), "first")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(twisty.New(), "second"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err := repo.Get(id1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.Name != "first" {
		t.Errorf("Get(%s).Name = %q, want %q", id1, snap.Name, "first")
	}
	if snap.CreatedAt.IsZero() {
		t.Error("Get should return a parsed creation time")
	}

	snapshots, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snapshots) != 2 {
		t.Errorf("List returned %d snapshots, want 2", len(snapshots))
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	if _, err := repo.Load("no-such-id"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("Load of missing id = %v, want ErrSnapshotNotFound", err)
	}
	if _, err := repo.Get("no-such-id"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("Get of missing id = %v, want ErrSnapshotNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewSnapshotRepository(db)

	id, err := repo.Save(twisty.New(), "doomed")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(id); !errors.Is(err, ErrSnapshotNotFound) {
		t.Error("snapshot should be gone after Delete")
	}
	if err := repo.Delete(id); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("second Delete = %v, want ErrSnapshotNotFound", err)
	}
}
