package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twistyworks/twisty"
)

// ErrSnapshotNotFound is returned when a snapshot ID does not exist.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Snapshot describes a stored cube state.
type Snapshot struct {
	SnapshotID string
	Name       string
	CreatedAt  time.Time
}

// SnapshotRepository provides CRUD operations for cube snapshots.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores the cube's sticker colors under a new snapshot and
// returns its ID.
func (r *SnapshotRepository) Save(c *twisty.Cube, name string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO snapshots (snapshot_id, name, created_at)
			VALUES (?, ?, ?)
		`, id, name, createdAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO stickers (snapshot_id, slot, face_idx, color)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare sticker insert: %w", err)
		}
		defer stmt.Close()

		for slot := 0; slot < 26; slot++ {
			for idx, f := range c.Cubie(slot).Faces() {
				if _, err := stmt.Exec(id, slot, idx, int(f.Color)); err != nil {
					return fmt.Errorf("failed to store sticker %d of slot %d: %w", idx, slot, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves snapshot metadata by ID.
func (r *SnapshotRepository) Get(snapshotID string) (*Snapshot, error) {
	var s Snapshot
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT snapshot_id, name, created_at
		FROM snapshots
		WHERE snapshot_id = ?
	`, snapshotID).Scan(&s.SnapshotID, &s.Name, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// Load rebuilds a cube from a stored snapshot. Stored sticker
// sequences are rehydrated through the model's flexible constructors,
// so they obey the same reconciliation policy as any other caller.
func (r *SnapshotRepository) Load(snapshotID string) (*twisty.Cube, error) {
	if _, err := r.Get(snapshotID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT slot, face_idx, color
		FROM stickers
		WHERE snapshot_id = ?
		ORDER BY slot, face_idx
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stickers: %w", err)
	}
	defer rows.Close()

	perSlot := make([][]twisty.Sticker, 26)
	for rows.Next() {
		var slot, faceIdx, color int
		if err := rows.Scan(&slot, &faceIdx, &color); err != nil {
			return nil, fmt.Errorf("failed to scan sticker: %w", err)
		}
		if slot < 0 || slot > 25 {
			return nil, fmt.Errorf("storage: snapshot %s has sticker for invalid slot %d", snapshotID, slot)
		}
		if color < 0 || color > int(twisty.Yellow) {
			return nil, fmt.Errorf("storage: snapshot %s has invalid color %d at slot %d", snapshotID, color, slot)
		}
		if faceIdx != len(perSlot[slot]) {
			return nil, fmt.Errorf("storage: snapshot %s has non-contiguous sticker indices at slot %d", snapshotID, slot)
		}
		perSlot[slot] = append(perSlot[slot], twisty.StickerOf(twisty.Color(color)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stickers: %w", err)
	}

	c := twisty.New()
	for slot, stickers := range perSlot {
		var cb twisty.Cubie
		switch c.Cubie(slot).Kind() {
		case twisty.KindCenter:
			cb = twisty.CenterFromStickers(stickers)
		case twisty.KindEdge:
			cb = twisty.EdgeFromStickers(stickers)
		case twisty.KindCorner:
			cb = twisty.CornerFromStickers(stickers)
		}
		for i, f := range cb.Faces() {
			c.SetSticker(slot, i, f)
		}
	}

	return c, nil
}

// List retrieves recent snapshots, newest first.
func (r *SnapshotRepository) List(limit int) ([]Snapshot, error) {
	rows, err := r.db.Query(`
		SELECT snapshot_id, name, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var createdAtStr string
		if err := rows.Scan(&s.SnapshotID, &s.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	return snapshots, nil
}

// Delete deletes a snapshot and its stickers (cascading).
func (r *SnapshotRepository) Delete(snapshotID string) error {
	res, err := r.db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", snapshotID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
