package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mathmon/internal/progression"
)

// profileSlotKey is the canonical save slot.
const profileSlotKey = "profile"

// legacySlotKeys are the storage keys earlier builds wrote their saves
// under, newest first. They feed progression.Migrate when no valid canonical
// slot exists and are cleared once the migrated profile has been written.
var legacySlotKeys = []string{"mathMonstersSave", "mmProgress", "playerState"}

// ProfileRepo manages the durable player profile.
type ProfileRepo interface {
	// Load returns the saved profile, migrating legacy slots if needed.
	// Returns (nil, nil) when no usable save exists. Read failures are
	// fail-soft: they are treated as an absent save, never surfaced.
	Load(ctx context.Context) (*progression.Profile, error)

	// Save validates the profile and writes a normalized snapshot.
	Save(ctx context.Context, p *progression.Profile) error

	// Delete removes the canonical and legacy save slots.
	Delete(ctx context.Context) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context) (*progression.Profile, error) {
	// Canonical slot first.
	if raw, ok := r.readSlot(ctx, profileSlotKey); ok {
		var p progression.Profile
		if err := json.Unmarshal(raw, &p); err == nil && p.Validate() == nil {
			if err := progression.ApplyLevelDerivedStats(&p); err == nil {
				return &p, nil
			}
		}
		// Structurally invalid canonical data falls through to the
		// migration path, where it still contributes to the field scan.
	}

	blobs := make([][]byte, 0, len(legacySlotKeys)+1)
	if raw, ok := r.readSlot(ctx, profileSlotKey); ok {
		blobs = append(blobs, raw)
	}
	legacyFound := false
	for _, key := range legacySlotKeys {
		if raw, ok := r.readSlot(ctx, key); ok {
			blobs = append(blobs, raw)
			legacyFound = true
		}
	}
	if !legacyFound {
		return nil, nil
	}

	p := progression.Migrate(blobs, time.Now())

	// Write the migrated snapshot back and retire the legacy slots. Both
	// are best-effort: the migrated profile is usable either way.
	if err := r.Save(ctx, p); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write migrated profile: %v\n", err)
		return p, nil
	}
	for _, key := range legacySlotKeys {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM save_slots WHERE key = ?`, key); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to clear legacy slot %q: %v\n", key, err)
		}
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p *progression.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	// Normalize before writing so the snapshot never carries drifted
	// derived stats or battle-scoped damage.
	if err := progression.ApplyLevelDerivedStats(p); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO save_slots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		profileSlotKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context) error {
	keys := append([]string{profileSlotKey}, legacySlotKeys...)
	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM save_slots WHERE key = ?`, key); err != nil {
			return fmt.Errorf("delete slot %q: %w", key, err)
		}
	}
	return nil
}

// readSlot fetches a raw slot value. All failures read as absent.
func (r *profileRepo) readSlot(ctx context.Context, key string) ([]byte, bool) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM save_slots WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			fmt.Fprintf(os.Stderr, "warning: failed to read save slot %q: %v\n", key, err)
		}
		return nil, false
	}
	return []byte(data), true
}
