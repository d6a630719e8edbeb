package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmon/internal/problemgen"
	"github.com/abhisek/mathmon/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func putSlot(t *testing.T, s *Store, key, data string) {
	t.Helper()
	_, err := s.DB().Exec(`
		INSERT INTO save_slots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)
}

func TestLoadEmptyStore(t *testing.T) {
	s := openTestStore(t)

	p, err := s.ProfileRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p, "no save means nil profile, not an error")
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := progression.NewProfile("Maya", 3, progression.HeroGreen, time.Now().UTC())
	p.XP = 27
	p.Difficulty = 5
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "Maya", loaded.PlayerName)
	assert.Equal(t, 27, loaded.XP)
	assert.Equal(t, 5, loaded.Difficulty)
	assert.Equal(t, 3, loaded.Level)

	want, err := progression.StatsFor(progression.HeroGreen, 3)
	require.NoError(t, err)
	assert.Equal(t, want.Attack, loaded.Attack, "stats are re-derived on load")
}

func TestSaveRejectsInvalidProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.ProfileRepo().Save(ctx, &progression.Profile{})
	require.Error(t, err)
	var invalid *progression.ErrInvalidProfile
	assert.ErrorAs(t, err, &invalid)
}

func TestSaveNormalizesSnapshot(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := progression.NewProfile("Maya", 2, progression.HeroBlue, time.Now().UTC())
	p.XP = 15
	p.Attack = 999 // drifted stat must not be persisted
	p.Damage = 4   // battle-scoped, must not be persisted
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	want, _ := progression.StatsFor(progression.HeroBlue, 2)
	assert.Equal(t, want.Attack, loaded.Attack)
	assert.Equal(t, 0, loaded.Damage)
}

func TestLoadCorruptCanonicalSlotWithoutLegacy(t *testing.T) {
	s := openTestStore(t)
	putSlot(t, s, "profile", `{{{not json`)

	p, err := s.ProfileRepo().Load(context.Background())
	require.NoError(t, err, "parse errors never surface")
	assert.Nil(t, p)
}

func TestLoadMigratesLegacySlots(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	putSlot(t, s, "mathMonstersSave", `{"playerName":"Ben","playerGrade":3,"heroType":"green","xp":5}`)
	putSlot(t, s, "playerState", `{"skillState":{"difficulty":4},"player":{"xp":12}}`)

	p, err := s.ProfileRepo().Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Ben", p.PlayerName)
	assert.Equal(t, 12, p.XP, "max across legacy sources, not sum")
	assert.Equal(t, 4, p.Difficulty)
	assert.Equal(t, progression.HeroGreen, p.HeroType)

	// Migration writes the canonical slot and clears the legacy ones.
	var n int
	require.NoError(t, s.DB().QueryRow(
		`SELECT COUNT(*) FROM save_slots WHERE key != 'profile'`).Scan(&n))
	assert.Equal(t, 0, n, "legacy slots retired after migration")

	again, err := s.ProfileRepo().Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, 12, again.XP)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := progression.NewProfile("Maya", 2, progression.HeroBlue, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Delete(ctx))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBankReplaceLoadCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.BankRepo()
	ctx := context.Background()

	pairs := []problemgen.BankPair{
		{Grade: 2, Difficulty: 1, A: 3, B: 4},
		{Grade: 2, Difficulty: 1, A: 5, B: 6},
		{Grade: 3, Difficulty: 2, A: 11, B: 12},
	}
	require.NoError(t, repo.Replace(ctx, pairs))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	bank, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, bank.Len())

	// Replace swaps the whole bank.
	require.NoError(t, repo.Replace(ctx, pairs[:1]))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-backed DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}
