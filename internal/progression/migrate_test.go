package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrateNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestMigrateEmptyInputReturnsDefaults(t *testing.T) {
	for _, blobs := range [][][]byte{
		nil,
		{},
		{[]byte(`{{{not json`)},
		{[]byte(`[]`)},
		{[]byte(`"just a string"`)},
		{[]byte(`{}`)},
	} {
		p := Migrate(blobs, migrateNow)
		require.NotNil(t, p)
		assert.Equal(t, DefaultPlayerName, p.PlayerName)
		assert.Equal(t, 2, p.PlayerGrade)
		assert.Equal(t, 1, p.Difficulty)
		assert.Equal(t, 0, p.XP)
		assert.Equal(t, HeroBlue, p.HeroType)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, migrateNow, p.CreatedAt)
		assert.NoError(t, p.Validate())
	}
}

func TestMigrateTakesMaxXPNotSum(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"progress":{"experience":{"points":5}}}`),
		[]byte(`{"player":{"xp":12}}`),
	}
	p := Migrate(blobs, migrateNow)
	assert.Equal(t, 12, p.XP, "cumulative counts must not be summed")
	assert.Equal(t, 2, p.Level)
}

func TestMigrateFlatLegacyProfile(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"playerName":"Ben","playerGrade":3,"heroType":"green","xp":23,"difficulty":4,"attack":999}`),
	}
	p := Migrate(blobs, migrateNow)

	assert.Equal(t, "Ben", p.PlayerName)
	assert.Equal(t, 3, p.PlayerGrade)
	assert.Equal(t, HeroGreen, p.HeroType)
	assert.Equal(t, 23, p.XP)
	assert.Equal(t, 4, p.Difficulty)
	assert.Equal(t, 3, p.Level)

	// Stale derived stats never survive migration.
	want, err := StatsFor(HeroGreen, 3)
	require.NoError(t, err)
	assert.Equal(t, want.Attack, p.Attack)
	assert.Equal(t, want.HeroName, p.HeroName)
	assert.Equal(t, 0, p.Damage)
}

func TestMigrateSkillStatePlayerShape(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"skillState":{"difficulty":6,"streak":2},"player":{"xp":31,"name":"Ada","grade":3,"creatureId":"green"}}`),
	}
	p := Migrate(blobs, migrateNow)

	assert.Equal(t, "Ada", p.PlayerName)
	assert.Equal(t, 3, p.PlayerGrade)
	assert.Equal(t, 6, p.Difficulty)
	assert.Equal(t, 31, p.XP)
	assert.Equal(t, HeroGreen, p.HeroType)
}

func TestMigrateFirstPresentWinsAcrossSources(t *testing.T) {
	// Grade appears in both blobs; the higher-priority path (playerGrade)
	// wins over the nested legacy path regardless of blob order.
	blobs := [][]byte{
		[]byte(`{"progress":{"experience":{"grade":3,"points":2}}}`),
		[]byte(`{"playerGrade":2,"xp":1}`),
	}
	p := Migrate(blobs, migrateNow)
	assert.Equal(t, 2, p.PlayerGrade)
	assert.Equal(t, 2, p.XP)
}

func TestMigratePrefersCanonicalBlob(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"player":{"xp":99}}`),
		[]byte(`{"schemaVersion":3,"playerName":"Ben","playerGrade":2,"heroType":"blue","xp":14,"difficulty":2,"createdAt":"2025-01-02T00:00:00Z"}`),
	}
	p := Migrate(blobs, migrateNow)

	assert.Equal(t, 14, p.XP, "canonical blob wins outright, even over a larger legacy xp")
	assert.Equal(t, "Ben", p.PlayerName)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 2025, p.CreatedAt.Year(), "canonical createdAt is preserved")
}

func TestMigrateIgnoresBrokenCanonicalBlob(t *testing.T) {
	// Canonical version marker but structurally invalid: fall back to the
	// legacy merge instead of failing.
	blobs := [][]byte{
		[]byte(`{"schemaVersion":3,"playerName":"","xp":50}`),
		[]byte(`{"xp":7,"name":"Ada"}`),
	}
	p := Migrate(blobs, migrateNow)

	assert.Equal(t, "Ada", p.PlayerName)
	assert.Equal(t, 50, p.XP, "xp from the broken blob still feeds the max scan")
}

func TestMigrateClampsGarbageValues(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"playerGrade":11,"difficulty":-3,"xp":-20,"heroType":"dragon","playerName":""}`),
	}
	p := Migrate(blobs, migrateNow)

	assert.Equal(t, 3, p.PlayerGrade)
	assert.Equal(t, 1, p.Difficulty)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, HeroBlue, p.HeroType, "unknown hero falls back rather than propagating")
	assert.Equal(t, DefaultPlayerName, p.PlayerName)
}

func TestMigrateIgnoresNonNumericXP(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"xp":"lots","player":{"xp":4}}`),
	}
	p := Migrate(blobs, migrateNow)
	assert.Equal(t, 4, p.XP)
}

func TestMigrateIsPure(t *testing.T) {
	blobs := [][]byte{
		[]byte(`{"xp":8,"playerGrade":3,"heroType":"green"}`),
	}
	a := Migrate(blobs, migrateNow)
	b := Migrate(blobs, migrateNow)
	assert.Equal(t, a, b)
}
