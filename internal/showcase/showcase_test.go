package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func baseConfig() Config {
	return Config{
		Exclusions:         []string{"test", "demo", "playground"},
		ExcludeArchived:    true,
		RequireDescription: true,
		MinSizeKB:          50,
	}
}

func keeper(name string) Repo {
	return Repo{
		Name:        name,
		Description: "A real project",
		SizeKB:      200,
		UpdatedAt:   now.AddDate(0, -1, 0),
	}
}

func TestIncludeNameExclusionIsCaseInsensitiveSubstring(t *testing.T) {
	cfg := baseConfig()

	excluded := keeper("My-DEMO-App")
	assert.False(t, Include(excluded, cfg, now))

	kept := keeper("cool-app")
	assert.True(t, Include(kept, cfg, now))
}

func TestIncludeForksAlwaysExcluded(t *testing.T) {
	repo := keeper("cool-app")
	repo.Fork = true

	assert.False(t, Include(repo, Config{}, now))
}

func TestIncludeConditionalClauses(t *testing.T) {
	cfg := baseConfig()

	archived := keeper("cool-app")
	archived.Archived = true
	assert.False(t, Include(archived, cfg, now))

	cfg.ExcludeArchived = false
	assert.True(t, Include(archived, cfg, now))

	blank := keeper("cool-app")
	blank.Description = "   "
	assert.False(t, Include(blank, cfg, now))

	tiny := keeper("cool-app")
	tiny.SizeKB = 10
	assert.False(t, Include(tiny, cfg, now))

	cfg.RequireTopics = true
	topicless := keeper("cool-app")
	assert.False(t, Include(topicless, cfg, now))
	topicless.Topics = []string{"go"}
	assert.True(t, Include(topicless, cfg, now))
}

func TestIncludeMaxAgeZeroDisablesCheck(t *testing.T) {
	cfg := baseConfig()

	old := keeper("cool-app")
	old.UpdatedAt = now.AddDate(-3, 0, 0)
	assert.True(t, Include(old, cfg, now))

	cfg.MaxAgeDays = 365
	assert.False(t, Include(old, cfg, now))

	recent := keeper("cool-app")
	assert.True(t, Include(recent, cfg, now))
}

func TestFilterResult(t *testing.T) {
	cfg := baseConfig()
	cfg.MinStars = 2

	repos := []Repo{
		keeper("cool-app-1"),
		keeper("cool-app-2"),
		keeper("cool-app-3"),
		keeper("my-demo"),
	}
	repos[0].Stars = 5
	repos[1].Stars = 3
	repos[2].Stars = 1
	repos[3].Stars = 10

	kept := Filter(repos, cfg, now)

	require.Len(t, kept, 2)
	assert.Equal(t, "cool-app-1", kept[0].Name)
	assert.Equal(t, "cool-app-2", kept[1].Name)
}

func TestFilterIsIdempotent(t *testing.T) {
	cfg := baseConfig()
	repos := []Repo{keeper("cool-app-1"), keeper("my-demo"), keeper("cool-app-2")}

	once := Filter(repos, cfg, now)
	twice := Filter(once, cfg, now)

	assert.Equal(t, once, twice)
}

func TestSortStarsDescendingWithUpdateTiebreak(t *testing.T) {
	older := keeper("older")
	older.Stars = 5
	older.UpdatedAt = now.AddDate(0, -6, 0)

	newer := keeper("newer")
	newer.Stars = 5
	newer.UpdatedAt = now.AddDate(0, -1, 0)

	top := keeper("top")
	top.Stars = 9

	input := []Repo{older, newer, top}
	sorted := Sort(input)

	require.Len(t, sorted, 3)
	assert.Equal(t, "top", sorted[0].Name)
	assert.Equal(t, "newer", sorted[1].Name)
	assert.Equal(t, "older", sorted[2].Name)

	// Input order untouched.
	assert.Equal(t, "older", input[0].Name)
}

func TestComputeStats(t *testing.T) {
	a := keeper("a")
	a.Stars, a.Forks = 10, 2
	b := keeper("b")
	b.Stars, b.Forks = 5, 1

	account := &Account{CreatedAt: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)}
	stats := ComputeStats([]Repo{a, b}, account, now)

	assert.Equal(t, 2, stats.Repos)
	assert.Equal(t, 15, stats.Stars)
	assert.Equal(t, 3, stats.Forks)
	assert.Equal(t, 7, stats.YearsActive)
}

func TestComputeStatsFallsBackWithoutAccount(t *testing.T) {
	stats := ComputeStats(nil, nil, now)

	assert.Equal(t, 0, stats.Repos)
	assert.Equal(t, fallbackYearsActive, stats.YearsActive)

	zero := ComputeStats(nil, &Account{}, now)
	assert.Equal(t, fallbackYearsActive, zero.YearsActive)
}

func TestFallbackStats(t *testing.T) {
	stats := FallbackStats()

	assert.Zero(t, stats.Repos)
	assert.Zero(t, stats.Stars)
	assert.Equal(t, fallbackYearsActive, stats.YearsActive)
}
