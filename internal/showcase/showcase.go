// Package showcase curates raw GitHub repository metadata into the display
// set and summary counters for the public showcase section. Everything here
// is pure: same input, same output, no state.
package showcase

import (
	"sort"
	"strings"
	"time"
)

type Repo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	UpdatedAt   time.Time `json:"updated_at"`
	Topics      []string  `json:"topics"`
	SizeKB      int       `json:"size_kb"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
}

type Account struct {
	CreatedAt time.Time `json:"created_at"`
}

type Config struct {
	Exclusions         []string
	ExcludeArchived    bool
	RequireDescription bool
	RequireTopics      bool
	MinSizeKB          int
	MinStars           int
	// MaxAgeDays bounds the time since the last update; 0 disables the check.
	MaxAgeDays int
}

type Stats struct {
	Repos       int `json:"repos"`
	Stars       int `json:"stars"`
	Forks       int `json:"forks"`
	YearsActive int `json:"years_active"`
}

// fallbackYearsActive is used when the account lookup fails.
const fallbackYearsActive = 2

// Filter returns the repos that pass every clause of the curation predicate.
func Filter(repos []Repo, cfg Config, now time.Time) []Repo {
	var kept []Repo
	for _, repo := range repos {
		if Include(repo, cfg, now) {
			kept = append(kept, repo)
		}
	}
	return kept
}

// Include evaluates the full predicate for a single repo.
func Include(repo Repo, cfg Config, now time.Time) bool {
	name := strings.ToLower(repo.Name)
	for _, excluded := range cfg.Exclusions {
		if strings.Contains(name, strings.ToLower(excluded)) {
			return false
		}
	}

	if repo.Fork {
		return false
	}

	if cfg.ExcludeArchived && repo.Archived {
		return false
	}

	if cfg.RequireDescription && strings.TrimSpace(repo.Description) == "" {
		return false
	}

	if cfg.RequireTopics && len(repo.Topics) == 0 {
		return false
	}

	if repo.SizeKB < cfg.MinSizeKB {
		return false
	}

	if repo.Stars < cfg.MinStars {
		return false
	}

	if cfg.MaxAgeDays > 0 {
		cutoff := now.AddDate(0, 0, -cfg.MaxAgeDays)
		if repo.UpdatedAt.Before(cutoff) {
			return false
		}
	}

	return true
}

// Sort orders by stars descending, ties broken by most recent update.
// The input slice is not modified.
func Sort(repos []Repo) []Repo {
	sorted := make([]Repo, len(repos))
	copy(sorted, repos)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Stars != sorted[j].Stars {
			return sorted[i].Stars > sorted[j].Stars
		}
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	return sorted
}

// ComputeStats aggregates the curated set. A nil account means the lookup
// failed; years active falls back to a fixed floor rather than erroring.
func ComputeStats(repos []Repo, account *Account, now time.Time) Stats {
	stats := Stats{
		Repos:       len(repos),
		YearsActive: fallbackYearsActive,
	}

	for _, repo := range repos {
		stats.Stars += repo.Stars
		stats.Forks += repo.Forks
	}

	if account != nil && !account.CreatedAt.IsZero() {
		stats.YearsActive = now.Year() - account.CreatedAt.Year() + 1
	}

	return stats
}

// FallbackStats is the fixed degraded result when the repo fetch fails.
func FallbackStats() Stats {
	return Stats{YearsActive: fallbackYearsActive}
}
