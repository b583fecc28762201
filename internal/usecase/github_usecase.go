package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolia/internal/infrastructure/github"
	"portfolia/internal/showcase"
	"portfolia/pkg/logger"
)

// cacheTTL bounds how often the third-party API is hit; showcase content
// changes slowly and the unauthenticated rate limit is tight.
const cacheTTL = 10 * time.Minute

type GithubUseCase struct {
	client *github.Client
	cfg    showcase.Config

	mu      sync.Mutex
	cached  *ShowcaseView
	fetched time.Time
}

func NewGithubUseCase(client *github.Client, cfg showcase.Config) *GithubUseCase {
	return &GithubUseCase{
		client: client,
		cfg:    cfg,
	}
}

type ShowcaseView struct {
	Repos    []showcase.Repo `json:"repos"`
	Stats    showcase.Stats  `json:"stats"`
	Degraded bool            `json:"degraded"`
}

// GetShowcase always returns a renderable view. Any fetch failure degrades
// to an empty repo list with fallback stats; the surface never sees an
// error for this enrichment content.
func (uc *GithubUseCase) GetShowcase(ctx context.Context) *ShowcaseView {
	uc.mu.Lock()
	if uc.cached != nil && time.Since(uc.fetched) < cacheTTL {
		view := uc.cached
		uc.mu.Unlock()
		return view
	}
	uc.mu.Unlock()

	view := uc.fetch(ctx)

	if !view.Degraded {
		uc.mu.Lock()
		uc.cached = view
		uc.fetched = time.Now()
		uc.mu.Unlock()
	}

	return view
}

func (uc *GithubUseCase) fetch(ctx context.Context) *ShowcaseView {
	var (
		repos   []showcase.Repo
		account *showcase.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := uc.client.FetchRepos(gctx)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := uc.client.FetchAccount(gctx)
		if err != nil {
			// Account failure alone only costs the years-active counter.
			logger.Warn("Account lookup failed: %v", err)
			return nil
		}
		account = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Warn("Repository fetch failed, serving fallback showcase: %v", err)
		return &ShowcaseView{
			Repos:    []showcase.Repo{},
			Stats:    showcase.FallbackStats(),
			Degraded: true,
		}
	}

	now := time.Now()
	curated := showcase.Sort(showcase.Filter(repos, uc.cfg, now))
	if curated == nil {
		curated = []showcase.Repo{}
	}

	return &ShowcaseView{
		Repos: curated,
		Stats: showcase.ComputeStats(curated, account, now),
	}
}
