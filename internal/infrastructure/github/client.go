package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolia/internal/showcase"
)

const defaultBaseURL = "https://api.github.com"

// Client is a read-only client for the repository-metadata API. Every fetch
// is bounded by the http.Client timeout; a timeout is just another fetch
// failure for callers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	token      string
}

func NewClient(username, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		username:   username,
		token:      token,
	}
}

type repoPayload struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	Topics          []string  `json:"topics"`
	Size            int       `json:"size"`
	Fork            bool      `json:"fork"`
	Archived        bool      `json:"archived"`
}

type accountPayload struct {
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) FetchRepos(ctx context.Context) ([]showcase.Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.baseURL, c.username)

	var payload []repoPayload
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	repos := make([]showcase.Repo, 0, len(payload))
	for _, p := range payload {
		repos = append(repos, showcase.Repo{
			Name:        p.Name,
			Description: p.Description,
			URL:         p.HTMLURL,
			Language:    p.Language,
			Stars:       p.StargazersCount,
			Forks:       p.ForksCount,
			UpdatedAt:   p.UpdatedAt,
			Topics:      p.Topics,
			SizeKB:      p.Size,
			Fork:        p.Fork,
			Archived:    p.Archived,
		})
	}

	return repos, nil
}

func (c *Client) FetchAccount(ctx context.Context) (*showcase.Account, error) {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, c.username)

	var payload accountPayload
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	return &showcase.Account{CreatedAt: payload.CreatedAt}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned status %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
