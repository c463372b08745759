package github

import (
	"encoding/json"
	"fmt"
	"github.com/go-resty/resty/v2"
	domainGithub "github.com/kaiwahq/kaiwactl/domain/external/github"
	"time"
)

const apiBaseURL = "https://api.github.com"

type GitHubClient struct {
	httpClient *resty.Client
	baseURL    string
}

type apiReleaseResponse struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
}

func NewGitHubClient() *GitHubClient {
	client := resty.New()
	client.SetHeader("Accept", "application/vnd.github+json")
	client.SetHeader("User-Agent", "kaiwactl")

	return &GitHubClient{
		httpClient: client,
		baseURL:    apiBaseURL,
	}
}

func (c *GitHubClient) LatestRelease(owner string, repo string) (domainGithub.Release, error) {
	resp, err := c.httpClient.R().
		Get(fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo))

	if err != nil {
		return domainGithub.Release{}, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode() != 200 {
		return domainGithub.Release{}, fmt.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}

	var release apiReleaseResponse
	if err := json.Unmarshal(resp.Body(), &release); err != nil {
		return domainGithub.Release{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// published_at はドラフトリリースではnullになるため、パースできない場合はゼロ値のままにします。
	publishedAt, err := time.Parse(time.RFC3339, release.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	return domainGithub.Release{
		TagName:     release.TagName,
		Name:        release.Name,
		Body:        release.Body,
		HTMLURL:     release.HTMLURL,
		PublishedAt: publishedAt,
	}, nil
}
