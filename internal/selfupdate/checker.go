// Package selfupdate checks GitHub releases for a newer adaptiq build.
// It only reports availability; installing the release is left to the user's
// package manager.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot check a development build")

const (
	defaultOwner   = "abhisek"
	defaultRepo    = "adaptiq"
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Checker queries the GitHub releases API.
type Checker struct {
	owner   string
	repo    string
	baseURL string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// NewChecker creates a checker with default settings.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:   defaultOwner,
		repo:    defaultRepo,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput holds the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest release and whether it is newer than the
// running build.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the running
// version. Development builds cannot be compared and are rejected up front.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from releases API", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var release releaseResponse
	if err := json.Unmarshal(data, &release); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response missing tag name")
	}

	current := normalizeVersion(input.Version)
	latest := normalizeVersion(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("latest release tag %q is not valid semver", release.TagName)
	}

	return &CheckResult{
		UpdateAvailable: semver.IsValid(current) && semver.Compare(latest, current) > 0,
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// normalizeVersion adds the "v" prefix semver.Compare requires.
func normalizeVersion(v string) string {
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
