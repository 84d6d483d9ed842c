package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

const (
	defaultOwner = "Adarsh-oo7"
	defaultRepo  = "pscprep"
)

// Checker talks to GitHub releases for version checks and updates.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
}

// NewChecker creates a Checker against the project's GitHub releases.
func NewChecker() *Checker {
	return &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      "https://api.github.com",
		downloadBaseURL: "https://github.com",
		client:          &http.Client{Timeout: 30 * time.Second},
	}
}

// CheckResult describes the outcome of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check compares the running version against the latest release tag.
func (c *Checker) Check(ctx context.Context, current string) (*CheckResult, error) {
	if current == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d querying latest release", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := release.TagName
	result := &CheckResult{
		CurrentVersion: current,
		LatestVersion:  latest,
	}
	result.UpdateAvailable = semver.Compare(canonical(latest), canonical(current)) > 0
	return result, nil
}

// canonical normalizes a tag for semver comparison.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
