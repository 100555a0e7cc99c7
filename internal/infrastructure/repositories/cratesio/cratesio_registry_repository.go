package cratesio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

const (
	registryName = "crates.io"
	maxBodyBytes = 4 << 20
)

// crateResponse is the subset of GET /crates/{name} we need.
type crateResponse struct {
	Crate struct {
		NewestVersion string `json:"newest_version"`
	} `json:"crate"`
}

// CratesIORegistryRepository implements repositories.RegistryRepository
// against the crates.io web API.
type CratesIORegistryRepository struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewCratesIORegistryRepository creates a registry client for baseURL
// (e.g. "https://crates.io/api/v1"). A nil client selects a pooled
// go-cleanhttp client.
func NewCratesIORegistryRepository(
	baseURL, userAgent string,
	client *http.Client,
) *CratesIORegistryRepository {
	if client == nil {
		client = cleanhttp.DefaultPooledClient()
	}
	return &CratesIORegistryRepository{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

var _ repositories.RegistryRepository = (*CratesIORegistryRepository)(nil)

func (r *CratesIORegistryRepository) Name() string { return registryName }

// LatestVersion fetches the newest published version of a crate.
func (r *CratesIORegistryRepository) LatestVersion(
	ctx context.Context,
	name string,
) (entities.SemVer, error) {
	endpoint := r.baseURL + "/crates/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.SemVer{}, fmt.Errorf("%w: %s: failed to create request: %w", entities.ErrRegistry, name, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return entities.SemVer{}, fmt.Errorf("%w: %s: %w", entities.ErrRegistry, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return entities.SemVer{}, fmt.Errorf(
			"%w: %s: unexpected status code: %d", entities.ErrRegistry, name, resp.StatusCode,
		)
	}

	var payload crateResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); decodeErr != nil {
		return entities.SemVer{}, fmt.Errorf("%w: %s: failed to parse response: %w", entities.ErrRegistry, name, decodeErr)
	}
	if payload.Crate.NewestVersion == "" {
		return entities.SemVer{}, fmt.Errorf("%w: %s: response has no newest_version", entities.ErrRegistry, name)
	}

	version, parseErr := entities.ParseSemVer(payload.Crate.NewestVersion)
	if parseErr != nil {
		return entities.SemVer{}, fmt.Errorf("%w: %s: %w", entities.ErrRegistry, name, parseErr)
	}
	return version, nil
}
