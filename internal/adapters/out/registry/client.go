// Package registry implements the client side of the remote model registry API.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/opencontainers/go-digest"

	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/download"
)

// manifestAccept lists the manifest media types the client understands.
var manifestAccept = strings.Join([]string{
	"application/vnd.docker.distribution.manifest.v2+json",
	"application/vnd.oci.image.manifest.v1+json",
}, ", ")

// maxManifestSize bounds manifest responses.
const maxManifestSize = 4 << 20

// Client fetches manifests and builds blob URLs.
type Client struct {
	base      *url.URL
	namespace string
	http      *http.Client
	log       *log.Logger
}

// NewClient creates a registry client for baseURL.
func NewClient(baseURL, namespace string, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid registry url %q", baseURL)
	}
	if namespace == "" {
		namespace = "library"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		base:      base,
		namespace: namespace,
		http:      httpClient,
		log:       logger.With("adapter", "registry"),
	}, nil
}

// ManifestURL returns the URL of a variant's manifest.
func (c *Client) ManifestURL(ref domain.Reference) string {
	return c.base.JoinPath("v2", c.namespace, ref.Name, "manifests", ref.Tag).String()
}

// BlobURL returns the URL of a blob. The digest's ':' is replaced by '-'.
func (c *Client) BlobURL(ref domain.Reference, d digest.Digest) string {
	return c.base.JoinPath("v2", c.namespace, ref.Name, "blobs", strings.Replace(d.String(), ":", "-", 1)).String()
}

// FetchManifest retrieves and validates the manifest of ref. Transport
// failures and 5xx/429 answers wrap download.ErrNetwork.
func (c *Client) FetchManifest(ctx context.Context, ref domain.Reference) (*domain.Manifest, error) {
	u := c.ManifestURL(ref)
	c.log.Debug("fetching manifest", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}
	req.Header.Set("Accept", manifestAccept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch manifest %s: %w", download.ErrNetwork, ref, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, ref)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: fetch manifest %s: %s", download.ErrNetwork, ref, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetch manifest %s: unexpected status %s", ref, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest %s: %w", download.ErrNetwork, ref, err)
	}
	if len(body) > maxManifestSize {
		return nil, fmt.Errorf("%w: %s: response too large (over %d bytes)", domain.ErrInvalidManifest, ref, maxManifestSize)
	}

	var m domain.Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrInvalidManifest, ref, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	c.log.Debug("manifest fetched", "ref", ref.String(), "layers", len(m.Layers))
	return &m, nil
}
