// Package webcatalog reads the model catalog from the remote library's web
// pages.
package webcatalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bnema/hoard/internal/boundaries/out"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/backoff"
	"github.com/bnema/hoard/pkg/download"
	"github.com/bnema/hoard/pkg/retry"
)

// ListingPath is the library page listing every model, newest first.
const ListingPath = "/library?sort=newest"

const maxPageSize = 16 << 20

// Ensure Client implements out.CatalogSource.
var _ out.CatalogSource = (*Client)(nil)

// Client scrapes the library listing, detail and tags pages.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter out.RateLimiter
	backoff backoff.Options
	log     *log.Logger
}

// NewClient creates a catalog client for baseURL. Every page request waits
// on limiter, keyed by host.
func NewClient(baseURL string, httpClient *http.Client, limiter out.RateLimiter, opts backoff.Options, logger *log.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid catalog url %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		base:    base,
		http:    httpClient,
		limiter: limiter,
		backoff: opts,
		log:     logger.With("adapter", "webcatalog"),
	}, nil
}

// FetchListing retrieves the listing page and parses its entries.
func (c *Client) FetchListing(ctx context.Context) (*domain.Listing, error) {
	raw, err := c.page(ctx, ListingPath)
	if err != nil {
		return nil, err
	}

	entries, err := ParseListing(raw)
	if err != nil {
		return nil, err
	}
	c.log.Debug("listing parsed", "entries", len(entries))
	return &domain.Listing{Raw: raw, Entries: entries}, nil
}

// FetchDetails retrieves the detail and tags pages of entry.
func (c *Client) FetchDetails(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogRecord, error) {
	if entry.Href == "" {
		return nil, fmt.Errorf("entry %q has no link", entry.Title)
	}

	detail, err := c.page(ctx, entry.Href)
	if err != nil {
		return nil, err
	}
	if entry.Summary, entry.Readme, err = ParseDetail(detail); err != nil {
		return nil, err
	}

	tags, err := c.page(ctx, strings.TrimSuffix(entry.Href, "/")+"/tags")
	if err != nil {
		return nil, err
	}
	variants, err := ParseTags(entry.Title, tags)
	if err != nil {
		return nil, err
	}

	c.log.Debug("entry details fetched", "title", entry.Title, "variants", len(variants))
	return &domain.CatalogRecord{Entry: entry, Variants: variants}, nil
}

// page fetches a page relative to the base URL, retrying transient failures.
func (c *Client) page(ctx context.Context, ref string) (string, error) {
	u, err := c.base.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid page reference %q: %w", ref, err)
	}

	strategy, err := c.backoff.Build()
	if err != nil {
		return "", err
	}
	return retry.DoIf(ctx, strategy, func(ctx context.Context) (string, error) {
		return c.get(ctx, u)
	}, domain.IsRetryable)
}

func (c *Client) get(ctx context.Context, u *url.URL) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	c.log.Debug("fetching page", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetch %s: %w", download.ErrNetwork, u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: fetch %s: %s", download.ErrNetwork, u, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("fetch %s: unexpected status %s", u, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", download.ErrNetwork, u, err)
	}
	if len(body) > maxPageSize {
		return "", fmt.Errorf("fetch %s: response too large (over %d bytes)", u, maxPageSize)
	}
	return string(body), nil
}
