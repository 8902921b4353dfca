package discdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Version is the client library version sent in the User-Agent header.
const Version = "0.1.0"

// DefaultOrigin is the production catalog service.
const DefaultOrigin = "https://thediscdb.com"

var userAgent = "discdbapi/" + Version

// Client is a TheDiscDB API client. It holds no per-call state and is safe
// for concurrent use. The origin is fixed at construction.
type Client struct {
	origin     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithOrigin sets the service origin, e.g. "https://thediscdb.com".
// An empty origin keeps the default.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		if origin != "" {
			c.origin = strings.TrimRight(origin, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client. The library adds no timeout of
// its own; use the HTTP client or the context for that.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With("component", "discdb")
		}
	}
}

// New creates a new TheDiscDB client.
func New(opts ...Option) *Client {
	c := &Client{
		origin:     DefaultOrigin,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Origin returns the configured service origin.
func (c *Client) Origin() string {
	return c.origin
}

// ImageURL returns the absolute URL of a catalog image path.
func (c *Client) ImageURL(path string, opts ImageOptions) (string, error) {
	return ImageURL(c.origin, path, opts)
}

// fetch issues a single request against the origin. A non-nil body is sent
// as JSON. The response body is decoded into out when out is non-nil.
func (c *Client) fetch(ctx context.Context, method, path string, body, out any) error {
	endpoint, err := resolve(c.origin, path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func resolve(origin, path string) (string, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("parse origin: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

type graphQLRequest struct {
	OperationName string `json:"operationName"`
	Query         string `json:"query"`
	Variables     any    `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

// graphql runs a catalog operation and returns its data payload. Only the
// HTTP status is treated as a failure signal; GraphQL errors in the body are
// logged and otherwise ignored.
func graphql[T any](ctx context.Context, c *Client, op operation, variables any) (T, error) {
	var zero T

	doc, ok := op.document()
	if !ok {
		return zero, &UnknownOperationError{Operation: op.String()}
	}

	start := time.Now()
	var resp graphQLResponse[T]
	err := c.fetch(ctx, http.MethodPost, "/graphql", graphQLRequest{
		OperationName: op.String(),
		Query:         doc,
		Variables:     variables,
	}, &resp)
	if err != nil {
		return zero, err
	}

	if c.log != nil {
		for _, e := range resp.Errors {
			c.log.Debug("graphql error in response", "operation", op.String(), "message", e.Message)
		}
		c.log.Debug("graphql query completed", "operation", op.String(), "duration_ms", time.Since(start).Milliseconds())
	}

	return resp.Data, nil
}

type mediaItemsResponse struct {
	MediaItems struct {
		Nodes []MediaItem `json:"nodes"`
	} `json:"mediaItems"`
}

type hashesVariables struct {
	Hashes []string `json:"hashes"`
}

type slugsVariables struct {
	MediaItemSlug string `json:"mediaItemSlug"`
	Slug          string `json:"slug"`
}

type externalIDsVariables struct {
	IMDBID string `json:"imdbId"`
	TMDBID string `json:"tmdbId"`
	TVDBID string `json:"tvdbId"`
}

// GetMediaItemByDiscHash returns the first media item with a release that
// contains a disc with the given content hash. Several items may share a
// disc; use GetMediaItemsByDiscHashes to receive all of them.
func (c *Client) GetMediaItemByDiscHash(ctx context.Context, hash string) (*MediaItem, error) {
	data, err := graphql[mediaItemsResponse](ctx, c, opDiscDetailByContentHashes, hashesVariables{
		Hashes: []string{hash},
	})
	if err != nil {
		return nil, err
	}
	return firstNode(data.MediaItems.Nodes, "disc", hash)
}

// GetMediaItemsByDiscHashes returns, for every given hash, the media items
// owning a disc with that hash. Every input hash is present in the result;
// hashes without matches map to an empty slice.
func (c *Client) GetMediaItemsByDiscHashes(ctx context.Context, hashes []string) (map[string][]MediaItem, error) {
	if len(hashes) == 0 {
		return map[string][]MediaItem{}, nil
	}

	data, err := graphql[mediaItemsResponse](ctx, c, opDiscDetailByContentHashes, hashesVariables{
		Hashes: hashes,
	})
	if err != nil {
		return nil, err
	}

	results := groupByContentHash(hashes, data.MediaItems.Nodes)
	if c.log != nil {
		c.log.Debug("grouped media items by hash", "hashes", len(hashes), "nodes", len(data.MediaItems.Nodes))
	}
	return results, nil
}

// GetReleaseBySlug returns the release identified by a media item slug and a
// release slug. The returned release carries its media item, whose Releases
// lists the other releases of the same item.
func (c *Client) GetReleaseBySlug(ctx context.Context, mediaItemSlug, slug string) (*Release, error) {
	data, err := graphql[mediaItemsResponse](ctx, c, opReleasesBySlugs, slugsVariables{
		MediaItemSlug: mediaItemSlug,
		Slug:          slug,
	})
	if err != nil {
		return nil, err
	}

	node, err := firstNode(data.MediaItems.Nodes, "release", mediaItemSlug, slug)
	if err != nil {
		return nil, err
	}
	return releaseFromNode(*node, mediaItemSlug, slug)
}

// ExternalIDQuery selects media items by any of their external ids.
// Empty fields are not matched.
type ExternalIDQuery struct {
	IMDB string // e.g. "tt0133093"
	TMDB string
	TVDB string
}

func (q ExternalIDQuery) keys() []string {
	var keys []string
	if q.IMDB != "" {
		keys = append(keys, "imdb="+q.IMDB)
	}
	if q.TMDB != "" {
		keys = append(keys, "tmdb="+q.TMDB)
	}
	if q.TVDB != "" {
		keys = append(keys, "tvdb="+q.TVDB)
	}
	return keys
}

// GetMediaItemByExternalIDs returns the first media item matching any of the
// given external ids.
func (c *Client) GetMediaItemByExternalIDs(ctx context.Context, q ExternalIDQuery) (*MediaItem, error) {
	keys := q.keys()
	if len(keys) == 0 {
		return nil, ErrNoExternalIDs
	}

	// The backend compares by equality and requires all three variables,
	// so absent ids are sent as empty strings.
	data, err := graphql[mediaItemsResponse](ctx, c, opMediaItemsByExternalIDs, externalIDsVariables{
		IMDBID: q.IMDB,
		TMDBID: q.TMDB,
		TVDBID: q.TVDB,
	})
	if err != nil {
		return nil, err
	}
	return firstNode(data.MediaItems.Nodes, "media item", keys...)
}
