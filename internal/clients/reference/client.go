// Package reference loads Pokerole reference data (species, moves, abilities,
// natures, items) from the public Pokerole-Data repository
package reference

//go:generate mockgen -destination=mock/mock_client.go -package=referencemock github.com/KirkDiggler/pokerole-api/internal/clients/reference Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

const (
	// DefaultTreeURL lists every file of the data repository
	DefaultTreeURL = "https://api.github.com/repos/Pokerole-Software-Development/Pokerole-Data/git/trees/master?recursive=1"
	// DefaultRawBaseURL serves file contents by path
	DefaultRawBaseURL = "https://raw.githubusercontent.com/Pokerole-Software-Development/Pokerole-Data/master/"

	// DefaultBatchSize bounds the number of concurrent document fetches
	DefaultBatchSize = 20

	defaultHTTPTimeout = 30 * time.Second
)

// Client defines the interface for reference data retrieval
type Client interface {
	// ListIndex fetches the repository tree and indexes the documents by kind
	// Returns errors.Unavailable when the tree cannot be fetched
	ListIndex(ctx context.Context) (*Index, error)

	// GetSpecies fetches one species document by repository path
	// Returns errors.NotFound when the path does not exist
	GetSpecies(ctx context.Context, path string) (*pokerole.Species, error)

	// GetMove fetches one move document by repository path
	GetMove(ctx context.Context, path string) (*pokerole.MoveData, error)

	// GetAbility fetches one ability document by repository path
	GetAbility(ctx context.Context, path string) (*pokerole.Ability, error)

	// GetNature fetches one nature document by repository path
	GetNature(ctx context.Context, path string) (*pokerole.Nature, error)

	// GetItem fetches one item document by repository path
	GetItem(ctx context.Context, path string) (*pokerole.Item, error)

	// ListSpecies fetches every path concurrently, skipping documents that fail.
	// Results are sorted by dex number.
	ListSpecies(ctx context.Context, paths []string) ([]*pokerole.Species, error)

	// ListItems fetches every path concurrently, skipping documents that fail.
	// Results are sorted by name.
	ListItems(ctx context.Context, paths []string) ([]*pokerole.Item, error)
}

// Config contains configuration options for the reference client.
type Config struct {
	// TreeURL for the repository listing (optional, defaults to DefaultTreeURL)
	TreeURL string
	// RawBaseURL for document contents (optional, defaults to DefaultRawBaseURL)
	RawBaseURL string
	// HTTPTimeout for requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// BatchSize for concurrent fetches (optional, defaults to 20)
	BatchSize int
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.TreeURL == "" {
		cfg.TreeURL = DefaultTreeURL
	}
	if cfg.RawBaseURL == "" {
		cfg.RawBaseURL = DefaultRawBaseURL
	}
	if !strings.HasSuffix(cfg.RawBaseURL, "/") {
		cfg.RawBaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	vb := errors.NewValidationBuilder()
	if _, err := url.Parse(cfg.TreeURL); err != nil {
		vb.InvalidField("TreeURL", err.Error())
	}
	if _, err := url.Parse(cfg.RawBaseURL); err != nil {
		vb.InvalidField("RawBaseURL", err.Error())
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.BatchSize < 0 {
		vb.Field("BatchSize", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	http       *http.Client
	treeURL    string
	rawBaseURL string
	batchSize  int
}

// New creates a new reference client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		http:       httpClient,
		treeURL:    cfg.TreeURL,
		rawBaseURL: cfg.RawBaseURL,
		batchSize:  cfg.BatchSize,
	}, nil
}

func (c *client) ListIndex(ctx context.Context) (*Index, error) {
	slog.Info("Fetching reference data tree", "url", c.treeURL)

	var tree treeResponse
	if err := c.getJSON(ctx, c.treeURL, &tree); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "reference data tree is unavailable")
		}
		return nil, errors.Wrap(err, "failed to list reference data tree")
	}
	if tree.Truncated {
		slog.Warn("Reference data tree listing was truncated", "entries", len(tree.Tree))
	}

	idx := NewIndex()
	for _, entry := range tree.Tree {
		idx.add(entry)
	}

	slog.Info("Indexed reference data",
		"species", len(idx.Species),
		"items", len(idx.Items),
		"moves", len(idx.Moves),
		"abilities", len(idx.Abilities),
		"natures", len(idx.Natures))

	return idx, nil
}

func (c *client) GetSpecies(ctx context.Context, path string) (*pokerole.Species, error) {
	var doc speciesDocument
	if err := c.getDocument(ctx, path, &doc); err != nil {
		return nil, err
	}
	return doc.toSpecies(), nil
}

func (c *client) GetMove(ctx context.Context, path string) (*pokerole.MoveData, error) {
	var move pokerole.MoveData
	if err := c.getDocument(ctx, path, &move); err != nil {
		return nil, err
	}
	return &move, nil
}

func (c *client) GetAbility(ctx context.Context, path string) (*pokerole.Ability, error) {
	var ability pokerole.Ability
	if err := c.getDocument(ctx, path, &ability); err != nil {
		return nil, err
	}
	return &ability, nil
}

func (c *client) GetNature(ctx context.Context, path string) (*pokerole.Nature, error) {
	var nature pokerole.Nature
	if err := c.getDocument(ctx, path, &nature); err != nil {
		return nil, err
	}
	return &nature, nil
}

func (c *client) GetItem(ctx context.Context, path string) (*pokerole.Item, error) {
	var doc itemDocument
	if err := c.getDocument(ctx, path, &doc); err != nil {
		return nil, err
	}
	return doc.toItem(), nil
}

func (c *client) ListSpecies(ctx context.Context, paths []string) ([]*pokerole.Species, error) {
	species := fetchAll(ctx, c.batchSize, paths, c.GetSpecies)
	sort.SliceStable(species, func(i, j int) bool {
		return species[i].Number < species[j].Number
	})
	return species, ctx.Err()
}

func (c *client) ListItems(ctx context.Context, paths []string) ([]*pokerole.Item, error) {
	items := fetchAll(ctx, c.batchSize, paths, c.GetItem)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, ctx.Err()
}

// fetchAll loads every path with at most limit requests in flight.
// Failed documents are logged and left out of the result, which keeps the order of paths.
func fetchAll[T any](ctx context.Context, limit int, paths []string, get func(context.Context, string) (*T, error)) []*T {
	slots := make([]*T, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range paths {
		g.Go(func() error {
			doc, err := get(gctx, p)
			if err != nil {
				slog.Warn("Skipping reference document", "path", p, "error", err)
				return nil
			}
			slots[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	results := make([]*T, 0, len(slots))
	for _, doc := range slots {
		if doc != nil {
			results = append(results, doc)
		}
	}

	slog.Debug("Loaded reference documents", "requested", len(paths), "loaded", len(results))
	return results
}

func (c *client) getDocument(ctx context.Context, path string, out interface{}) error {
	if strings.TrimSpace(path) == "" {
		return errors.InvalidArgument("document path is required")
	}
	return c.getJSON(ctx, c.documentURL(path), out)
}

// documentURL escapes each path segment so names with spaces or punctuation resolve
func (c *client) documentURL(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.rawBaseURL + strings.Join(segments, "/")
}

func (c *client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid request url %q", rawURL)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "request to %s failed", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp, rawURL); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read response from %s", rawURL)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "malformed document at %s", rawURL)
	}
	return nil
}

func statusError(resp *http.Response, rawURL string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("reference document not found: %s", rawURL)
	default:
		return errors.Unavailablef("reference request to %s returned %s", rawURL, resp.Status).
			WithMeta("status_code", resp.StatusCode)
	}
}

// itemDocument tolerates a Cost written as a string
type itemDocument struct {
	pokerole.Item
	Cost json.RawMessage `json:"Cost"`
}

func (d *itemDocument) toItem() *pokerole.Item {
	item := d.Item
	item.Cost = dexNumber(d.Cost, "")
	return &item
}
