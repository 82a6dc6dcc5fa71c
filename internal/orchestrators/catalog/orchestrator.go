// Package catalog serves Pokerole reference data, reading through a Redis
// cache in front of the public data repository
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/clients/reference"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	referencecache "github.com/KirkDiggler/pokerole-api/internal/repositories/reference_cache"
)

// Service defines the interface for reference data lookups
type Service interface {
	// Sync refreshes the cached index and, unless IndexOnly, every species and item document
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)

	GetSpecies(ctx context.Context, input *GetSpeciesInput) (*GetSpeciesOutput, error)
	GetMove(ctx context.Context, input *GetMoveInput) (*GetMoveOutput, error)
	GetAbility(ctx context.Context, input *GetAbilityInput) (*GetAbilityOutput, error)
	GetNature(ctx context.Context, input *GetNatureInput) (*GetNatureOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// SearchSpecies filters the full species list
	SearchSpecies(ctx context.Context, input *SearchSpeciesInput) (*SearchSpeciesOutput, error)

	// ListNames lists the documents of one kind
	ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client reference.Client
	Cache  referencecache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}

	return vb.Build()
}

type orchestrator struct {
	client reference.Client
	cache  referencecache.Repository
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		cache:  cfg.Cache,
	}, nil
}

func (o *orchestrator) Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	if input == nil {
		input = &SyncInput{}
	}

	idx, err := o.refreshIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := &SyncOutput{Indexed: make(map[string]int, len(reference.AllKinds()))}
	for _, kind := range reference.AllKinds() {
		out.Indexed[string(kind)] = len(idx.Paths(kind))
	}
	if input.IndexOnly {
		return out, nil
	}

	species, err := o.client.ListSpecies(ctx, pathsOf(idx.Species))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch species")
	}
	for _, s := range species {
		o.store(ctx, reference.KindSpecies, cacheName(idx.Species, s.Name), s)
	}
	out.SpeciesFetched = len(species)

	items, err := o.client.ListItems(ctx, pathsOf(idx.Items))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch items")
	}
	for _, item := range items {
		o.store(ctx, reference.KindItem, cacheName(idx.Items, item.Name), item)
	}
	out.ItemsFetched = len(items)

	slog.Info("Reference data synced",
		"species", out.SpeciesFetched,
		"items", out.ItemsFetched,
		"moves", out.Indexed[string(reference.KindMove)],
	)

	return out, nil
}

func (o *orchestrator) GetSpecies(ctx context.Context, input *GetSpeciesInput) (*GetSpeciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	species, err := getDocument(ctx, o, reference.KindSpecies, input.Name, o.client.GetSpecies)
	if err != nil {
		return nil, err
	}
	return &GetSpeciesOutput{Species: species}, nil
}

func (o *orchestrator) GetMove(ctx context.Context, input *GetMoveInput) (*GetMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	move, err := getDocument(ctx, o, reference.KindMove, input.Name, o.client.GetMove)
	if err != nil {
		return nil, err
	}
	return &GetMoveOutput{Move: move}, nil
}

func (o *orchestrator) GetAbility(ctx context.Context, input *GetAbilityInput) (*GetAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ability, err := getDocument(ctx, o, reference.KindAbility, input.Name, o.client.GetAbility)
	if err != nil {
		return nil, err
	}
	return &GetAbilityOutput{Ability: ability}, nil
}

func (o *orchestrator) GetNature(ctx context.Context, input *GetNatureInput) (*GetNatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	nature, err := getDocument(ctx, o, reference.KindNature, input.Name, o.client.GetNature)
	if err != nil {
		return nil, err
	}
	return &GetNatureOutput{Nature: nature}, nil
}

func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	item, err := getDocument(ctx, o, reference.KindItem, input.Name, o.client.GetItem)
	if err != nil {
		return nil, err
	}
	return &GetItemOutput{Item: item}, nil
}

func (o *orchestrator) SearchSpecies(ctx context.Context, input *SearchSpeciesInput) (*SearchSpeciesOutput, error) {
	if input == nil {
		input = &SearchSpeciesInput{}
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}
	if r := input.Filter.Region; r != "" && r != RegionNational {
		if _, ok := regionRanges[r]; !ok {
			return nil, errors.InvalidArgumentf("unknown region %q", r)
		}
	}

	all, err := o.allSpecies(ctx)
	if err != nil {
		return nil, err
	}

	matches := FilterSpecies(all, input.Filter)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Number != matches[j].Number {
			return matches[i].Number < matches[j].Number
		}
		return matches[i].Name < matches[j].Name
	})

	out := &SearchSpeciesOutput{Species: matches, Total: len(matches)}
	if input.Limit > 0 && len(matches) > input.Limit {
		out.Species = matches[:input.Limit]
	}
	return out, nil
}

func (o *orchestrator) ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	kind, err := parseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	paths, err := o.loadIndex(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &ListNamesOutput{Names: sortedNames(paths)}, nil
}

// allSpecies loads every indexed species, fetching and caching the ones the cache lacks
func (o *orchestrator) allSpecies(ctx context.Context) ([]*pokerole.Species, error) {
	paths, err := o.loadIndex(ctx, reference.KindSpecies)
	if err != nil {
		return nil, err
	}
	names := sortedNames(paths)

	cached := map[string][]byte{}
	docs, err := o.cache.GetDocuments(ctx, referencecache.GetDocumentsInput{
		Kind:  string(reference.KindSpecies),
		Names: names,
	})
	if err != nil {
		slog.Warn("Species cache unavailable, fetching all", "error", err)
	} else {
		cached = docs.Documents
	}

	all := make([]*pokerole.Species, 0, len(names))
	var missing []string
	for _, name := range names {
		data, ok := cached[name]
		if ok {
			var s pokerole.Species
			if err := json.Unmarshal(data, &s); err == nil {
				all = append(all, &s)
				continue
			}
		}
		missing = append(missing, paths[name])
	}

	if len(missing) > 0 {
		slog.Info("Fetching uncached species", "count", len(missing))
		fetched, err := o.client.ListSpecies(ctx, missing)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch species")
		}
		for _, s := range fetched {
			o.store(ctx, reference.KindSpecies, cacheName(paths, s.Name), s)
		}
		all = append(all, fetched...)
	}

	return all, nil
}

// getDocument reads a named document through the cache, resolving its path
// from the index on a miss
func getDocument[T any](
	ctx context.Context,
	o *orchestrator,
	kind reference.Kind,
	name string,
	fetch func(context.Context, string) (*T, error),
) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidArgumentf("%s name is required", kind)
	}

	if doc, ok := cachedDocument[T](ctx, o, kind, name); ok {
		return doc, nil
	}

	paths, err := o.loadIndex(ctx, kind)
	if err != nil {
		return nil, err
	}
	canonical, path, ok := resolveName(paths, name)
	if !ok {
		return nil, errors.NotFoundf("%s %q not found", kind, name).WithMeta(string(kind), name)
	}
	if canonical != name {
		if doc, ok := cachedDocument[T](ctx, o, kind, canonical); ok {
			return doc, nil
		}
	}

	doc, err := fetch(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s %q", kind, canonical)
	}
	o.store(ctx, kind, canonical, doc)

	return doc, nil
}

func cachedDocument[T any](ctx context.Context, o *orchestrator, kind reference.Kind, name string) (*T, bool) {
	out, err := o.cache.GetDocument(ctx, referencecache.GetDocumentInput{Kind: string(kind), Name: name})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Reference cache read failed", "kind", kind, "name", name, "error", err)
		}
		return nil, false
	}

	var doc T
	if err := json.Unmarshal(out.Data, &doc); err != nil {
		slog.Warn("Discarding corrupt cached document", "kind", kind, "name", name, "error", err)
		return nil, false
	}
	return &doc, true
}

// loadIndex returns the cached index for kind, refreshing every kind on a miss
func (o *orchestrator) loadIndex(ctx context.Context, kind reference.Kind) (map[string]string, error) {
	out, err := o.cache.GetIndex(ctx, referencecache.GetIndexInput{Kind: string(kind)})
	if err == nil {
		return out.Paths, nil
	}
	if !errors.IsNotFound(err) {
		slog.Warn("Reference index cache read failed", "kind", kind, "error", err)
	}

	idx, err := o.refreshIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Paths(kind), nil
}

func (o *orchestrator) refreshIndex(ctx context.Context) (*reference.Index, error) {
	idx, err := o.client.ListIndex(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reference data")
	}

	for _, kind := range reference.AllKinds() {
		if _, err := o.cache.SaveIndex(ctx, referencecache.SaveIndexInput{
			Kind:  string(kind),
			Paths: idx.Paths(kind),
		}); err != nil {
			slog.Warn("Failed to cache reference index", "kind", kind, "error", err)
		}
	}

	return idx, nil
}

func (o *orchestrator) store(ctx context.Context, kind reference.Kind, name string, doc interface{}) {
	data, err := json.Marshal(doc)
	if err != nil {
		slog.Warn("Failed to encode reference document", "kind", kind, "name", name, "error", err)
		return
	}
	if _, err := o.cache.SaveDocument(ctx, referencecache.SaveDocumentInput{
		Kind: string(kind),
		Name: name,
		Data: data,
	}); err != nil {
		slog.Warn("Failed to cache reference document", "kind", kind, "name", name, "error", err)
	}
}

// resolveName finds name in the index, falling back to a case-insensitive match
func resolveName(paths map[string]string, name string) (string, string, bool) {
	if p, ok := paths[name]; ok {
		return name, p, true
	}
	for _, n := range sortedNames(paths) {
		if strings.EqualFold(n, name) {
			return n, paths[n], true
		}
	}
	return "", "", false
}

// cacheName keys a fetched document by its index name when one matches
func cacheName(paths map[string]string, name string) string {
	if canonical, _, ok := resolveName(paths, name); ok {
		return canonical
	}
	return name
}

func sortedNames(paths map[string]string) []string {
	names := make([]string, 0, len(paths))
	for n := range paths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func pathsOf(paths map[string]string) []string {
	out := make([]string, 0, len(paths))
	for _, n := range sortedNames(paths) {
		out = append(out, paths[n])
	}
	return out
}

func parseKind(s string) (reference.Kind, error) {
	for _, k := range reference.AllKinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	names := make([]string, 0, len(reference.AllKinds()))
	for _, k := range reference.AllKinds() {
		names = append(names, string(k))
	}
	return "", errors.InvalidArgumentf("unknown kind %q (expected one of %s)", s, strings.Join(names, ", "))
}
