package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockoutline/pkg/cache"
	bio "github.com/matzehuels/blockoutline/pkg/io"
	"github.com/matzehuels/blockoutline/pkg/observability"
	"github.com/matzehuels/blockoutline/pkg/outline"
	"github.com/matzehuels/blockoutline/pkg/overlay"
	"github.com/matzehuels/blockoutline/pkg/shapes"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent runs with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer selects the default keyer, a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs load → outline → overlay → render, serving the artifacts
// from cache when the same document was rendered with the same options.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	data, err := readInput(&opts)
	if err != nil {
		return nil, err
	}
	catalog, shapesHash, err := loadShapes(&opts)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.ArtifactKey(cache.Hash(data), opts.ArtifactKeyOpts(shapesHash))

	if !opts.Refresh {
		if res, ok := r.cached(ctx, key, opts.Formats); ok {
			r.Logger.Info("served from cache", "formats", opts.Formats)
			return res, nil
		}
	}

	doc, err := parseDocument(ctx, data, &opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Document: doc}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Rows = len(doc.Snapshot.Rows)

	r.Logger.Info("loaded document",
		"block", doc.Block.Type,
		"rows", result.Stats.Rows,
		"rtl", doc.Snapshot.RTL,
		"duration", result.Stats.LoadTime)

	outlineStart := time.Now()
	out, err := r.Outline(ctx, doc, catalog)
	if err != nil {
		return nil, err
	}
	result.Outline = out
	result.Stats.OutlineTime = time.Since(outlineStart)
	result.Stats.Commands = len(out.Outer.Commands()) + len(out.Inline.Commands())

	if opts.needsOverlay() {
		overlayStart := time.Now()
		dbg, err := r.Overlay(ctx, doc, opts.Logger)
		if err != nil {
			return nil, err
		}
		result.Overlay = dbg
		result.Stats.OverlayTime = time.Since(overlayStart)
		result.Stats.Elements = len(dbg.Elements)
	}

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"commands", result.Stats.Commands,
		"elements", result.Stats.Elements,
		"duration", result.Stats.RenderTime)

	r.store(ctx, key, result)
	return result, nil
}

// Outline builds the highlight paths of doc.
func (r *Runner) Outline(ctx context.Context, doc *bio.Document, catalog shapes.Catalog) (*outline.Result, error) {
	observability.Pipeline().OnOutlineStart(ctx, len(doc.Snapshot.Rows))
	start := time.Now()

	out, err := outline.Walk(&doc.Snapshot, outline.WithCatalog(catalog))
	n := 0
	if out != nil {
		n = len(out.Outer.Commands())
	}
	observability.Pipeline().OnOutlineComplete(ctx, n, time.Since(start), err)
	return out, err
}

// Overlay draws the debug overlay of doc on a fresh in-memory surface.
func (r *Runner) Overlay(ctx context.Context, doc *bio.Document, logger *log.Logger) (*overlay.Result, error) {
	if logger == nil {
		logger = r.Logger
	}
	observability.Pipeline().OnOverlayStart(ctx, doc.Block.Type)
	start := time.Now()

	b, err := overlay.NewBuilder(overlay.NewMemorySurface(), overlay.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	res, err := b.DrawDebug(doc.Block, &doc.Snapshot)
	n := 0
	if res != nil {
		n = len(res.Elements)
	}
	observability.Pipeline().OnOverlayComplete(ctx, n, time.Since(start), err)
	return res, err
}

// Load reads and decodes the document named by opts without rendering it.
func (r *Runner) Load(ctx context.Context, opts Options) (*bio.Document, shapes.Catalog, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, shapes.Catalog{}, err
	}
	data, err := readInput(&opts)
	if err != nil {
		return nil, shapes.Catalog{}, err
	}
	catalog, _, err := loadShapes(&opts)
	if err != nil {
		return nil, shapes.Catalog{}, err
	}
	doc, err := parseDocument(ctx, data, &opts)
	return doc, catalog, err
}

func (r *Runner) cached(ctx context.Context, key string, formats []string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return nil, false
	}
	b, err := cache.DecodeBundle(data)
	if err != nil || !b.Has(formats...) {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return &Result{
		Artifacts: b.Artifacts,
		Stats:     statsFromCounters(b.Stats),
		Cached:    true,
	}, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result) {
	b := cache.Bundle{
		Artifacts: res.Artifacts,
		Stats:     res.Stats.counters(),
		CreatedAt: time.Now(),
	}
	data, err := b.Encode()
	if err != nil {
		r.Logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
