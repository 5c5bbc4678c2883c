// Package pipeline runs the complete import → outline → overlay → render
// pipeline for one block document.
//
// # Stages
//
//  1. Load: read the document (JSON, YAML or TOML) and the shape constants
//  2. Outline: walk the rows and build the highlight paths
//  3. Overlay: draw the debug overlay and collect annotations
//  4. Render: write the requested formats (svg, json, dot, nav, png, pdf)
//
// [Runner.Execute] runs all of them and caches the rendered artifacts as one
// msgpack bundle keyed by the document hash and the render options. The
// stages are also exposed individually for commands that only need one.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "block.yaml",
//	    Formats: []string{"svg", "nav"},
//	    Debug:   true,
//	})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockoutline/pkg/cache"
	"github.com/matzehuels/blockoutline/pkg/errors"
	bio "github.com/matzehuels/blockoutline/pkg/io"
	"github.com/matzehuels/blockoutline/pkg/outline"
	"github.com/matzehuels/blockoutline/pkg/overlay"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatNav  = "nav"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats lists the supported output formats in canonical order.
var ValidFormats = []string{FormatSVG, FormatJSON, FormatDOT, FormatNav, FormatPNG, FormatPDF}

// Direction overrides.
const (
	DirectionAuto = ""
	DirectionLTR  = "ltr"
	DirectionRTL  = "rtl"
)

// DefaultPNGScale is the raster scale used for png output.
const DefaultPNGScale = 2.0

// Options configures one pipeline run.
type Options struct {
	// Input is the document path. When Data is set, Input only names the
	// source and selects the format if Format is empty.
	Input  string     `json:"input,omitempty"`
	Data   []byte     `json:"-"`
	Format bio.Format `json:"format,omitempty"`

	// ShapesPath is an optional TOML file overriding the shape constants.
	ShapesPath string `json:"shapes,omitempty"`

	Formats   []string `json:"formats,omitempty"`
	Direction string   `json:"direction,omitempty"`
	// Debug draws the overlay into the svg output. dot, nav and json
	// outputs always carry the overlay.
	Debug    bool `json:"debug,omitempty"`
	Detailed bool `json:"detailed,omitempty"`
	Refresh  bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run. On a cache hit only
// Artifacts, Stats counters and Cached are set.
type Result struct {
	Document *bio.Document
	Outline  *outline.Result
	Overlay  *overlay.Result

	Artifacts map[string][]byte
	Stats     Stats
	Cached    bool
}

// Stats contains run counters and timings.
type Stats struct {
	Rows     int
	Commands int
	Elements int

	LoadTime    time.Duration
	OutlineTime time.Duration
	OverlayTime time.Duration
	RenderTime  time.Duration
}

func (s Stats) counters() map[string]int {
	return map[string]int{"rows": s.Rows, "commands": s.Commands, "elements": s.Elements}
}

func statsFromCounters(m map[string]int) Stats {
	return Stats{Rows: m["rows"], Commands: m["commands"], Elements: m["elements"]}
}

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	return errors.ValidateFormats(formats, ValidFormats...)
}

// ValidateDirection checks a direction override.
func ValidateDirection(d string) error {
	switch d {
	case DirectionAuto, DirectionLTR, DirectionRTL:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be ltr or rtl)", d)
	}
}

// ValidateAndSetDefaults checks required fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && len(o.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input document is required")
	}
	if o.Format == "" {
		if o.Input == "" {
			o.Format = bio.FormatJSON
		} else {
			f, err := bio.FormatFromPath(o.Input)
			if err != nil {
				return err
			}
			o.Format = f
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = slices.Clone(o.Formats)
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	slices.Sort(o.Formats)
	o.Formats = slices.Compact(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.Direction = strings.ToLower(o.Direction)
	if err := ValidateDirection(o.Direction); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Wants reports whether format f was requested.
func (o *Options) Wants(f string) bool { return slices.Contains(o.Formats, f) }

// needsOverlay reports whether any requested output carries the overlay.
func (o *Options) needsOverlay() bool {
	return o.Debug || o.Wants(FormatJSON) || o.Wants(FormatDOT) || o.Wants(FormatNav)
}

// ArtifactKeyOpts returns the cache key options for this run.
func (o *Options) ArtifactKeyOpts(shapesHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Formats:    o.Formats,
		RTL:        o.Direction,
		ShapesHash: shapesHash,
		Debug:      o.Debug,
		Detailed:   o.Detailed,
	}
}
