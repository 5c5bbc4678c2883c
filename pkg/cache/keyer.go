package cache

import (
	"slices"
	"strings"
)

// ArtifactKeyOpts are the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Formats []string `json:"formats"`
	// RTL is "", "ltr" or "rtl"; empty keeps the document's direction.
	RTL        string `json:"rtl,omitempty"`
	ShapesHash string `json:"shapes,omitempty"`
	Debug      bool   `json:"debug,omitempty"`
	Detailed   bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies the artifacts of a document rendered with opts.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

// ArtifactKey hashes the options together with the document hash. Format
// order does not affect the key.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	formats := slices.Clone(opts.Formats)
	for i, f := range formats {
		formats[i] = strings.ToLower(f)
	}
	slices.Sort(formats)
	opts.Formats = slices.Compact(formats)
	return hashKey("artifact", docHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer, e.g. with the build
// version so that upgrades never read stale artifacts.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}

var (
	_ Keyer = (*DefaultKeyer)(nil)
	_ Keyer = (*ScopedKeyer)(nil)
)
