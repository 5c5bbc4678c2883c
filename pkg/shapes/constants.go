package shapes

import (
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blockoutline/pkg/errors"
)

// Constants holds the numeric parameters of the shape catalog.
type Constants struct {
	CornerRadius     float64 `toml:"corner_radius"`
	HighlightOffset  float64 `toml:"highlight_offset"`
	NotchWidth       float64 `toml:"notch_width"`
	TabWidth         float64 `toml:"tab_width"`
	TabHeight        float64 `toml:"tab_height"`
	TabOffsetFromTop float64 `toml:"tab_offset_from_top"`
	InlinePaddingY   float64 `toml:"inline_padding_y"`
	StartHatWidth    float64 `toml:"start_hat_width"`
	StartHatHeight   float64 `toml:"start_hat_height"`
}

// Default returns the classic block constants.
func Default() Constants {
	return Constants{
		CornerRadius:     8,
		HighlightOffset:  0.5,
		NotchWidth:       15,
		TabWidth:         8,
		TabHeight:        20,
		TabOffsetFromTop: 5,
		InlinePaddingY:   5,
		StartHatWidth:    100,
		StartHatHeight:   15,
	}
}

// Distance45Inside is the offset from a rounded corner's bounding box to
// the point at 45° on the highlight arc.
func (c Constants) Distance45Inside() float64 {
	return (1-math.Sqrt2/2)*(c.CornerRadius-c.HighlightOffset) + c.HighlightOffset
}

// Distance45Outside is the 45° offset for arcs drawn outside the outline.
func (c Constants) Distance45Outside() float64 {
	return (1-math.Sqrt2/2)*(c.CornerRadius+c.HighlightOffset) - c.HighlightOffset
}

// Validate rejects constants the fragments cannot be built from.
func (c Constants) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"corner_radius", c.CornerRadius},
		{"notch_width", c.NotchWidth},
		{"tab_width", c.TabWidth},
		{"tab_height", c.TabHeight},
		{"start_hat_width", c.StartHatWidth},
		{"start_hat_height", c.StartHatHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.New(errors.ErrCodeInvalidShapes, "%s must be positive, got %v", p.name, p.v)
		}
	}
	if c.HighlightOffset < 0 || c.HighlightOffset >= c.CornerRadius {
		return errors.New(errors.ErrCodeInvalidShapes,
			"highlight_offset must be in [0, corner_radius), got %v", c.HighlightOffset)
	}
	return nil
}

// Decode reads TOML overrides from r on top of the defaults.
func Decode(r io.Reader) (Constants, error) {
	c := Default()
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return Constants{}, errors.Wrap(errors.ErrCodeInvalidShapes, err, "decode shape constants")
	}
	if err := c.Validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

// LoadFile reads TOML overrides from path. An empty path returns Default.
func LoadFile(path string) (Constants, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Constants{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return Constants{}, err
	}
	defer f.Close()
	return Decode(f)
}
