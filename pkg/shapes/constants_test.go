package shapes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockoutline/pkg/errors"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDistance45(t *testing.T) {
	c := Default()
	assert.InDelta(t, 2.6967, c.Distance45Inside(), 1e-4)
	assert.InDelta(t, 1.9896, c.Distance45Outside(), 1e-4)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader("corner_radius = 10\ntab_width = 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.CornerRadius)
	assert.Equal(t, 12.0, c.TabWidth)
	assert.Equal(t, Default().TabHeight, c.TabHeight)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", "corner_radius = ="},
		{"zero radius", "corner_radius = 0"},
		{"offset too large", "highlight_offset = 9"},
		{"negative tab", "tab_height = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidShapes), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	path := filepath.Join(t.TempDir(), "shapes.toml")
	require.NoError(t, os.WriteFile(path, []byte("notch_width = 20\n"), 0o644))
	c, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, c.NotchWidth)
}
