// Package render holds the output side of blockoutline: the document sinks
// in [sink], the navigation-order diagram in [navgraph], and raster/print
// conversion of rendered SVG.
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert from librsvg:
//
//	brew install librsvg        # macOS
//	apt install librsvg2-bin    # Debian/Ubuntu
//
// [sink]: github.com/matzehuels/blockoutline/pkg/render/sink
// [navgraph]: github.com/matzehuels/blockoutline/pkg/render/navgraph
package render
