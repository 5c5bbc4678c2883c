// Package shapes is the catalog of fixed outline fragments a block highlight
// is assembled from: corners, the statement notch, value tabs, the output
// tab and the start hat.
//
// Fragment geometry derives from a small set of numeric [Constants]. The
// defaults match the classic block look; a TOML file can override any of
// them:
//
//	corner_radius = 8
//	notch_width = 15
//	tab_width = 8
//	tab_height = 20
//
// Load it with [LoadFile] and pass the result to [NewCatalog].
package shapes
