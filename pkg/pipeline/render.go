package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/observability"
	"github.com/matzehuels/blockoutline/pkg/render"
	"github.com/matzehuels/blockoutline/pkg/render/navgraph"
	"github.com/matzehuels/blockoutline/pkg/render/sink"
)

// Render writes res in every requested format. res must carry the document
// and outline; the overlay is required for dot and nav.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	if res.Document == nil || res.Outline == nil {
		return nil, errors.Precondition("render: document and outline are required")
	}
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	svg := func() []byte {
		if data, ok := artifacts[FormatSVG]; ok {
			return data
		}
		svgOpts := []sink.SVGOption{sink.WithOutline(res.Outline)}
		if opts.Debug && res.Overlay != nil {
			svgOpts = append(svgOpts, sink.WithOverlay(res.Overlay))
		}
		return sink.RenderSVG(res.Document, svgOpts...)
	}

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = svg()
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithJSONOutline(res.Outline)}
			if res.Overlay != nil {
				jsonOpts = append(jsonOpts, sink.WithJSONOverlay(res.Overlay))
			}
			data, err = sink.RenderJSON(res.Document, jsonOpts...)
		case FormatDOT, FormatNav:
			if res.Overlay == nil {
				return nil, errors.Precondition("render %s: overlay is required", format)
			}
			dot := navgraph.ToDOT(res.Overlay, navgraph.Options{Detailed: opts.Detailed})
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = navgraph.RenderSVG(ctx, dot)
			}
		case FormatPNG:
			data, err = render.ToPNG(ctx, svg(), DefaultPNGScale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svg())
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
