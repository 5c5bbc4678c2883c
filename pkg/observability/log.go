package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events as debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Warn(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}

func (h *LogHooks) OnImportStart(_ context.Context, source string) {
	h.logger.Debug("import", "source", source)
}

func (h *LogHooks) OnImportComplete(_ context.Context, source string, rows int, d time.Duration, err error) {
	h.done("import", d, err, "source", source, "rows", rows)
}

func (h *LogHooks) OnOutlineStart(_ context.Context, rows int) {
	h.logger.Debug("outline", "rows", rows)
}

func (h *LogHooks) OnOutlineComplete(_ context.Context, commands int, d time.Duration, err error) {
	h.done("outline", d, err, "commands", commands)
}

func (h *LogHooks) OnOverlayStart(_ context.Context, blockType string) {
	h.logger.Debug("overlay", "type", blockType)
}

func (h *LogHooks) OnOverlayComplete(_ context.Context, elements int, d time.Duration, err error) {
	h.done("overlay", d, err, "elements", elements)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
