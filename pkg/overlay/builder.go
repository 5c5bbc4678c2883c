package overlay

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockoutline/pkg/errors"
	"github.com/matzehuels/blockoutline/pkg/layout"
)

// State is the lifecycle state of a [Builder].
type State int

const (
	StateIdle State = iota
	StateRendered
)

func (s State) String() string {
	if s == StateRendered {
		return "rendered"
	}
	return "idle"
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger used for warnings. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Builder draws debug overlays for one block onto a surface.
type Builder struct {
	surface Surface
	logger  *log.Logger
	session *Session
}

// Result is the outcome of one debug pass.
type Result struct {
	SessionID   string       `json:"session"`
	Elements    []Element    `json:"elements"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// NewBuilder returns an idle builder bound to surface.
func NewBuilder(surface Surface, opts ...Option) (*Builder, error) {
	if surface == nil {
		return nil, errors.Precondition("overlay: nil surface")
	}
	b := &Builder{surface: surface, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// State reports whether an overlay is currently attached.
func (b *Builder) State() State {
	if b.session == nil {
		return StateIdle
	}
	return StateRendered
}

// Session returns the active session, or nil when idle.
func (b *Builder) Session() *Session { return b.session }

// ClearElems detaches every element of the active session.
func (b *Builder) ClearElems() {
	if b.session == nil {
		return
	}
	b.session.Close()
	b.session = nil
}

// DrawDebug clears any previous overlay and draws a new one for block
// using the layout in snap. Rows are visited top to bottom: an operator
// block's first and last rows become parentheses, a row with a next
// connection becomes the closing row, other last rows and spacer rows are
// outlined, and content rows are drawn element by element. Finally the
// block's previous, next and output connectors are marked.
func (b *Builder) DrawDebug(block layout.Block, snap *layout.Snapshot) (*Result, error) {
	if snap == nil {
		return nil, errors.Precondition("overlay: nil layout snapshot")
	}
	b.ClearElems()

	s := newSession(b.surface, b.logger)
	b.session = s

	name, _ := NestingBlockName(block)
	parens := parenthesized[block.Type]
	last := len(snap.Rows) - 1

	cursorY := 0.0
	for r, row := range snap.Rows {
		switch {
		case r == 0 && parens:
			s.DrawLeftParenthesis(row, cursorY)
		case row.HasNext:
			s.DrawBottomRow(row, cursorY, name)
		case r == last && parens:
			s.DrawRightParenthesis(row, cursorY)
		case r == last, row.Spacer:
			s.DrawSpacerRow(row, cursorY)
		default:
			s.annotateRow(row, r, name)
			s.DrawRowWithElements(row, cursorY, r)
		}
		cursorY += row.Height
	}

	for _, c := range []*layout.Connector{block.Previous, block.Next, block.Output} {
		s.DrawConnection(c)
	}

	b.logger.Debug("overlay drawn", "block", block.ID, "type", block.Type,
		"rows", len(snap.Rows), "elements", len(s.elems))

	return &Result{
		SessionID:   s.ID(),
		Elements:    s.Elements(),
		Annotations: s.Annotations(),
	}, nil
}
