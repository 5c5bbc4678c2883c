package overlay

// Shape is the geometry kind of an overlay element.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rect"
}

// Style classes attached to overlay elements.
const (
	ClassDebug      = "blockRenderDebug"
	ClassRowSpacer  = "rowSpacerRect " + ClassDebug
	ClassRendering  = "elemRenderingRect " + ClassDebug
	ClassConnection = "connectionRect " + ClassDebug
)

// Element is one disposable overlay shape. Rectangles use X, Y, Width,
// Height and the corner radii; circles use CX, CY and R.
type Element struct {
	ID    string `json:"id"`
	Shape Shape  `json:"shape"`
	Class string `json:"class"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	RX     float64 `json:"rx,omitempty"`
	RY     float64 `json:"ry,omitempty"`

	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`

	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`

	Label string    `json:"label,omitempty"`
	Order *NavOrder `json:"order,omitempty"`
}

// HasOrder reports whether the element carries a navigation-order key.
func (e Element) HasOrder() bool { return e.Order != nil }
