package layout

import "fmt"

// ConnectorType identifies the role of a connection point. The numeric
// values match the editor's connection type constants.
type ConnectorType int

const (
	InputValue        ConnectorType = 1
	OutputValue       ConnectorType = 2
	NextStatement     ConnectorType = 3
	PreviousStatement ConnectorType = 4
)

func (t ConnectorType) String() string {
	switch t {
	case InputValue:
		return "input"
	case OutputValue:
		return "output"
	case NextStatement:
		return "next"
	case PreviousStatement:
		return "previous"
	default:
		return fmt.Sprintf("ConnectorType(%d)", int(t))
	}
}

// Point is a position in block coordinates.
type Point struct {
	X, Y float64
}

// Connector is a point where one block's outline interlocks with another's.
type Connector struct {
	Type   ConnectorType
	Offset Point
	// Target names the block on the other side, if joined.
	Target *ChildRef
}

// Block carries the identity of the block being rendered.
type Block struct {
	ID   string
	Type string

	// Fields holds the display texts of the first input's field row.
	Fields []string

	Previous *Connector
	Next     *Connector
	Output   *Connector
}

// FieldText returns the i-th field text, or "" when out of range.
func (b Block) FieldText(i int) string {
	if i < 0 || i >= len(b.Fields) {
		return ""
	}
	return b.Fields[i]
}
