package layout

import "fmt"

// ElementKind tags the variant of an [Element].
type ElementKind int

const (
	KindSpacer ElementKind = iota
	KindField
	KindIcon
	KindExternalValue
	KindInlineValue
	KindStatement
)

var kindNames = map[ElementKind]string{
	KindSpacer:        "spacer",
	KindField:         "field",
	KindIcon:          "icon",
	KindExternalValue: "external value input",
	KindInlineValue:   "inline input",
	KindStatement:     "statement input",
}

func (k ElementKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ElementKind(%d)", int(k))
}

// Element is a positioned unit inside a row. Only the variant-specific
// pointer matching Kind is meaningful.
type Element struct {
	Kind          ElementKind
	Width, Height float64

	Field *Field
	Icon  *Icon

	// Connector is set for the input variants.
	Connector *Connector
	// Connected names the child block plugged into the input, if any.
	Connected *ChildRef
}

// IsSpacer reports whether the element is empty space.
func (e Element) IsSpacer() bool { return e.Kind == KindSpacer }

// IsInput reports whether the element is one of the input-slot variants.
func (e Element) IsInput() bool {
	switch e.Kind {
	case KindExternalValue, KindInlineValue, KindStatement:
		return true
	default:
		return false
	}
}

// FieldKind classifies the editable content behind a field element.
type FieldKind int

const (
	FieldOther FieldKind = iota
	FieldLabel
	FieldVariable
	FieldDropdown
	FieldText
	FieldNumber
)

// Field references the editable content of a field element.
type Field struct {
	// NodeID identifies the field's visual node in the editor.
	NodeID string
	Text   string
	Kind   FieldKind
}

// Icon references a decoration node such as a mutator.
type Icon struct {
	NodeID string
}

// ChildRef identifies a block connected to an input.
type ChildRef struct {
	ID   string
	Type string
	// Value is the child's first field value, if it has one.
	Value string
}
