package overlay

// Surface receives overlay elements. In an editor it is the block's SVG
// group; in tools and tests it is usually a [MemorySurface].
type Surface interface {
	// Attach adds e to the surface. e.ID is unique.
	Attach(e Element)
	// Detach removes the element with the given ID, if present.
	Detach(id string)
}

// MemorySurface is an in-memory [Surface] that preserves attach order.
type MemorySurface struct {
	elems []Element
	index map[string]int
}

// NewMemorySurface returns an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{index: make(map[string]int)}
}

// Attach appends e.
func (m *MemorySurface) Attach(e Element) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[e.ID] = len(m.elems)
	m.elems = append(m.elems, e)
}

// Detach removes the element with the given ID.
func (m *MemorySurface) Detach(id string) {
	i, ok := m.index[id]
	if !ok {
		return
	}
	m.elems = append(m.elems[:i], m.elems[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.elems); j++ {
		m.index[m.elems[j].ID] = j
	}
}

// Elements returns the attached elements in attach order.
func (m *MemorySurface) Elements() []Element {
	return append([]Element(nil), m.elems...)
}

// Len returns the number of attached elements.
func (m *MemorySurface) Len() int { return len(m.elems) }

var _ Surface = (*MemorySurface)(nil)
