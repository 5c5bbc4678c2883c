package overlay

// NodeKind identifies which kind of editor node an annotation targets.
type NodeKind int

const (
	NodeChildBlock NodeKind = iota
	NodeVariableField
	NodeIcon
)

func (k NodeKind) String() string {
	switch k {
	case NodeVariableField:
		return "variable-field"
	case NodeIcon:
		return "icon"
	default:
		return "child-block"
	}
}

// NodeRef names a real (non-overlay) node in the editor's element graph.
type NodeRef struct {
	Kind NodeKind `json:"kind"`
	ID   string   `json:"id"`
}

// Annotation is the navigation order and label to apply to a node.
type Annotation struct {
	Node  NodeRef   `json:"node"`
	Order *NavOrder `json:"order,omitempty"`
	Label string    `json:"label,omitempty"`
}

// annotations accumulates at most one Annotation per node, in first-seen
// order.
type annotations struct {
	list  []Annotation
	index map[NodeRef]int
}

func (a *annotations) set(ref NodeRef, order *NavOrder, label string) {
	if ref.ID == "" {
		return
	}
	if a.index == nil {
		a.index = make(map[NodeRef]int)
	}
	i, ok := a.index[ref]
	if !ok {
		i = len(a.list)
		a.index[ref] = i
		a.list = append(a.list, Annotation{Node: ref})
	}
	if order != nil {
		a.list[i].Order = order
	}
	if label != "" {
		a.list[i].Label = label
	}
}

func (a *annotations) all() []Annotation {
	return append([]Annotation(nil), a.list...)
}
