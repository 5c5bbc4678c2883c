package overlay

import (
	"cmp"
	"slices"
)

// NavOrder is a navigation-order key. Assistive traversal visits nodes in
// ascending key order, independent of their visual position.
type NavOrder float64

const (
	// OrderBand is the number of keys reserved for each row.
	OrderBand = 1000

	// OrderFirst is the key of the opening parenthesis.
	OrderFirst NavOrder = 0
	// OrderLast is the key of closing rows, after every element.
	OrderLast NavOrder = 9999999
)

// RowOrder returns the key of a row's own rectangle.
func RowOrder(row int) NavOrder { return NavOrder(OrderBand * row) }

// ElemOrder returns the base key of an element: row band plus index.
func ElemOrder(row, elem int) NavOrder { return RowOrder(row) + NavOrder(elem) }

func (o NavOrder) ptr() *NavOrder { return &o }

// SortByOrder returns the elements that carry a key, in ascending key
// order. Elements with equal keys keep their relative order.
func SortByOrder(elems []Element) []Element {
	out := make([]Element, 0, len(elems))
	for _, e := range elems {
		if e.HasOrder() {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Element) int {
		return cmp.Compare(*a.Order, *b.Order)
	})
	return out
}
