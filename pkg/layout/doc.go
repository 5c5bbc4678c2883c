// Package layout defines the read-only geometry snapshot consumed by the
// highlight and overlay builders.
//
// A [Snapshot] is produced by an external layout engine after it has measured
// every row and element of one block. Nothing in this module mutates a
// snapshot: the highlighter and overlay builders only read it, and a new
// snapshot is supplied whenever the block's content changes.
//
// # Structure
//
// A snapshot is an ordered list of [Row] values, top to bottom. Each row holds
// an ordered list of [Element] values, left to right. Elements are a closed
// variant set tagged by [ElementKind]:
//
//   - [KindField]: editable or static content such as labels and dropdowns
//   - [KindIcon]: a decoration such as a mutator gear
//   - [KindExternalValue]: a value socket drawn on the block's right edge
//   - [KindInlineValue]: a value socket drawn inside the row
//   - [KindStatement]: a nested statement slot
//   - [KindSpacer]: empty space
//
// Input elements carry a [Connector] and, when something is plugged in, a
// [ChildRef] naming the connected block.
//
// # Invariants
//
// The layout engine guarantees that a row's width equals the sum of its
// element widths and that the snapshot height equals the sum of its row
// heights. This package does not enforce either; the pipeline reports
// documents that break them through [Snapshot.Consistent].
package layout
