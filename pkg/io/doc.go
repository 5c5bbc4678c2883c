// Package io reads and writes block documents: a block's identity and the
// row/element layout snapshot its renderer produced.
//
// # Formats
//
// The same document shape is accepted as JSON, YAML or TOML; [Import] picks
// the decoder from the file extension. A minimal JSON document:
//
//	{
//	  "block": {"id": "b1", "type": "text_print", "previous": {"type": "previous"}},
//	  "layout": {
//	    "has_previous": true,
//	    "rows": [
//	      {"spacer": true, "height": 5, "width": 60},
//	      {"elements": [
//	        {"kind": "field", "width": 30, "height": 16,
//	         "field": {"id": "f1", "text": "print", "kind": "label"}},
//	        {"kind": "external_value", "width": 10, "height": 24,
//	         "connector": {"type": "input", "x": 60, "y": 5}}
//	      ]},
//	      {"spacer": true, "height": 5, "width": 60}
//	    ]
//	  }
//	}
//
// # Derived dimensions
//
// Aggregate sizes may be omitted. A row without width or height takes the
// sum of its element widths and the tallest element; a layout without width
// or height takes the widest row and the sum of row heights. The
// has_previous, has_next and has_output flags are also implied by the
// block's connectors.
//
// # Export
//
// [WriteJSON] writes the normalized document, with derived dimensions
// filled in, so it can be re-imported identically.
package io
