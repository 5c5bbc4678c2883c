package overlay

import "github.com/matzehuels/blockoutline/pkg/layout"

var nestingNames = map[string]string{
	"controls_if":            "if",
	"controls_repeat_ext":    "repeat",
	"controls_forEach":       "for each",
	"controls_for":           "for",
	"procedures_defnoreturn": "function",
	"procedures_defreturn":   "function",
	"controls_whileUntil":    "repeat while",
}

// parenthesized lists block types whose first and last rows read as
// parentheses.
var parenthesized = map[string]bool{
	"math_arithmetic": true,
	"logic_operation": true,
}

// NestingBlockName returns the human-readable phrase for a block that nests
// statements, e.g. "for each". A while/until loop reads "repeat until" when
// its second field displays "until". ok is false for other block types.
func NestingBlockName(b layout.Block) (name string, ok bool) {
	if b.Type == "controls_whileUntil" && b.FieldText(1) == "until" {
		return "repeat until", true
	}
	name, ok = nestingNames[b.Type]
	return name, ok
}
