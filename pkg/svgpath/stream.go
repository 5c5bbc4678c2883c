package svgpath

import "strings"

// Fragment is a pre-composed run of commands keyed by a shape catalog name.
type Fragment struct {
	Name     string
	Commands []Command
}

func (f Fragment) String() string { return joinCommands(f.Commands) }

// Instruction is one entry of a stream: literal commands when Fragment is
// empty, otherwise the commands of the named catalog fragment.
type Instruction struct {
	Fragment string
	Commands []Command
}

// IsFragment reports whether the instruction embeds a catalog fragment.
func (in Instruction) IsFragment() bool { return in.Fragment != "" }

func (in Instruction) String() string { return joinCommands(in.Commands) }

// Stream is an ordered, append-only sequence of instructions.
// The zero value is an empty stream ready to use.
type Stream struct {
	ins []Instruction
}

// NewStream returns an empty stream.
func NewStream() *Stream { return &Stream{} }

// Push appends literal commands as a single instruction.
func (s *Stream) Push(cmds ...Command) {
	if len(cmds) == 0 {
		return
	}
	s.ins = append(s.ins, Instruction{Commands: cmds})
}

// PushFragment appends a catalog fragment as a single instruction.
func (s *Stream) PushFragment(f Fragment) {
	if len(f.Commands) == 0 {
		return
	}
	s.ins = append(s.ins, Instruction{Fragment: f.Name, Commands: f.Commands})
}

// Instructions returns a copy of the instructions in order.
func (s *Stream) Instructions() []Instruction {
	return append([]Instruction(nil), s.ins...)
}

// Commands flattens the stream into its commands.
func (s *Stream) Commands() []Command {
	var out []Command
	for _, in := range s.ins {
		out = append(out, in.Commands...)
	}
	return out
}

// Len returns the number of instructions.
func (s *Stream) Len() int { return len(s.ins) }

// String serialises the stream as SVG path data.
func (s *Stream) String() string {
	parts := make([]string, 0, len(s.ins))
	for _, in := range s.ins {
		parts = append(parts, in.String())
	}
	return strings.Join(parts, " ")
}

func joinCommands(cmds []Command) string {
	parts := make([]string, 0, len(cmds))
	for _, c := range cmds {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
