package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPushAndString(t *testing.T) {
	s := NewStream()
	s.Push(MoveBy(0.5, 8))
	s.PushFragment(Fragment{Name: "corner", Commands: []Command{ArcTo(7.5, 7.5, 0, false, true, 8, 0.5)}})
	s.Push(H(39.5))

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "m 0.5,8 A 7.5,7.5 0 0,1 8,0.5 H 39.5", s.String())

	ins := s.Instructions()
	assert.False(t, ins[0].IsFragment())
	assert.True(t, ins[1].IsFragment())
	assert.Equal(t, "corner", ins[1].Fragment)
}

func TestStreamIgnoresEmptyInstructions(t *testing.T) {
	var s Stream
	s.Push()
	s.PushFragment(Fragment{Name: "empty"})
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
}

func TestInstructionsReturnsCopy(t *testing.T) {
	s := NewStream()
	s.Push(H(1))
	ins := s.Instructions()
	ins[0] = Instruction{Fragment: "mutated"}
	assert.False(t, s.Instructions()[0].IsFragment())
}
