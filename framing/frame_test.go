package framing

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestNewFrame(t *testing.T) {
	c := newCaller()
	f := c.frame
	require.NotNil(t, f)
	assert.Equal(t, "TestNewFrame", f.Name)
	assert.Equal(t, 11, f.Line)
	assert.Equal(t, "github.com/go-andiamo/querystring/framing", f.Package)
	assert.True(t, strings.HasSuffix(f.File, "frame_test.go"))
	assert.True(t, strings.HasSuffix(f.String(), "frame_test.go:11"))
}

func TestNewFrame_Skip(t *testing.T) {
	f := outer()
	require.NotNil(t, f)
	assert.Equal(t, "TestNewFrame_Skip", f.Name)
}

func TestFrame_String_Nil(t *testing.T) {
	var f *Frame
	assert.Equal(t, "", f.String())
}

type caller struct {
	frame *Frame
}

//go:noinline
func newCaller() *caller {
	return &caller{
		frame: NewFrame(0),
	}
}

//go:noinline
func outer() *Frame {
	return inner()
}

//go:noinline
func inner() *Frame {
	return NewFrame(1)
}
