package querystring

import (
	"github.com/go-andiamo/gopt"
	"github.com/go-andiamo/urit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_pathParams_GetPositional(t *testing.T) {
	pp := pathParams{"foo", 42, nil, gopt.Empty[string]()}
	assert.Equal(t, 4, pp.Len())
	v, ok := pp.GetPositional(0)
	require.True(t, ok)
	assert.Equal(t, "foo", v)
	v, ok = pp.GetPositional(1)
	require.True(t, ok)
	assert.Equal(t, "42", v)
	_, ok = pp.GetPositional(2)
	assert.False(t, ok)
	_, ok = pp.GetPositional(3)
	assert.False(t, ok)
	_, ok = pp.GetPositional(4)
	assert.False(t, ok)
	_, ok = pp.GetPositional(-1)
	assert.False(t, ok)
}

func Test_pathParams_Get(t *testing.T) {
	pp := pathParams{"foo", 42}
	v, ok := pp.Get(1)
	require.True(t, ok)
	assert.Equal(t, "42", v)
	v, ok = pp.Get("name", 0)
	require.True(t, ok)
	assert.Equal(t, "foo", v)
	v, ok = pp.Get("1")
	require.True(t, ok)
	assert.Equal(t, "42", v)
	_, ok = pp.Get("name")
	assert.False(t, ok)
	_, ok = pp.Get()
	assert.False(t, ok)
}

func Test_pathParams_interface(t *testing.T) {
	pp := pathParams{"foo"}
	var pi urit.PathVars = pp
	assert.Equal(t, urit.Positions, pi.VarsType())
	_, ok := pi.GetNamed("", 0)
	assert.False(t, ok)
	_, ok = pi.GetNamedFirst("")
	assert.False(t, ok)
	_, ok = pi.GetNamedLast("")
	assert.False(t, ok)
	assert.Empty(t, pi.GetAll())
	pi.Clear()
	assert.Equal(t, 1, pi.Len())
	err := pi.AddNamedValue("x", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	err = pi.AddPositionalValue(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
