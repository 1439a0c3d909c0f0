package optional

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	v := Some(5)
	assert.True(t, v.IsPresent(), "some is present")
	got, err := v.Get()
	require.NoError(t, err, "get")
	assert.Equal(t, 5, got, "get")
	assert.Equal(t, 5, v.MustGet(), "must get")
	assert.Equal(t, 5, v.GetOr(2), "get or")

	n := None[int]()
	assert.False(t, n.IsPresent(), "none is empty")
	assert.Equal(t, 2, n.GetOr(2), "get or on empty")

	var zero Value[int]
	assert.False(t, zero.IsPresent(), "zero value is empty")
}

func TestGetOnEmpty(t *testing.T) {
	_, err := None[int]().Get()
	require.Error(t, err, "get on empty")
	assert.True(t, errors.Is(err, ErrEmpty), "sentinel")
	assert.Panics(t, func() { None[int]().MustGet() }, "must get on empty")
}

func TestFromPtr(t *testing.T) {
	p := pointer.To(5)
	v := FromPtr(p)
	assert.True(t, v.IsPresent(), "present")
	*p = 6
	assert.Equal(t, 5, v.MustGet(), "container owns its copy")

	assert.False(t, FromPtr[int](nil).IsPresent(), "nil pointer")
}

func TestRefAliasesTheCell(t *testing.T) {
	v := Some(5)
	p := v.Ref()
	require.NotNil(t, p, "ref on present")
	*p = 7
	assert.Equal(t, 7, v.MustGet(), "writes are visible")

	n := None[int]()
	assert.Nil(t, n.Ref(), "ref on empty")
}

func TestPtrCopies(t *testing.T) {
	v := Some(5)
	p := v.Ptr()
	require.NotNil(t, p, "ptr on present")
	*p = 9
	assert.Equal(t, 5, v.MustGet(), "writes do not reach the container")
	assert.Nil(t, None[int]().Ptr(), "ptr on empty")
}

func TestCopiesAreIndependent(t *testing.T) {
	v := Some(5)
	cp := v
	*v.Ref() = 8
	assert.Equal(t, 5, cp.MustGet(), "value semantics")
}
