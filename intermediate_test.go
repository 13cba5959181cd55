package vtpush

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntermediatesPush(t *testing.T) {
	var in Intermediates
	assert.True(t, in.IsEmpty())
	assert.True(t, in.Push('$'))
	assert.True(t, in.Push('!'))
	assert.Equal(t, []byte{'$', '!'}, in.Bytes())
	assert.Equal(t, 2, in.Len())
}

func TestIntermediatesDuplicateRejected(t *testing.T) {
	var in Intermediates
	assert.True(t, in.Push('$'))
	assert.False(t, in.Push('$'))
	assert.Equal(t, 1, in.Len())
}

func TestIntermediatesOverflowRejected(t *testing.T) {
	var in Intermediates
	assert.True(t, in.Push('$'))
	assert.True(t, in.Push('!'))
	assert.False(t, in.Push('"'))
	assert.Equal(t, 2, in.Len())
}

func TestIntermediatesClear(t *testing.T) {
	var in Intermediates
	in.Push('$')
	in.Clear()
	assert.True(t, in.IsEmpty())
	assert.Equal(t, 0, in.Len())
}
