package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/list"
)

const sample = `
ops:
  - {op: add, index: 0, value: 1}
  - {op: add, index: 1, value: 3}
  - {op: add, index: 1, value: 2}
  - {op: set, index: 0, value: 10}
  - {op: get, index: 5}
  - {op: remove, index: 1}
  - {op: size}
`

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := Parse([]byte(sample))
		require.NoError(t, err)

		require.Len(t, s.Ops, 7)
		assert.Equal(t, Op{Op: OpAdd, Index: 1, Value: 3}, s.Ops[1])
		assert.Equal(t, Op{Op: OpSize}, s.Ops[6])
	})

	t.Run("unknown op", func(t *testing.T) {
		_, err := Parse([]byte("ops:\n  - {op: pop}\n"))
		assert.ErrorIs(t, err, ErrUnknownOp)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("ops: [\n"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ops.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, s.Ops, 7)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRun(t *testing.T) {
	t.Run("applies ops in order", func(t *testing.T) {
		s, err := Parse([]byte(sample))
		require.NoError(t, err)

		l := list.New[int]()
		results, err := s.Run(l)
		require.NoError(t, err)
		require.Len(t, results, 7)

		assert.Equal(t, []int{10, 3}, l.Slice())

		set := results[3]
		assert.NoError(t, set.Err)
		assert.True(t, set.HasValue)
		assert.Equal(t, 1, set.Value)

		get := results[4]
		assert.ErrorIs(t, get.Err, list.ErrIndexOutOfBounds)
		assert.False(t, get.HasValue)
		assert.Equal(t, 3, get.Size)

		remove := results[5]
		assert.NoError(t, remove.Err)
		assert.Equal(t, 2, remove.Value)

		assert.Equal(t, 2, results[6].Size)
	})

	t.Run("failing add leaves list untouched", func(t *testing.T) {
		s := &Script{Ops: []Op{{Op: OpAdd, Index: 2, Value: 1}}}

		l := list.New[int]()
		results, err := s.Run(l)
		require.NoError(t, err)

		assert.ErrorIs(t, results[0].Err, list.ErrIndexOutOfBounds)
		assert.Equal(t, 0, results[0].Size)
	})

	t.Run("nil list", func(t *testing.T) {
		_, err := (&Script{}).Run(nil)
		assert.ErrorIs(t, err, ErrNilList)
	})
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "add(1, 2)", Op{Op: OpAdd, Index: 1, Value: 2}.String())
	assert.Equal(t, "remove(3)", Op{Op: OpRemove, Index: 3}.String())
	assert.Equal(t, "size()", Op{Op: OpSize}.String())
}
