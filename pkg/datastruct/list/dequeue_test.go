package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LinkedDequeue(t *testing.T) {
	var deque Dequeue = NewLinked()
	_, err := deque.RemoveFirst()
	assert.ErrorIs(t, err, ErrorEmpty)
	_, err = deque.RemoveLast()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = deque.GetFirst()
	assert.ErrorIs(t, err, ErrorEmpty)
	_, err = deque.GetLast()
	assert.ErrorIs(t, err, ErrorEmpty)

	for i := 0; i < 10; i++ {
		require.NoError(t, deque.AddLast(i))
	}
	require.NoError(t, deque.AddFirst(-1))
	assert.Equal(t, 11, deque.Len())

	first, err := deque.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, -1, first)
	last, err := deque.GetLast()
	require.NoError(t, err)
	assert.Equal(t, 9, last)

	for i := 0; i < deque.Len(); i++ {
		v, err := deque.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i-1, v)
	}
	_, err = deque.Get(-1)
	assert.ErrorIs(t, err, ErrorOutIndex)
	_, err = deque.Get(11)
	assert.ErrorIs(t, err, ErrorOutIndex)

	v, err := deque.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	v, err = deque.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 9, deque.Len())

	var seen []interface{}
	deque.ForEach(func(value interface{}, index int) bool {
		seen = append(seen, value)
		return index < 2
	})
	assert.Equal(t, []interface{}{0, 1, 2}, seen)
}
