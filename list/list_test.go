package list_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dsgo/list"
)

func TestPushPop(t *testing.T) {
	l := list.New[int]()

	for i := 1; i <= 3; i++ {
		l.Push(i)
	}

	assert.Equal(t, 3, l.Len())

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	l.Pop()
	back, ok = l.Back()
	require.True(t, ok)
	assert.Equal(t, 2, back)
	assert.Equal(t, 2, l.Len())
}

func TestUnshiftShift(t *testing.T) {
	l := list.New[string]()

	l.Unshift("b")
	l.Unshift("a")
	l.Push("c")

	assert.Equal(t, []string{"a", "b", "c"}, l.Values())

	l.Shift()
	assert.Equal(t, []string{"b", "c"}, l.Values())

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, "b", front)
}

func TestEmptyOps(t *testing.T) {
	l := list.New[int]()

	// No-ops on an empty list.
	l.Pop()
	l.Shift()

	assert.Equal(t, 0, l.Len())

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	assert.Empty(t, l.Values())
}

func TestSingleElementLinks(t *testing.T) {
	l := list.New[int]()

	// Through the single-element state in both directions.
	l.Push(1)
	l.Pop()
	assert.Equal(t, 0, l.Len())

	l.Unshift(2)
	l.Shift()
	assert.Equal(t, 0, l.Len())

	// List must remain fully usable.
	l.Push(3)
	l.Push(4)
	assert.Equal(t, []int{3, 4}, l.Values())
}

func TestDestructor(t *testing.T) {
	var dropped []string
	l := list.NewWithDestructor[string](func(s *string) {
		dropped = append(dropped, *s)
	})

	for _, s := range []string{"a", "b", "c", "d"} {
		l.Push(s)
	}

	l.Pop()   // d
	l.Shift() // a

	assert.Equal(t, []string{"d", "a"}, dropped)
	assert.Equal(t, 2, l.Len())
}

func TestClear(t *testing.T) {
	var dropped []int
	l := list.NewWithDestructor[int](func(e *int) {
		dropped = append(dropped, *e)
	})

	for i := 1; i <= 4; i++ {
		l.Push(i)
	}

	l.Clear()

	// Clear pops from the back.
	assert.Equal(t, []int{4, 3, 2, 1}, dropped)
	assert.Equal(t, 0, l.Len())

	// Still usable.
	l.Push(9)
	assert.Equal(t, 1, l.Len())
}

func TestEach(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 4; i++ {
		l.Push(i * 10)
	}

	var forward []int
	l.Each(func(i, e int) {
		forward = append(forward, i+e)
	})
	assert.Equal(t, []int{0, 11, 22, 33}, forward)

	var backward []int
	l.EachReverse(func(i, e int) {
		backward = append(backward, i+e)
	})
	assert.Equal(t, []int{33, 22, 11, 0}, backward)
}

func TestJSON(t *testing.T) {
	l := list.New[int]()
	for _, n := range []int{1, 2, 3} {
		l.Push(n)
	}

	data, err := l.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(data))

	restored := list.New[int]()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, []int{1, 2, 3}, restored.Values())
}

func TestFromJSONClearsExisting(t *testing.T) {
	var dropped []int
	l := list.NewWithDestructor[int](func(e *int) {
		dropped = append(dropped, *e)
	})
	l.Push(8)
	l.Push(9)

	require.NoError(t, l.FromJSON([]byte(`[1,2]`)))

	assert.Equal(t, []int{9, 8}, dropped)
	assert.Equal(t, []int{1, 2}, l.Values())
}

func TestFromJSONInvalid(t *testing.T) {
	l := list.New[int]()
	l.Push(5)

	require.Error(t, l.FromJSON([]byte(`"nope"`)))

	// Contents are untouched when decoding fails.
	assert.Equal(t, []int{5}, l.Values())
}
