// Package list implements a doubly linked list with destructor support.
//
// The list shares the destructor vocabulary of the vector: a destructor
// attached at construction runs on every element as it leaves the list.
// Being node-based, the list needs no capacity policy and no allocator;
// removal simply unlinks nodes and the garbage collector reclaims them.
//
// Lists are not safe for concurrent use.
package list

import (
	"github.com/hupe1980/dsgo"
)

type node[T any] struct {
	data T
	next *node[T]
	prev *node[T]
}

// List is a doubly linked list of T.
type List[T any] struct {
	first *node[T]
	last  *node[T]
	count int
	gc    dsgo.Destructor[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithDestructor creates an empty list whose elements are finalized
// by gc as they are removed. The destructor is fixed for the list's
// lifetime.
func NewWithDestructor[T any](gc dsgo.Destructor[T]) *List[T] {
	return &List[T]{gc: gc}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// Front returns the first element. The second return is false when the
// list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.first == nil {
		var zero T
		return zero, false
	}
	return l.first.data, true
}

// Back returns the last element. The second return is false when the
// list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.last == nil {
		var zero T
		return zero, false
	}
	return l.last.data, true
}

// Push appends an element at the back.
func (l *List[T]) Push(e T) {
	n := &node[T]{data: e, prev: l.last}
	if l.last != nil {
		l.last.next = n
	} else {
		l.first = n
	}
	l.last = n
	l.count++
}

// Pop removes the element at the back, applying the destructor first.
// Popping an empty list is a no-op.
func (l *List[T]) Pop() {
	if l.last == nil {
		return
	}

	if l.gc != nil {
		l.gc(&l.last.data)
	}

	l.last = l.last.prev
	if l.last != nil {
		l.last.next = nil
	} else {
		l.first = nil
	}
	l.count--
}

// Unshift prepends an element at the front.
func (l *List[T]) Unshift(e T) {
	n := &node[T]{data: e, next: l.first}
	if l.first != nil {
		l.first.prev = n
	} else {
		l.last = n
	}
	l.first = n
	l.count++
}

// Shift removes the element at the front, applying the destructor
// first. Shifting an empty list is a no-op.
func (l *List[T]) Shift() {
	if l.first == nil {
		return
	}

	if l.gc != nil {
		l.gc(&l.first.data)
	}

	l.first = l.first.next
	if l.first != nil {
		l.first.prev = nil
	} else {
		l.last = nil
	}
	l.count--
}

// Each calls fn for every element from front to back.
func (l *List[T]) Each(fn func(i int, e T)) {
	i := 0
	for n := l.first; n != nil; n = n.next {
		fn(i, n.data)
		i++
	}
}

// EachReverse calls fn for every element from back to front. The index
// still counts from the front.
func (l *List[T]) EachReverse(fn func(i int, e T)) {
	i := l.count - 1
	for n := l.last; n != nil; n = n.prev {
		fn(i, n.data)
		i--
	}
}

// Values returns the elements as a fresh slice, front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.first; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

// Clear pops every element from the back, running the destructor per
// element. The list stays usable afterwards.
func (l *List[T]) Clear() {
	for l.count > 0 {
		l.Pop()
	}
}
