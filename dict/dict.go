// Package dict implements a string-keyed hash table with chained
// buckets.
//
// The bucket table is a dsgo.Vector of chain heads, addressed across its
// full capacity. The bucket count is fixed at construction; growing load
// lengthens the chains rather than rehashing, so a dictionary performs
// best when sized near its expected population. Values can carry a
// destructor, which runs on overwrite, delete, clear and destroy.
//
// Dictionaries are not safe for concurrent use.
package dict

import (
	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/internal/diag"
)

// FNV-1a, 64 bit.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func fnv1a(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

type entry[V any] struct {
	key  string
	val  V
	next *entry[V]
}

// Dict is a string-keyed hash table of V.
type Dict[V any] struct {
	buckets *dsgo.Vector[*entry[V]]
	count   int
	gc      dsgo.Destructor[V]
	hash    func(string) uint64
}

// Option is a configuration option for New.
type Option[V any] func(*Dict[V])

// WithDestructor sets the destructor applied to values as they leave
// the dictionary. It is fixed for the dictionary's lifetime.
func WithDestructor[V any](gc dsgo.Destructor[V]) Option[V] {
	return func(d *Dict[V]) {
		d.gc = gc
	}
}

// WithHash replaces the default FNV-1a hash function.
func WithHash[V any](hash func(string) uint64) Option[V] {
	return func(d *Dict[V]) {
		if hash != nil {
			d.hash = hash
		}
	}
}

// New creates a dictionary with the given fixed bucket count.
func New[V any](buckets int, opts ...Option[V]) (*Dict[V], error) {
	table, err := dsgo.New[*entry[V]](buckets)
	if err != nil {
		return nil, err
	}

	d := &Dict[V]{
		buckets: table,
		hash:    fnv1a,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

func (d *Dict[V]) valid() bool {
	return d != nil && d.buckets.Valid()
}

// Valid reports whether the handle refers to a live dictionary.
func (d *Dict[V]) Valid() bool {
	return d.valid()
}

// Len returns the number of stored keys.
func (d *Dict[V]) Len() int {
	if !d.valid() {
		return 0
	}
	return d.count
}

// Buckets returns the fixed bucket count.
func (d *Dict[V]) Buckets() int {
	if !d.valid() {
		return 0
	}
	return d.buckets.Cap()
}

func (d *Dict[V]) bucket(key string) int {
	return int(d.hash(key) % uint64(d.buckets.Cap()))
}

// Set stores a value under key. Overwriting an existing key applies the
// destructor to the old value first.
func (d *Dict[V]) Set(key string, val V) error {
	if !d.valid() {
		diag.Fail("buckets.Valid()")
		return dsgo.ErrInvalidHandle
	}

	i := d.bucket(key)
	for e := d.buckets.At(i); e != nil; e = e.next {
		if e.key == key {
			if d.gc != nil {
				d.gc(&e.val)
			}
			e.val = val
			return nil
		}
	}

	d.buckets.Set(i, &entry[V]{key: key, val: val, next: d.buckets.At(i)})
	d.count++

	return nil
}

// Get returns the value stored under key. The second return is false
// when the key is absent or the dictionary is destroyed.
func (d *Dict[V]) Get(key string) (V, bool) {
	if !d.valid() {
		var zero V
		return zero, false
	}

	for e := d.buckets.At(d.bucket(key)); e != nil; e = e.next {
		if e.key == key {
			return e.val, true
		}
	}

	var zero V
	return zero, false
}

// Delete removes key, applying the destructor to its value. It reports
// whether the key was present.
func (d *Dict[V]) Delete(key string) bool {
	if !d.valid() {
		return false
	}

	i := d.bucket(key)
	var prev *entry[V]
	for e := d.buckets.At(i); e != nil; e = e.next {
		if e.key != key {
			prev = e
			continue
		}

		if d.gc != nil {
			d.gc(&e.val)
		}
		if prev != nil {
			prev.next = e.next
		} else {
			d.buckets.Set(i, e.next)
		}
		d.count--
		return true
	}

	return false
}

// Each calls fn for every key/value pair. Iteration order follows the
// bucket layout and is unspecified.
func (d *Dict[V]) Each(fn func(key string, val V)) {
	if !d.valid() {
		return
	}

	for i := 0; i < d.buckets.Cap(); i++ {
		for e := d.buckets.At(i); e != nil; e = e.next {
			fn(e.key, e.val)
		}
	}
}

// Keys returns the stored keys in unspecified order.
func (d *Dict[V]) Keys() []string {
	if !d.valid() {
		return nil
	}

	keys := make([]string, 0, d.count)
	d.Each(func(key string, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// Clear removes every entry, applying the destructor per value. The
// dictionary stays usable afterwards.
func (d *Dict[V]) Clear() {
	if !d.valid() {
		return
	}

	for i := 0; i < d.buckets.Cap(); i++ {
		if d.gc != nil {
			for e := d.buckets.At(i); e != nil; e = e.next {
				d.gc(&e.val)
			}
		}
		d.buckets.Set(i, nil)
	}
	d.count = 0
}

// Destroy clears the dictionary, destructor included, and invalidates
// the handle. Further use, including a second Destroy, fails with
// dsgo.ErrInvalidHandle.
func (d *Dict[V]) Destroy() error {
	if !d.valid() {
		diag.Fail("buckets.Valid()")
		return dsgo.ErrInvalidHandle
	}

	d.Clear()
	d.count = 0

	return d.buckets.Destroy()
}
