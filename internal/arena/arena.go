// Package arena provides typed, chunked bump allocation for AST nodes.
//
// Every node built for one compilation unit is allocated from arenas
// owned by that unit's AST context. Individual values are never freed;
// the whole population is released together when the owning context is
// torn down. This replaces scattered &T{} heap allocations with
// contiguous chunks, and it is the only sanctioned way to bring a
// declaration node into existence.
package arena

// DefaultChunkSize is the per-chunk element count used when a caller
// does not specify one.
const DefaultChunkSize = 64

// Arena bump-allocates values of a single type T in fixed-size chunks.
// Pointers returned by Alloc and slices returned by AllocSlice remain
// valid until Reset; the arena never moves a value once handed out.
//
// An Arena is not safe for concurrent use. Tree construction is
// single-threaded; see the ast package for the publication rules that
// make post-construction concurrent reads safe.
type Arena[T any] struct {
	chunkSize int
	chunks    [][]T
	allocs    int
}

// New creates an arena whose chunks hold chunkSize elements each.
// A chunkSize below 1 falls back to DefaultChunkSize.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc returns a pointer to a zeroed T that lives until Reset.
func (a *Arena[T]) Alloc() *T {
	s := a.grow(1)
	a.allocs++
	return &s[0]
}

// AllocSlice returns a zeroed slice of n contiguous elements backed by
// arena memory. The returned slice has capacity exactly n, so appending
// to it cannot clobber neighbouring allocations. n of zero yields nil.
func (a *Arena[T]) AllocSlice(n int) []T {
	if n == 0 {
		return nil
	}
	s := a.grow(n)
	a.allocs += n
	return s
}

// grow carves n contiguous elements out of the current chunk, opening a
// new chunk when the current one cannot hold them. Requests larger than
// the chunk size get a dedicated chunk.
func (a *Arena[T]) grow(n int) []T {
	if last := len(a.chunks) - 1; last >= 0 {
		c := a.chunks[last]
		if len(c)+n <= cap(c) {
			c = c[: len(c)+n : cap(c)]
			a.chunks[last] = c
			return c[len(c)-n : len(c) : len(c)]
		}
	}

	size := a.chunkSize
	if n > size {
		size = n
	}
	c := make([]T, n, size)
	a.chunks = append(a.chunks, c)
	return c[0:n:n]
}

// Allocs reports the number of elements handed out since the last Reset.
func (a *Arena[T]) Allocs() int {
	return a.allocs
}

// Chunks reports how many backing chunks the arena currently holds.
func (a *Arena[T]) Chunks() int {
	return len(a.chunks)
}

// Reset releases every allocation at once. All pointers and slices
// previously handed out become invalid; using them afterwards is a
// caller bug the arena cannot detect.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.allocs = 0
}
