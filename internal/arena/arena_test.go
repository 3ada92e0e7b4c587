package arena

import "testing"

type node struct {
	id   int
	name string
}

func TestAllocReturnsZeroedValues(t *testing.T) {
	a := New[node](4)

	n := a.Alloc()
	if n == nil {
		t.Fatal("Alloc returned nil")
	}
	if n.id != 0 || n.name != "" {
		t.Errorf("Alloc returned non-zero value: %+v", *n)
	}
	if a.Allocs() != 1 {
		t.Errorf("Allocs() = %d, want 1", a.Allocs())
	}
}

func TestPointersStableAcrossChunkGrowth(t *testing.T) {
	a := New[node](2)

	var ptrs []*node
	for i := 0; i < 10; i++ {
		n := a.Alloc()
		n.id = i
		ptrs = append(ptrs, n)
	}

	// Values handed out earlier must not have moved or been clobbered
	// by later chunk growth.
	for i, p := range ptrs {
		if p.id != i {
			t.Errorf("ptrs[%d].id = %d, want %d", i, p.id, i)
		}
	}
	if a.Chunks() < 5 {
		t.Errorf("Chunks() = %d, want at least 5 with chunk size 2", a.Chunks())
	}
}

func TestAllocSlice(t *testing.T) {
	a := New[int](8)

	s := a.AllocSlice(3)
	if len(s) != 3 || cap(s) != 3 {
		t.Fatalf("AllocSlice(3): len %d cap %d, want 3/3", len(s), cap(s))
	}
	for i := range s {
		s[i] = i + 1
	}

	// A following allocation must not overlap the slice.
	n := a.Alloc()
	*n = 99
	if s[2] != 3 {
		t.Errorf("slice clobbered by later Alloc: %v", s)
	}

	if a.AllocSlice(0) != nil {
		t.Error("AllocSlice(0) should be nil")
	}
}

func TestAllocSliceLargerThanChunk(t *testing.T) {
	a := New[int](4)

	s := a.AllocSlice(16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
	for i := range s {
		s[i] = i
	}
	for i := range s {
		if s[i] != i {
			t.Fatalf("slice not contiguous at %d", i)
		}
	}
}

func TestDefaultChunkSize(t *testing.T) {
	a := New[int](0)
	a.Alloc()
	if a.Chunks() != 1 {
		t.Errorf("Chunks() = %d, want 1", a.Chunks())
	}
}

func TestReset(t *testing.T) {
	a := New[node](4)
	for i := 0; i < 9; i++ {
		a.Alloc()
	}

	a.Reset()
	if a.Allocs() != 0 || a.Chunks() != 0 {
		t.Errorf("after Reset: allocs %d chunks %d, want 0/0", a.Allocs(), a.Chunks())
	}

	// The arena is reusable after a bulk release.
	n := a.Alloc()
	if n == nil || a.Allocs() != 1 {
		t.Error("arena not reusable after Reset")
	}
}
