package cache

import "testing"

func TestCloneIDs(t *testing.T) {
	src := []int{3, 1, 2}
	dst := cloneIDs(src)

	dst[0] = 99
	if src[0] != 3 {
		t.Error("cloneIDs should not share the backing array")
	}

	empty := cloneIDs(nil)
	if empty == nil || len(empty) != 0 {
		t.Errorf("cloneIDs(nil) = %#v, want empty non-nil slice", empty)
	}
}
