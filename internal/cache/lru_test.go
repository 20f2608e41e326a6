package cache

import "testing"

func TestListPushFrontOrder(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if oldest, ok := l.Oldest(); !ok || oldest != 1 {
		t.Errorf("Oldest() = (%v, %v), want (1, true)", oldest, ok)
	}
}

func TestListMoveToFront(t *testing.T) {
	l := New[string]()
	a := l.PushFront("a")
	l.PushFront("b")
	l.PushFront("c")

	l.MoveToFront(a)
	if got, _ := l.Oldest(); got != "b" {
		t.Errorf("after MoveToFront(a), Oldest() = %q, want %q", got, "b")
	}
}

func TestListRemoveOldest(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(2)

	got, ok := l.RemoveOldest()
	if !ok || got != 1 {
		t.Fatalf("RemoveOldest() = (%v, %v), want (1, true)", got, ok)
	}
	if l.Len() != 1 {
		t.Errorf("Len() after RemoveOldest = %d, want 1", l.Len())
	}
	got, ok = l.RemoveOldest()
	if !ok || got != 2 {
		t.Fatalf("RemoveOldest() = (%v, %v), want (2, true)", got, ok)
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list returned ok=true")
	}
}

func TestListRemove(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	mid := l.PushFront(2)
	l.PushFront(3)

	l.Remove(mid)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	got, _ := l.RemoveOldest()
	if got != 1 {
		t.Errorf("RemoveOldest() = %d, want 1 (node 2 should have been unlinked)", got)
	}
}

func TestListEachTraversal(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	var order []int
	l.Each(func(k int) { order = append(order, k) })
	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("traversal = %v, want %v", order, want)
	}
	for i, k := range want {
		if order[i] != k {
			t.Errorf("traversal[%d] = %d, want %d", i, order[i], k)
		}
	}
}

func TestListClear(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(2)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if _, ok := l.Oldest(); ok {
		t.Error("Oldest() on cleared list returned ok=true")
	}
}
