package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeque(t *testing.T) {
	var d Deque[int]
	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	d.PushFront(0)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5}, d.Slice()); diff != "" {
		t.Fatalf("after pushes (-want +got):\n%s", diff)
	}

	d.Rotate(2)
	if diff := cmp.Diff([]int{4, 5, 0, 1, 2, 3}, d.Slice()); diff != "" {
		t.Errorf("Rotate(2) (-want +got):\n%s", diff)
	}
	d.Rotate(-3)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 0}, d.Slice()); diff != "" {
		t.Errorf("Rotate(-3) (-want +got):\n%s", diff)
	}

	if v, ok := d.PopBack(); !ok || v != 0 {
		t.Errorf("PopBack = %v, %v; want 0, true", v, ok)
	}
	if v, ok := d.PopFront(); !ok || v != 1 {
		t.Errorf("PopFront = %v, %v; want 1, true", v, ok)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5}, d.Slice()); diff != "" {
		t.Errorf("after pops (-want +got):\n%s", diff)
	}
	if d.Len() != 4 {
		t.Errorf("Len = %d; want 4", d.Len())
	}
	for d.Len() > 0 {
		d.PopFront()
	}
	if _, ok := d.PopBack(); ok {
		t.Error("PopBack on empty deque succeeded")
	}
}

func TestDequeWrapsAround(t *testing.T) {
	d := NewDeque[int](4)
	var want []int
	// Interleave pushes and pops so head walks around the ring several
	// times while it grows.
	for i := 0; i < 100; i++ {
		d.PushBack(i)
		want = append(want, i)
		if i%3 == 0 {
			d.PopFront()
			want = want[1:]
		}
	}
	if diff := cmp.Diff(want, d.Slice()); diff != "" {
		t.Errorf("Slice (-want +got):\n%s", diff)
	}
}

func TestDequeRotateEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rotate on empty deque did not panic")
		}
	}()
	var d Deque[int]
	d.Rotate(1)
}

func TestPQ(t *testing.T) {
	q := MinQueue[string]()
	for i, v := range []string{"c", "a", "d", "b"} {
		q.PushValue(v, []int{3, 1, 4, 2}[i])
	}
	if got := q.Peek().V; got != "a" {
		t.Errorf("Peek = %q; want \"a\"", got)
	}
	var got []string
	for q.Len() > 0 {
		got = append(got, q.Pop().V)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("MinQueue order (-want +got):\n%s", diff)
	}
}

func TestStack(t *testing.T) {
	var s Stack[byte]
	for _, b := range []byte("abc") {
		s.Push(b)
	}
	if v, _ := s.Peek(); v != 'c' {
		t.Errorf("Peek = %q; want 'c'", v)
	}
	var got []byte
	for {
		b, ok := s.Pop()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "cba" {
		t.Errorf("popped %q; want \"cba\"", got)
	}
	s.Push('x')
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d", s.Len())
	}
}
