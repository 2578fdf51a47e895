package aoc

import (
	"container/heap"
	"fmt"
	"math/bits"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// Reset empties the stack, keeping its storage.
func (s *Stack[T]) Reset() {
	s.s = s.s[:0]
}

type PQI[T any] struct {
	V  T
	P  int
	ix int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

// PushValue pushes v with priority p.
func (pq *PQ[T]) PushValue(v T, p int) {
	pq.Push(&PQI[T]{V: v, P: p})
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q []*PQI[T]
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	return pq.q[i].P < pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

// Deque is a double-ended queue on a power-of-two ring buffer. Pushes and
// pops at either end are amortized O(1) and allocate only when the ring
// grows.
type Deque[T any] struct {
	buf  []T
	head int // index of the front element
	n    int
}

// NewDeque returns a deque with room for at least capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{buf: make([]T, ceilPow2(capacity))}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func (d *Deque[T]) Len() int { return d.n }

func (d *Deque[T]) mask() int { return len(d.buf) - 1 }

func (d *Deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	buf := make([]T, ceilPow2(2*len(d.buf)))
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)&d.mask()]
	}
	d.buf = buf
	d.head = 0
}

func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.n)&d.mask()] = v
	d.n++
}

func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1) & d.mask()
	d.buf[d.head] = v
	d.n++
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	d.n--
	i := (d.head + d.n) & d.mask()
	v := d.buf[i]
	d.buf[i] = zero
	return v, true
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) & d.mask()
	d.n--
	return v, true
}

// Rotate moves k elements from the back to the front, or -k elements from
// the front to the back when k is negative. It takes O(|k|) and panics on
// an empty deque.
func (d *Deque[T]) Rotate(k int) {
	if k != 0 && d.n == 0 {
		panic("aoc: Rotate of empty Deque")
	}
	for ; k > 0; k-- {
		v, _ := d.PopBack()
		d.PushFront(v)
	}
	for ; k < 0; k++ {
		v, _ := d.PopFront()
		d.PushBack(v)
	}
}

// Slice returns the elements front to back.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := range out {
		out[i] = d.buf[(d.head+i)&d.mask()]
	}
	return out
}
