package list

import "iter"

type node[T any] struct {
	value  T
	next   *node[T]
	anchor bool // the before-begin sentinel
}

// ForwardList is a singly linked list with a before-begin sentinel.
// The zero value is an empty list ready to use. Iterators hold the address
// of the sentinel, so a list must not be copied by value once in use; use
// Clone, Assign or Swap instead.
type ForwardList[T any] struct {
	head node[T]
	size int
}

func New[T any]() *ForwardList[T] {
	return &ForwardList[T]{head: node[T]{anchor: true}}
}

// Make builds a list holding values in the given order.
func Make[T any](values ...T) *ForwardList[T] {
	l := New[T]()
	tail := l.BeforeBegin()
	for _, v := range values {
		tail = l.InsertAfter(tail, v)
	}
	return l
}

func FromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := New[T]()
	l.appendAll(seq)
	return l
}

func (l *ForwardList[T]) appendAll(seq iter.Seq[T]) {
	tail := l.BeforeBegin()
	for v := range seq {
		tail = l.InsertAfter(tail, v)
	}
}

// Clone returns an independent copy with the same elements in the same order.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	return FromSeq(l.All())
}

// Assign makes l a copy of other. The copy is built aside and swapped in,
// so l is untouched unless the copy completes. Assigning a list to itself
// does nothing.
func (l *ForwardList[T]) Assign(other *ForwardList[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
}

// Swap exchanges the contents of l and other without touching any node.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *ForwardList[T]) {
	a.Swap(b)
}

// sentinel marks head as the anchor. The zero value list skips New, so
// every path that hands out the sentinel goes through here.
func (l *ForwardList[T]) sentinel() *node[T] {
	l.head.anchor = true
	return &l.head
}

func (l *ForwardList[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head.next}
}

func (l *ForwardList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position preceding the first element. It is the
// anchor for inserting or erasing at the front.
func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{node: l.sentinel()}
}

func (l *ForwardList[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{node: l.head.next}
}

func (l *ForwardList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *ForwardList[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{node: l.sentinel()}
}

// InsertAfter links a new node holding value right after pos and returns an
// iterator to it. No other iterator is invalidated.
func (l *ForwardList[T]) InsertAfter(pos Position[T], value T) Iterator[T] {
	cur := pos.at()
	require(cur != nil, "InsertAfter", "position is end")
	n := &node[T]{value: value, next: cur.next}
	cur.next = n
	l.size++
	return Iterator[T]{node: n}
}

// EraseAfter unlinks the node following pos and returns an iterator to the
// node that now follows pos, or End.
func (l *ForwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	cur := pos.at()
	require(cur != nil, "EraseAfter", "position is end")
	require(cur == nil || cur.next != nil, "EraseAfter", "no element after position")
	victim := cur.next
	cur.next = victim.next
	victim.next = nil
	l.size--
	return Iterator[T]{node: cur.next}
}

func (l *ForwardList[T]) PushFront(value T) {
	l.InsertAfter(l.BeforeBegin(), value)
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *ForwardList[T]) PopFront() {
	if l.head.next == nil {
		return
	}
	l.EraseAfter(l.BeforeBegin())
}

func (l *ForwardList[T]) Front() T {
	require(l.head.next != nil, "Front", "list is empty")
	return l.head.next.value
}

func (l *ForwardList[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

func (l *ForwardList[T]) GetSize() int {
	return l.size
}

func (l *ForwardList[T]) IsEmpty() bool {
	return l.size == 0
}

// All yields the elements front to back.
func (l *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *ForwardList[T]) ForEach(consumer Consumer[T]) {
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		if !consumer(i, n.value) {
			break
		}
		i++
	}
}

func (l *ForwardList[T]) Contains(expected Expected[T]) bool {
	res := false
	l.ForEach(func(idx int, val T) bool {
		if expected(val) {
			res = true
			return false
		}
		return true
	})
	return res
}

// Range returns the elements in [start, stop).
func (l *ForwardList[T]) Range(start int, stop int) []T {
	require(start >= 0 && start <= l.size, "Range", "`start` out of range")
	require(stop >= start && stop <= l.size, "Range", "`stop` out of range")

	slice := make([]T, 0, stop-start)
	i := 0
	for n := l.head.next; n != nil && i < stop; n = n.next {
		if i >= start {
			slice = append(slice, n.value)
		}
		i++
	}
	return slice
}

func (l *ForwardList[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
