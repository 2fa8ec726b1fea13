package list

import "iter"

// Expected reports whether val is the element being looked for.
type Expected[T any] func(val T) bool

// Consumer receives elements front to back. Returning false stops the walk.
type Consumer[T any] func(idx int, val T) bool

// Sequence is the read side of a forward-only container.
type Sequence[T any] interface {
	GetSize() int
	IsEmpty() bool
	ForEach(consumer Consumer[T])
	Contains(expected Expected[T]) bool
	Range(start int, stop int) []T
	ToSlice() []T
	All() iter.Seq[T]
}

var _ Sequence[int] = (*ForwardList[int])(nil)
