package list

import "cmp"

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements in order.
func EqualFunc[T any, U any](a *ForwardList[T], b *ForwardList[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if !eq(x.value, y.value) {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}

// CompareFunc compares a and b lexicographically with cmp. A list that is a
// proper prefix of the other sorts first.
func CompareFunc[T any, U any](a *ForwardList[T], b *ForwardList[U], cmp func(T, U) int) int {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

func Equal[T comparable](a, b *ForwardList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *ForwardList[T]) bool {
	return !Equal(a, b)
}

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
// Elements are ordered by cmp.Compare, so a NaN sorts before every number
// and equals another NaN. Less and the other relations use < instead.
func Compare[T cmp.Ordered](a, b *ForwardList[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// Less reports whether a sorts lexicographically before b, comparing
// elements with <. Unordered elements such as NaN are neither less nor
// greater, and the walk moves on to the next pair.
func Less[T cmp.Ordered](a, b *ForwardList[T]) bool {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if x.value < y.value {
			return true
		}
		if y.value < x.value {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y != nil
}

func Greater[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Less(b, a)
}

func LessOrEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(a, b)
}
