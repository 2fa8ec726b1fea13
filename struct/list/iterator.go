package list

// Position is a place in a ForwardList. Iterator and ConstIterator are the
// only implementations.
type Position[T any] interface {
	at() *node[T]
}

// Iterator is a mutable position. It does not own its node; once the node is
// erased or the list cleared the iterator dangles.
type Iterator[T any] struct {
	node *node[T]
}

// ConstIterator is a read-only position.
type ConstIterator[T any] struct {
	node *node[T]
}

func (it Iterator[T]) at() *node[T]      { return it.node }
func (it ConstIterator[T]) at() *node[T] { return it.node }

func (it Iterator[T]) Next() Iterator[T] {
	require(it.node != nil, "Next", "advance past end")
	return Iterator[T]{node: it.node.next}
}

func (it Iterator[T]) Value() T {
	requireDereferenceable(it.node, "Value")
	return it.node.value
}

func (it Iterator[T]) Pointer() *T {
	requireDereferenceable(it.node, "Pointer")
	return &it.node.value
}

func (it Iterator[T]) Set(value T) {
	requireDereferenceable(it.node, "Set")
	it.node.value = value
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.node == other.at()
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{node: it.node}
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	require(it.node != nil, "Next", "advance past end")
	return ConstIterator[T]{node: it.node.next}
}

func (it ConstIterator[T]) Value() T {
	requireDereferenceable(it.node, "Value")
	return it.node.value
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.node == other.at()
}

func requireDereferenceable[T any](n *node[T], op string) {
	require(n != nil, op, "dereference of end")
	require(n == nil || !n.anchor, op, "dereference of before-begin")
}
