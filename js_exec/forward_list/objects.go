package forward_list

import (
	"forwardlist/struct/list"
	"github.com/dop251/goja"
)

type jsList struct {
	m    *flModule
	list *list.ForwardList[goja.Value]
}

type jsIterator struct {
	m  *flModule
	it list.Iterator[goja.Value]
}

func (m *flModule) wrapList(l *list.ForwardList[goja.Value]) *goja.Object {
	h := &jsList{m: m, list: l}
	obj := m.runtime.NewObject()
	m.hide(obj, h)
	_ = obj.Set("pushFront", h.jsPushFront)
	_ = obj.Set("popFront", h.jsPopFront)
	_ = obj.Set("insertAfter", h.jsInsertAfter)
	_ = obj.Set("eraseAfter", h.jsEraseAfter)
	_ = obj.Set("clear", h.jsClear)
	_ = obj.Set("size", h.jsSize)
	_ = obj.Set("isEmpty", h.jsIsEmpty)
	_ = obj.Set("front", h.jsFront)
	_ = obj.Set("begin", h.jsBegin)
	_ = obj.Set("end", h.jsEnd)
	_ = obj.Set("beforeBegin", h.jsBeforeBegin)
	_ = obj.Set("toArray", h.jsToArray)
	_ = obj.Set("clone", h.jsClone)
	_ = obj.Set("assign", h.jsAssign)
	_ = obj.Set("swap", h.jsSwap)
	_ = obj.Set("contains", h.jsContains)
	_ = obj.Set("forEach", h.jsForEach)
	return obj
}

func (m *flModule) wrapIterator(it list.Iterator[goja.Value]) *goja.Object {
	h := &jsIterator{m: m, it: it}
	obj := m.runtime.NewObject()
	m.hide(obj, h)
	_ = obj.Set("value", h.jsValue)
	_ = obj.Set("set", h.jsSet)
	_ = obj.Set("next", h.jsNext)
	_ = obj.Set("equals", h.jsEquals)
	_ = obj.Set("isEnd", h.jsIsEnd)
	return obj
}

/***************List************************/

func (l *jsList) jsPushFront(call goja.FunctionCall) goja.Value {
	l.list.PushFront(call.Argument(0))
	return goja.Undefined()
}

func (l *jsList) jsPopFront(goja.FunctionCall) goja.Value {
	l.list.PopFront()
	return goja.Undefined()
}

// jsInsertAfter
// it:iterator; value:any
// returns the iterator of the inserted value.
func (l *jsList) jsInsertAfter(call goja.FunctionCall) goja.Value {
	defer l.m.guard()
	pos := l.m.iteratorArg(call, 0)
	l.requireOwned(pos.it, "InsertAfter")
	return l.m.wrapIterator(l.list.InsertAfter(pos.it, call.Argument(1)))
}

// jsEraseAfter
// it:iterator
// returns the iterator following it after the erase.
func (l *jsList) jsEraseAfter(call goja.FunctionCall) goja.Value {
	defer l.m.guard()
	pos := l.m.iteratorArg(call, 0)
	l.requireOwned(pos.it, "EraseAfter")
	return l.m.wrapIterator(l.list.EraseAfter(pos.it))
}

// requireOwned rejects a position that is not reachable from this list's
// before-begin: one taken from another list, or one whose node was erased.
// End is left to the list's own checks. The walk makes script-side
// insert/erase O(n).
func (l *jsList) requireOwned(pos list.Iterator[goja.Value], op string) {
	end := l.list.End()
	if pos.Equal(end) {
		return
	}
	for cur := l.list.BeforeBegin(); !cur.Equal(end); cur = cur.Next() {
		if cur.Equal(pos) {
			return
		}
	}
	panic(l.m.runtime.NewGoError(&list.ContractError{Op: op, Reason: "position is not in this list"}))
}

func (l *jsList) jsClear(goja.FunctionCall) goja.Value {
	l.list.Clear()
	return goja.Undefined()
}

func (l *jsList) jsSize(goja.FunctionCall) goja.Value {
	return l.m.runtime.ToValue(l.list.GetSize())
}

func (l *jsList) jsIsEmpty(goja.FunctionCall) goja.Value {
	return l.m.runtime.ToValue(l.list.IsEmpty())
}

func (l *jsList) jsFront(goja.FunctionCall) goja.Value {
	defer l.m.guard()
	return l.list.Front()
}

func (l *jsList) jsBegin(goja.FunctionCall) goja.Value {
	return l.m.wrapIterator(l.list.Begin())
}

func (l *jsList) jsEnd(goja.FunctionCall) goja.Value {
	return l.m.wrapIterator(l.list.End())
}

func (l *jsList) jsBeforeBegin(goja.FunctionCall) goja.Value {
	return l.m.wrapIterator(l.list.BeforeBegin())
}

func (l *jsList) jsToArray(goja.FunctionCall) goja.Value {
	values := l.list.ToSlice()
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return l.m.runtime.NewArray(items...)
}

func (l *jsList) jsClone(goja.FunctionCall) goja.Value {
	return l.m.wrapList(l.list.Clone())
}

func (l *jsList) jsAssign(call goja.FunctionCall) goja.Value {
	other := l.m.listArg(call, 0)
	l.list.Assign(other.list)
	return goja.Undefined()
}

func (l *jsList) jsSwap(call goja.FunctionCall) goja.Value {
	other := l.m.listArg(call, 0)
	l.list.Swap(other.list)
	return goja.Undefined()
}

func (l *jsList) jsContains(call goja.FunctionCall) goja.Value {
	want := call.Argument(0)
	return l.m.runtime.ToValue(l.list.Contains(func(v goja.Value) bool {
		return equalValues(v, want)
	}))
}

// jsForEach
// fn:(value, index) => boolean|undefined; returning false stops the walk.
func (l *jsList) jsForEach(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if !ok {
		panic(l.m.runtime.NewTypeError("forEach expects a function"))
	}
	stop := l.m.runtime.ToValue(false)
	l.list.ForEach(func(idx int, val goja.Value) bool {
		ret, err := fn(goja.Undefined(), val, l.m.runtime.ToValue(idx))
		if err != nil {
			panic(err)
		}
		return !ret.StrictEquals(stop)
	})
	return goja.Undefined()
}

/******************Iterator***********************/

func (i *jsIterator) jsValue(goja.FunctionCall) goja.Value {
	defer i.m.guard()
	return i.it.Value()
}

func (i *jsIterator) jsSet(call goja.FunctionCall) goja.Value {
	defer i.m.guard()
	i.it.Set(call.Argument(0))
	return goja.Undefined()
}

// jsNext returns a new iterator; the receiver is left where it was.
func (i *jsIterator) jsNext(goja.FunctionCall) goja.Value {
	defer i.m.guard()
	return i.m.wrapIterator(i.it.Next())
}

func (i *jsIterator) jsEquals(call goja.FunctionCall) goja.Value {
	other := i.m.iteratorArg(call, 0)
	return i.m.runtime.ToValue(i.it.Equal(other.it))
}

func (i *jsIterator) jsIsEnd(goja.FunctionCall) goja.Value {
	return i.m.runtime.ToValue(i.it.Equal(list.Iterator[goja.Value]{}))
}
