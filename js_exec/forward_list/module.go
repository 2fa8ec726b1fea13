package forward_list

import (
	"cmp"
	"forwardlist/struct/list"
	"github.com/dop251/goja"
	"math"
	"strings"
)

const ModuleName = "forward_list"

// handleKey is a hidden property that ties a JS object to its Go value.
const handleKey = "__forward_list_handle"

type flModule struct {
	runtime *goja.Runtime
}

// Require exports:
//
//	create(...values) list
//	equal(a, b) / less / greater / lessOrEqual / greaterOrEqual
//	compare(a, b) number
//	swap(a, b)
func Require(runtime *goja.Runtime, module *goja.Object) {
	m := &flModule{runtime: runtime}
	obj := module.Get("exports").(*goja.Object)
	_ = obj.Set("create", m.jsCreate)
	_ = obj.Set("equal", m.relation(func(a, b *list.ForwardList[goja.Value]) bool {
		return list.EqualFunc(a, b, equalValues)
	}))
	_ = obj.Set("less", m.relation(func(a, b *list.ForwardList[goja.Value]) bool {
		return list.CompareFunc(a, b, m.compareValues) < 0
	}))
	_ = obj.Set("greater", m.relation(func(a, b *list.ForwardList[goja.Value]) bool {
		return list.CompareFunc(b, a, m.compareValues) < 0
	}))
	_ = obj.Set("lessOrEqual", m.relation(func(a, b *list.ForwardList[goja.Value]) bool {
		return list.CompareFunc(b, a, m.compareValues) >= 0
	}))
	_ = obj.Set("greaterOrEqual", m.relation(func(a, b *list.ForwardList[goja.Value]) bool {
		return list.CompareFunc(a, b, m.compareValues) >= 0
	}))
	_ = obj.Set("compare", m.jsCompare)
	_ = obj.Set("swap", m.jsSwap)
}

// guard turns a contract violation raised by the list into a thrown JS error.
func (m *flModule) guard() {
	if r := recover(); r != nil {
		if ce, ok := r.(*list.ContractError); ok {
			panic(m.runtime.NewGoError(ce))
		}
		panic(r)
	}
}

func (m *flModule) jsCreate(call goja.FunctionCall) goja.Value {
	l := list.Make(call.Arguments...)
	return m.wrapList(l)
}

func (m *flModule) jsCompare(call goja.FunctionCall) goja.Value {
	a, b := m.listArg(call, 0), m.listArg(call, 1)
	return m.runtime.ToValue(list.CompareFunc(a.list, b.list, m.compareValues))
}

func (m *flModule) jsSwap(call goja.FunctionCall) goja.Value {
	a, b := m.listArg(call, 0), m.listArg(call, 1)
	list.Swap(a.list, b.list)
	return goja.Undefined()
}

func (m *flModule) relation(fn func(a, b *list.ForwardList[goja.Value]) bool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		a, b := m.listArg(call, 0), m.listArg(call, 1)
		return m.runtime.ToValue(fn(a.list, b.list))
	}
}

func (m *flModule) handle(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	h := obj.Get(handleKey)
	if h == nil {
		return nil
	}
	return h.Export()
}

func (m *flModule) listArg(call goja.FunctionCall, i int) *jsList {
	if l, ok := m.handle(call.Argument(i)).(*jsList); ok {
		return l
	}
	panic(m.runtime.NewTypeError("argument %d is not a forward list", i))
}

func (m *flModule) iteratorArg(call goja.FunctionCall, i int) *jsIterator {
	if it, ok := m.handle(call.Argument(i)).(*jsIterator); ok {
		return it
	}
	panic(m.runtime.NewTypeError("argument %d is not a forward list iterator", i))
}

func (m *flModule) hide(obj *goja.Object, h any) {
	_ = obj.DefineDataProperty(handleKey, m.runtime.ToValue(h), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
}

/***************Element Semantics************************/

func equalValues(a, b goja.Value) bool {
	return a.StrictEquals(b)
}

// Element ranks: values of different kinds order by kind.
const (
	rankUndefined = iota
	rankNull
	rankBoolean
	rankNumber
	rankString
)

// compareValues is a total order over undefined, null, booleans, numbers and
// strings that returns 0 exactly when the values are strictly equal. Objects
// and NaN have no such order and are rejected with a TypeError.
func (m *flModule) compareValues(a, b goja.Value) int {
	ra, rb := m.rank(a), m.rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankBoolean:
		x, y := a.ToBoolean(), b.ToBoolean()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case rankNumber:
		x, _ := number(a)
		y, _ := number(b)
		return cmp.Compare(x, y)
	case rankString:
		return strings.Compare(a.String(), b.String())
	}
	return 0
}

func (m *flModule) rank(v goja.Value) int {
	switch {
	case v == nil || goja.IsUndefined(v):
		return rankUndefined
	case goja.IsNull(v):
		return rankNull
	}
	switch v.Export().(type) {
	case bool:
		return rankBoolean
	case string:
		return rankString
	}
	if n, ok := number(v); ok {
		if math.IsNaN(n) {
			panic(m.runtime.NewTypeError("NaN cannot be ordered"))
		}
		return rankNumber
	}
	panic(m.runtime.NewTypeError("cannot order %s: only undefined, null, booleans, numbers and strings are ordered", v.String()))
}

func number(v goja.Value) (float64, bool) {
	switch n := v.Export().(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

/******************End***********************************/
