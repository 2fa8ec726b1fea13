package list

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b []int
		want bool
	}{
		{[]int{1, 2, 3}, []int{1, 2, 3}, true},
		{[]int{1, 2}, []int{1, 2, 3}, false},
		{[]int{1, 2, 3}, []int{1, 2}, false},
		{nil, nil, true},
		{[]int{1, 2, 4}, []int{1, 2, 3}, false},
	}
	for _, tt := range tests {
		a, b := Make(tt.a...), Make(tt.b...)
		if got := Equal(a, b); got != tt.want {
			t.Errorf("Equal(%v, %v) = %v", tt.a, tt.b, got)
		}
		if got := Equal(b, a); got != tt.want {
			t.Errorf("Equal(%v, %v) = %v, not symmetric", tt.b, tt.a, got)
		}
		if NotEqual(a, b) == tt.want {
			t.Errorf("NotEqual(%v, %v) disagrees with Equal", tt.a, tt.b)
		}
		if !Equal(a, a) {
			t.Errorf("Equal should be reflexive for %v", tt.a)
		}
	}
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 3}, []int{1, 2, 9}, 1},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
		{nil, []int{0}, -1},
		{nil, nil, 0},
		{[]int{2}, []int{10}, -1},
	}
	for _, tt := range tests {
		a, b := Make(tt.a...), Make(tt.b...)
		if got := Compare(a, b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		lt, eq, gt := Less(a, b), Equal(a, b), Greater(a, b)
		n := 0
		for _, v := range []bool{lt, eq, gt} {
			if v {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%v vs %v: exactly one of <, ==, > should hold (%v %v %v)", tt.a, tt.b, lt, eq, gt)
		}
		if LessOrEqual(a, b) != (lt || eq) {
			t.Errorf("LessOrEqual(%v, %v) inconsistent", tt.a, tt.b)
		}
		if GreaterOrEqual(a, b) != (gt || eq) {
			t.Errorf("GreaterOrEqual(%v, %v) inconsistent", tt.a, tt.b)
		}
		if Less(a, b) != Greater(b, a) {
			t.Errorf("Less(%v, %v) != Greater(%v, %v)", tt.a, tt.b, tt.b, tt.a)
		}
	}
}

func TestEqualFunc_MixedTypes(t *testing.T) {
	a := Make(1, 2, 3)
	b := Make("1", "2", "3")
	same := EqualFunc(a, b, func(x int, y string) bool { return string(rune('0'+x)) == y })
	if !same {
		t.Fail()
	}
}

func TestCompareFunc(t *testing.T) {
	byLen := func(x, y string) int { return len(x) - len(y) }
	a := Make("aa", "b")
	b := Make("zz", "cc")
	if CompareFunc(a, b, byLen) >= 0 {
		t.Errorf("expected a < b by length")
	}
}

func TestLess_NaN(t *testing.T) {
	nan := math.NaN()
	if Less(Make(nan), Make(1.0)) || Less(Make(1.0), Make(nan)) {
		t.Errorf("NaN should be neither less nor greater than 1")
	}
	// the unordered pair is skipped and the next one decides.
	if !Less(Make(nan, 1.0), Make(nan, 2.0)) {
		t.Errorf("expected [NaN 1] < [NaN 2]")
	}
	if !Less(Make(nan), Make(nan, 0.0)) {
		t.Errorf("expected a prefix to sort first")
	}
	if Compare(Make(nan), Make(1.0)) != -1 {
		t.Errorf("Compare should order NaN first")
	}
	if Equal(Make(nan), Make(nan)) {
		t.Errorf("NaN elements are not equal")
	}
}
