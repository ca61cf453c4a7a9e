package interpreter

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	for _, c := range []struct {
		n    float64
		want string
	}{
		{3, "3"},
		{-0.5, "-0.5"},
		{45.67, "45.67"},
		{1e6, "1000000"},
		{math.Inf(1), "inf"},
		{math.NaN(), "NaN"},
	} {
		if got := Stringify(c.n); got != c.want {
			t.Errorf("Stringify(%v) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestIsEqual(t *testing.T) {
	c := NewClass("C", nil, nil)
	a, b := NewInstance(c), NewInstance(c)
	if !IsEqual(a, a) || IsEqual(a, b) {
		t.Error("instances compare by identity")
	}
	if IsEqual(math.NaN(), math.NaN()) {
		t.Error("NaN is not equal to itself")
	}
	if IsEqual(nil, false) || !IsEqual(nil, nil) {
		t.Error("nil equals only nil")
	}
}
