package z

import "testing"

func TestIntervalLen(t *testing.T) {
	iv := Interval{Lo: 2, Hi: 5}
	if iv.Len() != 4 {
		t.Errorf("wrong length %d", iv.Len())
	}
	if !iv.Contains(2) || !iv.Contains(5) {
		t.Errorf("boundary predicates not contained")
	}
	if iv.Contains(1) || iv.Contains(6) {
		t.Errorf("out of range predicate reported contained")
	}
}

func TestIntervalEmpty(t *testing.T) {
	iv := Interval{Lo: 5, Hi: 4}
	if iv.Len() != 0 {
		t.Errorf("expected empty interval, got length %d", iv.Len())
	}
}

func TestPredString(t *testing.T) {
	if Pred(7).String() != "p7" {
		t.Errorf("wrong format %s", Pred(7))
	}
	if Loc(3).String() != "loc3" {
		t.Errorf("wrong format %s", Loc(3))
	}
}
