package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/immutable/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultMap(t *testing.T) {
	errNeg := errors.New("negative")
	half := func(n int) float64 {
		return float64(n) / 2
	}
	r := Map(half, Ok(7))
	if v, err := r.Get(); err != nil || v != 3.5 {
		t.Errorf("expected Map(half, Ok(7)) to be Ok(3.5), is %s", r)
	}
	r = Map(half, Err[int](errNeg))
	if _, err := r.Get(); !errors.Is(err, errNeg) {
		t.Errorf("expected error to pass through Map, is %s", r)
	}
	if r.WithDefault(-1) != -1 {
		t.Errorf("expected default for failed result, got %v", r.WithDefault(-1))
	}
}

func TestResultFrom(t *testing.T) {
	if r := From(1, nil); !r.IsOk() || r.String() != "Ok(1)" {
		t.Errorf("expected From(1, nil) to be Ok(1), is %s", r)
	}
	if r := From(0, errors.New("boom")); r.IsOk() || r.String() != "Err(boom)" {
		t.Errorf("expected From(0, boom) to be Err(boom), is %s", r)
	}
}
