package immutable_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/seq"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](g, f) // works, but type-inference helps
	h := immutable.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
	s := seq.ToSlice(seq.Map[int](immutable.RangeOfInt(1, 3), h))
	if len(s) != 2 || s[1] != "2.500" {
		t.Errorf("expected composition to work as a pipeline stage, have %v", s)
	}
}

func TestConst(t *testing.T) {
	seven := immutable.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestIdentity(t *testing.T) {
	v := immutable.Vec("a", "b")
	if w := immutable.Identity(v); !w.Equal(v) {
		t.Errorf("expected identity to return its argument, is %v", w)
	}
}
