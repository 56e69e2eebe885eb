package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTupleAccess(t *testing.T) {
	tup := Of('R', "red")
	if tup.First() != 'R' || tup.Key() != 'R' {
		t.Errorf("expected first component to be 'R', is %q", tup.First())
	}
	if tup.Second() != "red" || tup.Value() != "red" {
		t.Errorf("expected second component to be \"red\", is %q", tup.Second())
	}
	a, b := tup.Decompose()
	if a != 'R' || b != "red" {
		t.Errorf("expected decomposition to yield ('R', \"red\"), is (%q, %q)", a, b)
	}
	s := tup.Swap()
	if s.First() != "red" || s.Second() != 'R' {
		t.Errorf("expected swapped tuple to be (red, 82), is %s", s)
	}
}

func TestTupleEquality(t *testing.T) {
	assert.True(t, Of(1, "one").Equal(Of(1, "one")))
	assert.False(t, Of(1, "one").Equal(Of(1, "two")))
	assert.False(t, Of(1, "one").Equal(Of(2, "one")))
	assert.Equal(t, Of(1, "one").Hash(), Of(1, "one").Hash())
	assert.NotEqual(t, Of(1, 2).Hash(), Of(2, 1).Hash())
	// components without == still compare by value
	assert.True(t, Of([]int{1, 2}, 3).Equal(Of([]int{1, 2}, 3)))
}

func TestTupleString(t *testing.T) {
	if s := Of(7, "seven").String(); s != "(7, seven)" {
		t.Errorf("expected (7, seven), is %q", s)
	}
}
