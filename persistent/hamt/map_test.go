package hamt

import (
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/npillmayer/immutable/seq"
	"github.com/npillmayer/immutable/tuple"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMapZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	var m Map[string, int]
	if m.Len() != 0 || m.Contains("x") || m.Get("x").IsJust() {
		t.Errorf("expected zero map to be empty")
	}
	if m.Without("x").root != nil {
		t.Errorf("expected Without on empty map to stay empty")
	}
	m = m.Assoc("one", 1)
	if v, ok := m.Get("one").Get(); !ok || v != 1 {
		t.Errorf("expected m[one] = 1, is %v", m.Get("one"))
	}
}

func TestMapAssocIsPersistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	var versions []Map[int, string]
	m := Empty[int, string]()
	for i := 0; i < 2000; i++ {
		versions = append(versions, m)
		m = m.Assoc(i, strconv.Itoa(i))
	}
	for n, old := range versions {
		require.Equal(t, n, old.Len())
		if old.Contains(n) {
			t.Fatalf("version %d contains key %d from a later version", n, n)
		}
		if n > 0 && old.GetOrElse(n-1, "") != strconv.Itoa(n-1) {
			t.Fatalf("version %d lost key %d", n, n-1)
		}
	}
	for i := 0; i < 2000; i++ {
		assert.Equal(t, strconv.Itoa(i), m.GetOrElse(i, "none"))
	}
}

func TestMapAssocReplaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	m := Empty[string, int]().Assoc("a", 1).Assoc("b", 2)
	n := m.Assoc("a", 10)
	if n.Len() != 2 || n.GetOrElse("a", 0) != 10 || m.GetOrElse("a", 0) != 1 {
		t.Errorf("expected replacement without touching the original, have %s and %s", m, n)
	}
	if same := m.Assoc("b", 2); same.root != m.root {
		t.Errorf("expected re-binding an equal value to return the map unchanged")
	}
}

func TestMapWithout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	m := Empty[int, int]()
	for i := 0; i < 500; i++ {
		m = m.Assoc(i, i)
	}
	if m.Without(1000).root != m.root {
		t.Errorf("expected removal of an absent key to return the map unchanged")
	}
	for i := 0; i < 500; i += 2 {
		m = m.Without(i)
	}
	require.Equal(t, 250, m.Len())
	for i := 0; i < 500; i++ {
		assert.Equal(t, i%2 == 1, m.Contains(i), "key %d", i)
	}
	for i := 1; i < 500; i += 2 {
		m = m.Without(i)
	}
	if m.Len() != 0 || m.root != nil {
		t.Logf(printTrie(m))
		t.Errorf("expected map to be empty, has %d entries", m.Len())
	}
}

func TestMapAssocThenWithout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	hashers := []Option[int]{WithHasher[int](lowBits(0x0f)), WithHasher[int](spread{})}
	for _, opts := range [][]Option[int]{nil, hashers[:1], hashers[1:]} {
		m := Empty[int, string](opts...)
		for i := 0; i < 40; i++ {
			m = m.Assoc(i*3, fmt.Sprint(i))
		}
		for _, k := range []int{0, 1, 9, 39, 120, 200} {
			a := m.Assoc(k, "x").Without(k)
			b := m.Without(k)
			if !a.Equal(b) || a.Hash() != b.Hash() {
				t.Errorf("expected assoc(%d) then without(%d) to equal without(%d)", k, k, k)
			}
			if !b.Without(k).Equal(b) {
				t.Errorf("expected removal of %d to be idempotent", k)
			}
		}
	}
}

func TestMapEqualityIgnoresInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	a, b := Empty[string, int](), Empty[string, int]()
	for i := 0; i < 100; i++ {
		a = a.Assoc(strconv.Itoa(i), i)
		b = b.Assoc(strconv.Itoa(99-i), 99-i)
	}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	c := b.Assoc("7", 8)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(a.Without("7")))
}

func TestMapFromSeqLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	words := seq.Of("apple", "avocado", "banana", "blueberry", "cherry")
	m := FromSeq(words, func(w string) tuple.Tuple2[byte, string] {
		return tuple.Of(w[0], w)
	})
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d: %s", m.Len(), m)
	}
	assert.Equal(t, "avocado", m.GetOrElse('a', ""))
	assert.Equal(t, "blueberry", m.GetOrElse('b', ""))
	assert.Equal(t, "none", m.GetOrElse('z', "none"))
}

func TestMapFolds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	m := FromSeq[int](seq.RangeOfInt(1, 11), func(i int) tuple.Tuple2[string, int] {
		return tuple.Of(strconv.Itoa(i), i)
	})
	sum := m.Fold(0, func(acc int, _ string, v int) int { return acc + v })
	assert.Equal(t, 55, sum)
	chars := FoldLeft(m, 0, func(acc int, kv tuple.Tuple2[string, int]) int {
		return acc + len(kv.Key())
	})
	assert.Equal(t, 11, chars)
	assert.Equal(t, 10, seq.Count(m.Keys()))
	assert.Equal(t, 55, seq.FoldLeft(m.Values(), 0, func(a, b int) int { return a + b }))
	// iteration order is stable for a map value
	assert.Equal(t, seq.ToSlice(m.Keys()), seq.ToSlice(m.Keys()))
}

func TestMapString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	if s := (Map[int, int]{}).String(); s != "{}" {
		t.Errorf("expected {}, is %q", s)
	}
	m := Empty[int, string](WithHasher[int](lowBits(0xff))).Assoc(2, "b").Assoc(1, "a")
	if s := m.String(); s != "{1:a 2:b}" {
		t.Errorf("expected {1:a 2:b}, is %q", s)
	}
}

func TestMapAsKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	k1 := Empty[string, int]().Assoc("x", 1).Assoc("y", 2)
	k2 := Empty[string, int]().Assoc("y", 2).Assoc("x", 1)
	outer := Empty[Map[string, int], string]().Assoc(k1, "found")
	assert.Equal(t, "found", outer.GetOrElse(k2, "missing"))
}

func TestMapConcurrentReaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	base := Empty[int, int]()
	for i := 0; i < 1000; i++ {
		base = base.Assoc(i, i)
	}
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			m := base
			for i := 0; i < 1000; i++ {
				if base.GetOrElse(i, -1) != i {
					return fmt.Errorf("worker %d: shared map changed at key %d", w, i)
				}
				m = m.Assoc(i, i+w+1)
			}
			if m.GetOrElse(999, -1) != 1000+w {
				return fmt.Errorf("worker %d: private update lost", w)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1000, base.Len())
}

func TestSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	s := SetOf("red", "green", "blue", "green")
	require.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("green"))
	assert.False(t, s.Contains("yellow"))
	if s.With("red").m.root != s.m.root {
		t.Errorf("expected adding a present element to return the set unchanged")
	}
	t2 := s.Without("green").With("green")
	assert.True(t, s.Equal(t2))
	assert.Equal(t, s.Hash(), t2.Hash())
	assert.Equal(t, 2, s.Without("red").Len())
	n := seq.Count(s.Seq())
	assert.Equal(t, 3, n)
	longest := s.Fold("", func(acc, x string) string {
		if len(x) > len(acc) {
			return x
		}
		return acc
	})
	assert.Equal(t, "green", longest)
	evens := SetFromSeq(seq.Filter[int](seq.RangeOfInt(0, 10), func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, 5, evens.Len())
	var z Set[int]
	assert.Equal(t, "#{}", z.String())
	assert.Equal(t, "#{7}", z.With(7).String())
}

type counter struct {
	n int
}

type point struct {
	x, y float64
}

func TestMapKeysEqualButNotIdentical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.hamt")
	defer teardown()
	//
	at := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	times := Empty[time.Time, string]().Assoc(at, "noon")
	assert.True(t, times.Contains(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)))
	// same instant, different location: not the same key
	assert.False(t, times.Contains(at.In(time.FixedZone("CET", 3600))))

	p := &counter{1}
	ptrs := Empty[*counter, string]().Assoc(p, "x")
	p.n = 2
	assert.True(t, ptrs.Contains(p), "pointer key lost after changing the pointee")
	assert.False(t, ptrs.Contains(&counter{2}))

	origin := Empty[point, string]().Assoc(point{0, 0}, "origin")
	negZero := math.Copysign(0, -1)
	assert.Equal(t, "origin", origin.GetOrElse(point{negZero, 0}, "missing"))
	assert.Equal(t, 1, origin.Assoc(point{negZero, negZero}, "origin").Len())
	s := SetOf([]float64{0, 1})
	assert.True(t, s.Contains([]float64{negZero, 1}))
}
