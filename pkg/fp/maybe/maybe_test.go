package maybe

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fp3/pkg/fp"
)

func TestMissing_IsZeroValue(t *testing.T) {
	t.Parallel()

	var zero Maybe[string]
	assert.Equal(t, Missing[string](), zero)
	assert.True(t, Missing[string]() == zero)
	assert.True(t, zero.IsMissing())
	assert.False(t, zero.IsPresent())
	assert.Equal(t, 0, zero.Len())
}

func TestPresent_HoldsValue(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	m := Present(id)

	assert.True(t, m.IsPresent())
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, id, v)
	assert.Equal(t, id, m.MustGet())
}

func TestPresent_ZeroValueIsStillPresent(t *testing.T) {
	t.Parallel()

	m := Present(0)
	assert.True(t, m.IsPresent())
	assert.NotEqual(t, Missing[int](), m)
	assert.Equal(t, 0, m.GetOr(7))
}

func TestGetOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", Present("a").GetOr("b"))
	assert.Equal(t, "b", Missing[string]().GetOr("b"))
}

func TestGetOrElse_OnlyCallsDefaultWhenMissing(t *testing.T) {
	t.Parallel()

	called := 0
	def := func() int {
		called++
		return 9
	}

	assert.Equal(t, 1, Present(1).GetOrElse(def))
	assert.Equal(t, 0, called)
	assert.Equal(t, 9, Missing[int]().GetOrElse(def))
	assert.Equal(t, 1, called)
}

func TestMustGet_PanicsWhenMissing(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, fp.ErrMissing, func() {
		Missing[int]().MustGet()
	})
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("FromOk", func(t *testing.T) {
		values := map[string]int{"one": 1}
		assert.Equal(t, Present(1), FromOk(values["one"], true))

		v, ok := values["two"]
		assert.Equal(t, Missing[int](), FromOk(v, ok))
	})

	t.Run("FromPtr", func(t *testing.T) {
		n := 5
		assert.Equal(t, Present(5), FromPtr(&n))
		assert.Equal(t, Missing[int](), FromPtr[int](nil))
	})

	t.Run("FromZero", func(t *testing.T) {
		assert.Equal(t, Present("x"), FromZero("x"))
		assert.Equal(t, Missing[string](), FromZero(""))
	})
}

func TestPtr_ReturnsCopy(t *testing.T) {
	t.Parallel()

	m := Present(3)
	p := m.Ptr()
	require.NotNil(t, p)
	*p = 4
	assert.Equal(t, 3, m.MustGet())
	assert.Nil(t, Missing[int]().Ptr())
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("applies f to a present value", func(t *testing.T) {
		out := Map(Present(21), func(i int) string { return strconv.Itoa(i * 2) })
		assert.Equal(t, Present("42"), out)
	})

	t.Run("never calls f for missing", func(t *testing.T) {
		called := false
		out := Map(Missing[int](), func(i int) int {
			called = true
			return i
		})
		assert.Equal(t, Missing[int](), out)
		assert.False(t, called)
	})

	t.Run("does not recover a panic in f", func(t *testing.T) {
		boom := errors.New("boom")
		assert.PanicsWithValue(t, boom, func() {
			Map(Present(1), func(int) int { panic(boom) })
		})
	})
}

func TestBind(t *testing.T) {
	t.Parallel()

	half := func(i int) Maybe[int] {
		if i%2 != 0 {
			return Missing[int]()
		}
		return Present(i / 2)
	}

	assert.Equal(t, Present(4), Bind(Present(8), half))
	assert.Equal(t, Missing[int](), Bind(Present(3), half))
	assert.Equal(t, Missing[int](), Bind(Missing[int](), half))
	assert.Equal(t, Present(1), Bind(Bind(Bind(Present(8), half), half), half))
}

func TestOrAndFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(1), Present(1).Or(Present(2)))
	assert.Equal(t, Present(2), Missing[int]().Or(Present(2)))
	assert.Equal(t, Missing[int](), Missing[int]().Or(Missing[int]()))

	even := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, Present(2), Present(2).Filter(even))
	assert.Equal(t, Missing[int](), Present(3).Filter(even))
	assert.Equal(t, Missing[int](), Missing[int]().Filter(even))
}

func TestMatchAndFold(t *testing.T) {
	t.Parallel()

	var got []string
	onPresent := func(s string) { got = append(got, "present:"+s) }
	onMissing := func() { got = append(got, "missing") }

	Present("a").Match(onPresent, onMissing)
	Missing[string]().Match(onPresent, onMissing)
	assert.Equal(t, []string{"present:a", "missing"}, got)

	length := func(s string) int { return len(s) }
	none := func() int { return -1 }
	assert.Equal(t, 3, Fold(Present("abc"), length, none))
	assert.Equal(t, -1, Fold(Missing[string](), length, none))
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{7}, slices.Collect(Present(7).All()))
	assert.Empty(t, slices.Collect(Missing[int]().All()))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Present(42)", Present(42).String())
	assert.Equal(t, "Missing", Missing[int]().String())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	assert.True(t, Equal(Present(id), Present(id)))
	assert.False(t, Equal(Present(id), Present(uuid.New())))
	assert.False(t, Equal(Present(id), Missing[uuid.UUID]()))
	assert.True(t, Equal(Missing[uuid.UUID](), Missing[uuid.UUID]()))
}

func TestCall(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(12), Call(strconv.Atoi, "12"))
	assert.Equal(t, Missing[int](), Call(strconv.Atoi, "twelve"))
	assert.Equal(t, Missing[int](), Call(func(s []int) (int, error) { return s[5], nil }, []int{1}))
}

func TestIndex(t *testing.T) {
	t.Parallel()

	s := []string{"a", "b", "c"}
	assert.Equal(t, Present("a"), Index(s, 0))
	assert.Equal(t, Present("c"), Index(s, -1))
	assert.Equal(t, Missing[string](), Index(s, 3))
	assert.Equal(t, Missing[string](), Index(s, -4))
	assert.Equal(t, Missing[string](), Index([]string(nil), 0))
}

func TestSequence(t *testing.T) {
	t.Parallel()

	all := slices.Values([]Maybe[int]{Present(1), Present(2), Present(3)})
	assert.Equal(t, Present([]int{1, 2, 3}), Sequence(all))

	gap := slices.Values([]Maybe[int]{Present(1), Missing[int](), Present(3)})
	assert.Equal(t, Missing[[]int](), Sequence(gap))

	assert.Equal(t, Present([]int{}), Sequence(slices.Values([]Maybe[int]{})))
}

func TestExceptVariants(t *testing.T) {
	t.Parallel()

	at := func(i int) int { return []int{1, 2, 3}[i] }

	t.Run("MapExcept", func(t *testing.T) {
		assert.Equal(t, Present(2), MapExcept(Present(1), at))
		assert.Equal(t, Missing[int](), MapExcept(Present(5), at))
		assert.Equal(t, Missing[int](), MapExcept(Missing[int](), at))
	})

	t.Run("BindExcept", func(t *testing.T) {
		called := false
		f := func(i int) Maybe[int] {
			called = true
			return Present(at(i))
		}

		assert.Equal(t, Present(3), BindExcept(Present(2), f))
		assert.Equal(t, Missing[int](), BindExcept(Present(-1), f))

		called = false
		assert.Equal(t, Missing[int](), BindExcept(Missing[int](), f))
		assert.False(t, called)
	})
}

func TestLazyConstructors(t *testing.T) {
	t.Parallel()

	calls := 0
	parse := func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	}

	ok := LazyCall(parse, "7")
	bad := LazyCall(parse, "seven")
	assert.Equal(t, 0, calls)
	assert.Equal(t, Present(7), ok())
	assert.Equal(t, Missing[int](), bad())
	assert.Equal(t, 2, calls)

	s := []string{"a", "b"}
	last := LazyIndex(s, -1)
	outside := LazyIndex(s, 2)
	s[1] = "z"
	assert.Equal(t, Present("z"), last())
	assert.Equal(t, Missing[string](), outside())
}

func TestOptionInterop(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(1), FromOption(mo.Some(1)))
	assert.Equal(t, Missing[int](), FromOption(mo.None[int]()))

	assert.Equal(t, mo.Some("x"), ToOption(Present("x")))
	assert.True(t, ToOption(Missing[string]()).IsAbsent())
}

func TestMaybeLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	double := func(i int) int { return i * 2 }
	inc := func(i int) Maybe[int] { return Present(i + 1) }
	evenHalf := func(i int) Maybe[int] {
		if i%2 != 0 {
			return Missing[int]()
		}
		return Present(i / 2)
	}

	properties.Property("present(v).GetOr(d) == v", prop.ForAll(
		func(v, d int) bool {
			return Present(v).GetOr(d) == v
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("missing().GetOr(d) == d", prop.ForAll(
		func(d int) bool {
			return Missing[int]().GetOr(d) == d
		},
		gen.Int(),
	))

	properties.Property("Map(present(v), f) == present(f(v))", prop.ForAll(
		func(v int) bool {
			return Map(Present(v), double) == Present(double(v))
		},
		gen.Int(),
	))

	properties.Property("left identity", prop.ForAll(
		func(v int) bool {
			return Bind(Present(v), evenHalf) == evenHalf(v)
		},
		gen.Int(),
	))

	properties.Property("right identity", prop.ForAll(
		func(v int, present bool) bool {
			m := FromOk(v, present)
			return Bind(m, Present[int]) == m
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("associativity", prop.ForAll(
		func(v int, present bool) bool {
			m := FromOk(v, present)
			lhs := Bind(Bind(m, evenHalf), inc)
			rhs := Bind(m, func(x int) Maybe[int] { return Bind(evenHalf(x), inc) })
			return lhs == rhs
		},
		gen.Int(), gen.Bool(),
	))

	properties.TestingRun(t)
}
