package ustr

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/unistr/errs"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		others   []string
		expected string
	}{
		{"nothing", "abc", nil, "abc"},
		{"one", "ab", []string{"cé"}, "abcé"},
		{"empty other", "ab", []string{""}, "ab"},
		{"onto empty", "", []string{"😀"}, "😀"},
		{"many", "x", []string{"é", "", "€", "😀"}, "xé€😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustFromString(tt.base)
			others := make([]String, len(tt.others))
			for i, o := range tt.others {
				others[i] = MustFromString(o)
			}

			s.Concat(others...)
			require.Equal(t, tt.expected, s.String())
			require.Equal(t, utf8.RuneCountInString(tt.expected), s.Len())
		})
	}
}

func TestConcat_LengthIsAdditive(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a, err := FromCodepoints(randomScalars(rng, rng.Intn(6))...)
		require.NoError(t, err)
		b, err := FromCodepoints(randomScalars(rng, rng.Intn(6))...)
		require.NoError(t, err)

		c := a.Concatenated(b)
		require.Equal(t, a.Len()+b.Len(), c.Len())
		require.Equal(t, a.ByteLen()+b.ByteLen(), c.ByteLen())
		require.True(t, utf8.ValidString(c.String()))
		require.Equal(t, append(a.Runes(), b.Runes()...), c.Runes())
	}
}

func TestConcatenated_LeavesReceiver(t *testing.T) {
	a := MustFromString("left")
	c := a.Concatenated(MustFromString("-right"))

	require.Equal(t, "left", a.String())
	require.Equal(t, "left-right", c.String())
}

func TestValueSemantics(t *testing.T) {
	a := MustFromString("shared")
	b := a

	b.Concat(MustFromString("!"))
	require.Equal(t, "shared", a.String())
	require.Equal(t, 6, a.Len())
	require.Equal(t, "shared!", b.String())

	require.NoError(t, a.Remove(0, 3))
	require.Equal(t, "red", a.String())
	require.Equal(t, "shared!", b.String())
}

func TestClear(t *testing.T) {
	s := MustFromString("héllo")
	s.Clear()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.ByteLen())
	require.Equal(t, Empty(), s)

	s.Concat(MustFromString("again"))
	require.Equal(t, "again", s.String())
	require.Equal(t, 5, s.Len())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		index    int
		insert   string
		expected string
	}{
		{"front", "wörld", 0, "hé ", "hé wörld"},
		{"middle", "a😀c", 1, "b", "ab😀c"},
		{"append", "ab", 2, "€", "ab€"},
		{"into empty", "", 0, "x", "x"},
		{"empty insert", "abc", 1, "", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustFromString(tt.base)
			require.NoError(t, s.Insert(tt.index, MustFromString(tt.insert)))
			require.Equal(t, tt.expected, s.String())
			require.Equal(t, utf8.RuneCountInString(tt.expected), s.Len())
		})
	}

	t.Run("out of bounds", func(t *testing.T) {
		s := MustFromString("abc")
		for _, i := range []int{-1, 4} {
			err := s.Insert(i, MustFromString("x"))
			require.ErrorIs(t, err, errs.ErrOutOfBounds)

			var ie *errs.IndexError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, i, ie.Index)
			require.Equal(t, 4, ie.Limit)
		}
		require.Equal(t, "abc", s.String())
	})
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		expected   string
	}{
		{"prefix", "héllo", 0, 2, "llo"},
		{"suffix", "héllo", 3, 5, "hé"},
		{"astral", "a😀b", 1, 2, "ab"},
		{"all", "€€", 0, 2, ""},
		{"empty range", "abc", 1, 1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustFromString(tt.base)
			require.NoError(t, s.Remove(tt.start, tt.end))
			require.Equal(t, tt.expected, s.String())
			require.Equal(t, utf8.RuneCountInString(tt.expected), s.Len())
		})
	}

	t.Run("out of bounds", func(t *testing.T) {
		s := MustFromString("abc")
		for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 4}} {
			err := s.Remove(r[0], r[1])
			require.ErrorIs(t, err, errs.ErrOutOfBounds)
		}
		require.Equal(t, "abc", s.String())
	})
}

func TestRepeat(t *testing.T) {
	s := MustFromString("é-")
	require.NoError(t, s.Repeat(3))
	require.Equal(t, "é-é-é-", s.String())
	require.Equal(t, 6, s.Len())

	require.NoError(t, s.Repeat(0))
	require.True(t, s.IsEmpty())

	err := s.Repeat(-1)
	require.ErrorIs(t, err, errs.ErrValue)

	t.Run("oversized result", func(t *testing.T) {
		ab := MustFromString("ab")
		for _, count := range []int{math.MaxInt / 2, math.MaxInt, MaxRepeatBytes/2 + 1} {
			require.NotPanics(t, func() {
				err := ab.Repeat(count)
				require.ErrorIs(t, err, errs.ErrValue)
			})
			require.Equal(t, "ab", ab.String())
			require.Equal(t, 2, ab.Len())

			r, err := ab.Repeated(count)
			require.ErrorIs(t, err, errs.ErrValue)
			require.Equal(t, ab, r)
		}
	})

	base := MustFromString("ab")
	r, err := base.Repeated(2)
	require.NoError(t, err)
	require.Equal(t, "abab", r.String())
	require.Equal(t, "ab", base.String())
}

func TestRemoveDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		sub      string
		expected string
	}{
		{"slashes", "a//b///c", "/", "a/b/c"},
		{"leading and trailing", "//a//", "/", "/a/"},
		{"multi codepoint sub", "x→→→y→→", "→", "x→y→"},
		{"word", "abababc", "ab", "abc"},
		{"none", "abc", "/", "abc"},
		{"empty sub", "aa", "", "aa"},
		{"empty base", "", "/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustFromString(tt.base)
			s.RemoveDuplicates(MustFromString(tt.sub))
			require.Equal(t, tt.expected, s.String())
			require.Equal(t, utf8.RuneCountInString(tt.expected), s.Len())
		})
	}
}
