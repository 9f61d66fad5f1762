package syspath

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/ustr"
)

func u(s string) ustr.String {
	return ustr.MustFromString(s)
}

func texts(p Path) []string {
	out := make([]string, 0, p.Len())
	for _, c := range p.Components() {
		out = append(out, c.String())
	}

	return out
}

func TestParseUnix(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"/", []string{"/"}},
		{"//", []string{"/"}},
		{"/usr/lib", []string{"/", "usr", "lib"}},
		{"/usr//lib/", []string{"/", "usr", "lib"}},
		{"relative/dïr/😀.txt", []string{"relative", "dïr", "😀.txt"}},
		{"a", []string{"a"}},
		{"a/", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, texts(ParseUnix(u(tt.input))))
		})
	}
}

func TestParseWindows(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{``, []string{}},
		{`C:\Users\me`, []string{"C:", "Users", "me"}},
		{`C:\\Users\\\me\`, []string{"C:", "Users", "me"}},
		{`a/b\c`, []string{"a/b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, texts(ParseWindows(u(tt.input))))
		})
	}
}

func TestParse_Native(t *testing.T) {
	if runtime.GOOS == "windows" {
		require.Equal(t, ParseWindows(u(`a\b`)), Parse(u(`a\b`)))
		return
	}
	require.Equal(t, ParseUnix(u("/a/b")), Parse(u("/a/b")))
}

func TestFromNative(t *testing.T) {
	p, err := FromNative([]byte("x/ÿ"))
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, []string{"x", "ÿ"}, texts(p))
	}

	_, err = FromNative([]byte{'x', '/', 0xC0, 0x80})
	require.ErrorIs(t, err, errs.ErrConversionData)
}

func TestRendering(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		unix    string
		windows string
	}{
		{"empty", New(), "", ""},
		{"root", New(u("/")), "/", `/`},
		{"absolute", New(u("/"), u("usr"), u("lïb")), "/usr/lïb", `/\usr\lïb`},
		{"relative", New(u("a"), u("b")), "a/b", `a\b`},
		{"drive", New(u("C:"), u("x")), "C:/x", `C:\x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.unix, tt.path.ToUnix().String())
			require.Equal(t, tt.windows, tt.path.ToWindows().String())
			require.Equal(t, tt.path.ToNative().String(), tt.path.String())
		})
	}
}

func TestUnixRoundTrip(t *testing.T) {
	for _, s := range []string{"/", "/usr/lib", "a/b/c", "ä/😀"} {
		require.Equal(t, s, ParseUnix(u(s)).ToUnix().String())
	}
}

func TestJoinExtend(t *testing.T) {
	p := New(u("a"))
	p.Join(u("b")).Join(u("c"))
	require.Equal(t, []string{"a", "b", "c"}, texts(p))

	p.Extend(New(u("d"), u("e")))
	require.Equal(t, 5, p.Len())

	joined := New(u("x")).Joined(New(u("y")))
	require.Equal(t, []string{"x", "y"}, texts(joined))
}

func TestValueCopiesAreIndependent(t *testing.T) {
	base := New(u("a"), u("b"))
	first := base
	second := base

	first.Join(u("one"))
	second.Join(u("two"))
	require.Equal(t, []string{"a", "b", "one"}, texts(first))
	require.Equal(t, []string{"a", "b", "two"}, texts(second))
	require.Equal(t, []string{"a", "b"}, texts(base))

	require.NoError(t, first.Remove(0))
	require.Equal(t, []string{"a", "b"}, texts(base))

	comps := base.Components()
	comps[0] = u("z")
	require.Equal(t, []string{"a", "b"}, texts(base))
}

func TestInsertRemove(t *testing.T) {
	p := New(u("a"), u("c"))

	require.NoError(t, p.Insert(1, u("b")))
	require.NoError(t, p.Insert(3, u("d")))
	require.NoError(t, p.Insert(0, u("/")))
	require.Equal(t, []string{"/", "a", "b", "c", "d"}, texts(p))

	err := p.Insert(6, u("x"))
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	var ie *errs.IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 6, ie.Limit)

	require.NoError(t, p.Remove(4))
	require.NoError(t, p.Remove(0))
	require.Equal(t, []string{"a", "b", "c"}, texts(p))

	require.ErrorIs(t, p.Remove(3), errs.ErrOutOfBounds)
	require.ErrorIs(t, p.Remove(-1), errs.ErrOutOfBounds)

	p.Clear()
	require.True(t, p.IsEmpty())
	require.ErrorIs(t, p.Remove(0), errs.ErrOutOfBounds)
}

func TestAccessors(t *testing.T) {
	p := New(u("usr"), u("lib"), u("libc.so.6"))

	front, err := p.Front()
	require.NoError(t, err)
	require.Equal(t, u("usr"), front)

	back, err := p.Back()
	require.NoError(t, err)
	require.Equal(t, u("libc.so.6"), back)

	mid, err := p.At(1)
	require.NoError(t, err)
	require.Equal(t, u("lib"), mid)

	_, err = p.At(3)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	var empty Path
	_, err = empty.Front()
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = empty.Back()
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path     Path
		expected string
	}{
		{New(u("a"), u("file.txt")), "txt"},
		{New(u("archive.tar.gz")), "gz"},
		{New(u("bild.jpég")), "jpég"},
		{New(u("Makefile")), ""},
		{New(u("trailing.")), ""},
		{New(u("dir.d"), u("plain")), ""},
		{New(), ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.path.Extension().String(), tt.path.String())
	}
}

func TestCompare(t *testing.T) {
	short := New(u("z"))
	long := New(u("a"), u("a"))
	require.Equal(t, -1, short.Compare(long))
	require.Equal(t, 1, long.Compare(short))
	require.True(t, short.Less(long))

	a := New(u("a"), u("b"))
	b := New(u("a"), u("c"))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 0, a.Compare(New(u("a"), u("b"))))
	require.True(t, a.Equal(New(u("a"), u("b"))))
	require.False(t, a.Equal(b))
}
