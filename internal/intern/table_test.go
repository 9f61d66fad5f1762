package intern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/unistr/ustr"
)

func TestNewTable(t *testing.T) {
	table := NewTable(4)

	require.NotNil(t, table)
	require.Equal(t, 0, table.Len())
	require.Equal(t, 0, table.Collisions())
	require.Empty(t, table.Entries())
}

func TestTable_Add(t *testing.T) {
	table := NewTable(0)

	idx, added := table.Add(ustr.MustFromString("alpha"))
	require.True(t, added)
	require.Equal(t, uint32(0), idx)

	idx, added = table.Add(ustr.MustFromString("bëta"))
	require.True(t, added)
	require.Equal(t, uint32(1), idx)

	idx, added = table.Add(ustr.MustFromString("alpha"))
	require.False(t, added)
	require.Equal(t, uint32(0), idx)

	idx, added = table.Add(ustr.Empty())
	require.True(t, added)
	require.Equal(t, uint32(2), idx)

	require.Equal(t, 3, table.Len())
	require.Equal(t, []ustr.String{
		ustr.MustFromString("alpha"),
		ustr.MustFromString("bëta"),
		ustr.Empty(),
	}, table.Entries())
}

func TestTable_Collision(t *testing.T) {
	table := NewTable(0)
	const sharedHash = 0x1234567890abcdef

	a := ustr.MustFromString("cpu.usage")
	b := ustr.MustFromString("cpu.idle")

	idx, added := table.add(a, sharedHash)
	require.True(t, added)
	require.Equal(t, uint32(0), idx)
	require.Equal(t, 0, table.Collisions())

	// Same hash, different string: both kept.
	idx, added = table.add(b, sharedHash)
	require.True(t, added)
	require.Equal(t, uint32(1), idx)
	require.Equal(t, 1, table.Collisions())

	// Both still resolve to their own index.
	idx, added = table.add(a, sharedHash)
	require.False(t, added)
	require.Equal(t, uint32(0), idx)

	idx, added = table.add(b, sharedHash)
	require.False(t, added)
	require.Equal(t, uint32(1), idx)

	require.Equal(t, 2, table.Len())
	require.Equal(t, 1, table.Collisions())
}
