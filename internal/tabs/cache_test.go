package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RichMan125/srm-ui/internal/storage"
)

func TestOpenClose(t *testing.T) {
	c := New(storage.NewMemory())
	require.True(t, c.Open(Tab{Route: "/orders", Title: "Orders"}))
	require.True(t, c.Open(Tab{Route: "/stock"}))
	require.False(t, c.Open(Tab{Route: "/stock", Title: "Stock"}))

	require.Equal(t, []Tab{{Route: "/orders", Title: "Orders"}, {Route: "/stock", Title: "Stock"}}, c.List())

	require.True(t, c.Close("/orders"))
	require.False(t, c.Close("/orders"))
	require.Equal(t, []Tab{{Route: "/stock", Title: "Stock"}}, c.List())
}

func TestCacheAndRestore(t *testing.T) {
	kv := storage.NewMemory()
	c := New(kv)
	c.Open(Tab{Route: "/orders", Title: "Orders"})
	require.NoError(t, c.CacheTabs())

	raw, err := kv.Get(storage.KeyGlobalTabs)
	require.NoError(t, err)
	require.JSONEq(t, `[{"route":"/orders","title":"Orders"}]`, raw)

	require.Equal(t, c.List(), New(kv).List())
}

func TestClearTabsThenCache(t *testing.T) {
	kv := storage.NewMemory()
	c := New(kv)
	c.Open(Tab{Route: "/orders"})
	require.NoError(t, c.CacheTabs())

	require.NoError(t, c.ClearTabs())
	require.Empty(t, c.List())
	_, err := kv.Get(storage.KeyGlobalTabs)
	require.NoError(t, err, "ClearTabs does not touch storage")

	require.NoError(t, c.CacheTabs())
	raw, _ := kv.Get(storage.KeyGlobalTabs)
	require.Equal(t, "[]", raw)
}

func TestCorruptTabsIgnored(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(storage.KeyGlobalTabs, "nope"))
	require.Empty(t, New(kv).List())
}
