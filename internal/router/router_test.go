package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RichMan125/srm-ui/internal/storage"
)

func TestIsConstant(t *testing.T) {
	require.True(t, IsConstant("/login"))
	require.True(t, IsConstant("404"))
	require.True(t, IsConstant("/login/"))
	require.False(t, IsConstant("/orders"))
}

func TestNewStartsAtLogin(t *testing.T) {
	r := New(storage.NewMemory(), "")
	require.Equal(t, LoginRoute, r.Current())
	require.Equal(t, "/home", r.Home())
	require.True(t, r.RouteIsConstant())
}

func TestToLoginAndBack(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	r := New(kv, "/dashboard")

	require.NoError(t, r.Push("orders/42"))
	require.False(t, r.RouteIsConstant())

	require.NoError(t, r.ToLogin(ctx))
	st := r.State()
	require.Equal(t, LoginRoute, st.Current)
	require.Equal(t, "/orders/42", st.Redirect)

	// state survives a restart
	r = New(kv, "/dashboard")
	require.Equal(t, "/orders/42", r.State().Redirect)

	require.NoError(t, r.RedirectFromLogin(ctx, true))
	require.Equal(t, "/orders/42", r.Current())
	require.Empty(t, r.State().Redirect)
}

func TestRedirectDeclinedGoesHome(t *testing.T) {
	ctx := context.Background()
	r := New(storage.NewMemory(), "/dashboard")
	require.NoError(t, r.Push("/orders"))
	require.NoError(t, r.ToLogin(ctx))

	require.NoError(t, r.RedirectFromLogin(ctx, false))
	require.Equal(t, "/dashboard", r.Current())
	require.Empty(t, r.State().Redirect)
}

func TestToLoginFromConstantRouteKeepsNoTarget(t *testing.T) {
	ctx := context.Background()
	r := New(storage.NewMemory(), "/home")
	require.NoError(t, r.Push("/404"))
	require.NoError(t, r.ToLogin(ctx))
	require.Empty(t, r.State().Redirect)

	require.NoError(t, r.RedirectFromLogin(ctx, true))
	require.Equal(t, "/home", r.Current())
}

func TestReset(t *testing.T) {
	kv := storage.NewMemory()
	r := New(kv, "/home")
	require.NoError(t, r.Push("/a"))
	require.NoError(t, r.Push("/b"))
	require.NoError(t, r.Push("/a"))
	require.Equal(t, []string{"/a", "/b"}, r.State().Visited)

	r.Reset()
	require.Empty(t, r.State().Visited)
	require.Equal(t, "/a", r.Current())
	require.Empty(t, New(kv, "/home").State().Visited)
}

func TestCorruptStateIgnored(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(storage.KeyRoute, "{not json"))
	require.Equal(t, LoginRoute, New(kv, "/home").Current())
}
