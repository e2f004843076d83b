package storage

import (
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/RichMan125/srm-ui/internal/config"
)

type backendCase struct {
	name  string
	setup func(t *testing.T) Store
}

func backends() []backendCase {
	return []backendCase{
		{
			name:  "memory",
			setup: func(t *testing.T) Store { return NewMemory() },
		},
		{
			name: "file",
			setup: func(t *testing.T) Store {
				f, err := NewFile(filepath.Join(t.TempDir(), "session.json"))
				require.NoError(t, err)
				return f
			},
		},
		{
			name: "keyring",
			setup: func(t *testing.T) Store {
				return newKeyringWith(keyring.NewArrayKeyring(nil))
			},
		},
		{
			name: "redis",
			setup: func(t *testing.T) Store {
				mr, err := miniredis.Run()
				require.NoError(t, err)
				rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				t.Cleanup(func() { _ = rdb.Close(); mr.Close() })
				return NewRedis(rdb, "srm:test:")
			},
		},
	}
}

func TestStoreContract(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.setup(t)

			_, err := s.Get(KeyToken)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(KeyToken, "sessionKey=abc"))
			require.NoError(t, s.Set(KeyLastLoginUserID, "u1"))

			v, err := s.Get(KeyToken)
			require.NoError(t, err)
			require.Equal(t, "sessionKey=abc", v)

			require.NoError(t, s.Set(KeyToken, "sessionKey=def"))
			v, err = s.Get(KeyToken)
			require.NoError(t, err)
			require.Equal(t, "sessionKey=def", v)

			require.NoError(t, s.Remove(KeyToken))
			_, err = s.Get(KeyToken)
			require.ErrorIs(t, err, ErrNotFound)

			// removing a missing key is not an error
			require.NoError(t, s.Remove(KeyToken))

			v, err = s.Get(KeyLastLoginUserID)
			require.NoError(t, err)
			require.Equal(t, "u1", v)
		})
	}
}

func TestClearAuthKeepsMarkerAndTabs(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Set(KeyToken, "sessionKey=abc"))
	require.NoError(t, s.Set(KeyRefreshToken, "r1"))
	require.NoError(t, s.Set(KeyLastLoginUserID, "u1"))
	require.NoError(t, s.Set(KeyGlobalTabs, `[]`))

	require.NoError(t, ClearAuth(s))

	_, err := s.Get(KeyToken)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(KeyRefreshToken)
	require.ErrorIs(t, err, ErrNotFound)

	v, err := s.Get(KeyLastLoginUserID)
	require.NoError(t, err)
	require.Equal(t, "u1", v)
	_, err = s.Get(KeyGlobalTabs)
	require.NoError(t, err)
}

func TestGetOr(t *testing.T) {
	s := NewMemory()
	v, err := GetOr(s, KeyRoute, "/login")
	require.NoError(t, err)
	require.Equal(t, "/login", v)

	require.NoError(t, s.Set(KeyRoute, "/home"))
	v, err = GetOr(s, KeyRoute, "/login")
	require.NoError(t, err)
	require.Equal(t, "/home", v)
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	p := filepath.Join(t.TempDir(), "session.json")
	a, err := NewFile(p)
	require.NoError(t, err)
	require.NoError(t, a.Set(KeyLastLoginUserID, "u7"))

	b, err := NewFile(p)
	require.NoError(t, err)
	v, err := b.Get(KeyLastLoginUserID)
	require.NoError(t, err)
	require.Equal(t, "u7", v)
}

func TestOpen(t *testing.T) {
	s, err := Open(config.StorageConfig{Backend: config.StorageMemory})
	require.NoError(t, err)
	require.IsType(t, &Memory{}, s)

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	s, err = Open(config.StorageConfig{Backend: config.StorageFile})
	require.NoError(t, err)
	require.IsType(t, &File{}, s)

	_, err = Open(config.StorageConfig{Backend: config.StorageRedis})
	require.Error(t, err)

	_, err = Open(config.StorageConfig{Backend: "floppy"})
	require.Error(t, err)
}
