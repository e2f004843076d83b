// Package xdg resolves XDG Base Directory paths for the srm client.
//
// Configuration lives under the config dir; the file-backed session store
// and route state live under the state dir. Both fall back to the
// traditional locations when the XDG variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base.
const AppName = "srm"

// ConfigDir returns the XDG config directory for srm.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/srm when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for srm.
// It falls back to ~/.local/state/srm when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
