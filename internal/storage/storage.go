// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package storage provides the key-value persistence capability the session
// store reads and writes: the session credential, the refresh token, the
// last-login marker and the cached workspace tabs.
//
// Backends are interchangeable behind Store. The OS keyring is the default
// for a single workstation; the file backend is for machines without a
// keyring daemon; Redis lets several terminals share one session; the memory
// backend is for tests and one-shot invocations.
package storage

import (
	"errors"
	"fmt"

	"github.com/RichMan125/srm-ui/internal/config"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Keys used by the session client.
const (
	KeyToken           = "token"
	KeyAccessToken     = "accessToken"
	KeyRefreshToken    = "refreshToken"
	KeyLastLoginUserID = "lastLoginUserId"
	KeyGlobalTabs      = "globalTabs"
	KeyRoute           = "route"
)

// Store is a synchronous string key-value store. Implementations must be
// safe for concurrent use. Remove of a missing key is not an error.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// authKeys are the keys cleared when a session ends.
var authKeys = []string{KeyToken, KeyAccessToken, KeyRefreshToken}

// ClearAuth removes all session-related keys from s.
// Every key is attempted; the first failure is returned.
func ClearAuth(s Store) error {
	var first error
	for _, k := range authKeys {
		if err := s.Remove(k); err != nil && first == nil {
			first = fmt.Errorf("remove %s: %w", k, err)
		}
	}
	return first
}

// GetOr returns the value under key, or def when the key is missing.
// Other errors are returned unchanged.
func GetOr(s Store, key, def string) (string, error) {
	v, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return v, err
}

// Open builds the Store selected by cfg.Backend.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", config.StorageKeyring:
		return NewKeyring()
	case config.StorageFile:
		return NewFile("")
	case config.StorageRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New("storage: redis backend requires redis_addr")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		return NewRedis(client, cfg.RedisPrefix), nil
	case config.StorageMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
