// Package tabs holds the workspace tabs a user keeps open between sessions.
// Tabs live in memory while the client runs and are written under
// storage.KeyGlobalTabs by CacheTabs.
package tabs

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// Tab is one open workspace tab.
type Tab struct {
	Route string `json:"route"`
	Title string `json:"title,omitempty"`
}

// Cache implements auth.TabCache.
type Cache struct {
	mu   sync.Mutex
	kv   storage.Store
	tabs []Tab
}

var _ auth.TabCache = (*Cache)(nil)

// New restores the cached tabs from kv. Unreadable data yields no tabs.
func New(kv storage.Store) *Cache {
	c := &Cache{kv: kv}
	raw, err := storage.GetOr(kv, storage.KeyGlobalTabs, "")
	if err == nil && raw != "" {
		var ts []Tab
		if json.Unmarshal([]byte(raw), &ts) == nil {
			c.tabs = ts
		}
	}
	return c
}

// List returns the open tabs in opening order.
func (c *Cache) List() []Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tabs)
}

// Open adds a tab for route, or retitles the existing one. It reports
// whether a new tab was added.
func (c *Cache) Open(t Tab) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.IndexFunc(c.tabs, func(x Tab) bool { return x.Route == t.Route }); i >= 0 {
		if t.Title != "" {
			c.tabs[i].Title = t.Title
		}
		return false
	}
	c.tabs = append(c.tabs, t)
	return true
}

// Close removes the tab for route and reports whether one was open.
func (c *Cache) Close(route string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.tabs)
	c.tabs = slices.DeleteFunc(c.tabs, func(x Tab) bool { return x.Route == route })
	return len(c.tabs) != n
}

// CacheTabs writes the open tabs to storage.
func (c *Cache) CacheTabs() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := c.tabs
	if ts == nil {
		ts = []Tab{}
	}
	b, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	if err := c.kv.Set(storage.KeyGlobalTabs, string(b)); err != nil {
		return fmt.Errorf("cache tabs: %w", err)
	}
	return nil
}

// ClearTabs closes every tab. Storage is left alone.
func (c *Cache) ClearTabs() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tabs = nil
	return nil
}
