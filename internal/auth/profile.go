package auth

import (
	"slices"

	"github.com/RichMan125/srm-ui/internal/backend"
)

// Profile is the signed-in user's descriptive and permission data.
// A Profile is a value: updates produce a new Profile, never mutate a held one.
type Profile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Realname string   `json:"realname"`
	Roles    []string `json:"roles"`
	// Buttons are permission markers for individual UI actions.
	Buttons []string `json:"buttons"`
}

// merge returns p overlaid with every field present in u.
func (p Profile) merge(u backend.UserInfo) Profile {
	out := p.clone()
	if u.ID != nil {
		out.ID = *u.ID
	}
	if u.Username != nil {
		out.Username = *u.Username
	}
	if u.Realname != nil {
		out.Realname = *u.Realname
	}
	if u.Roles != nil {
		out.Roles = slices.Clone(u.Roles)
	}
	if u.Buttons != nil {
		out.Buttons = slices.Clone(u.Buttons)
	}
	return out
}

func (p Profile) clone() Profile {
	p.Roles = slices.Clone(p.Roles)
	p.Buttons = slices.Clone(p.Buttons)
	return p
}

// HasRole reports whether the profile carries role.
func (p Profile) HasRole(role string) bool { return slices.Contains(p.Roles, role) }

// HasButton reports whether the profile carries the permission marker.
func (p Profile) HasButton(button string) bool { return slices.Contains(p.Buttons, button) }

// DisplayName is the real name, or the username when no real name is set.
func (p Profile) DisplayName() string {
	if p.Realname != "" {
		return p.Realname
	}
	return p.Username
}
