package models

import (
	"strings"
	"time"
)

// Profile defaults used when a profile is provisioned or displayed.
const (
	DefaultProfileName   = "收藏家"
	DefaultProfileBio    = "永远为热爱买单"
	DefaultProfileAvatar = "https://picsum.photos/seed/user-avatar/100/100"
	EmptyProfileBio      = "还没有简介"
)

// Profile is the singleton per-account profile.
type Profile struct {
	UserID    int64      `json:"-"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	Avatar    string     `json:"avatar"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewDefaultProfile builds the profile created on the first authenticated
// session. The name is the part of the login before '@'.
func NewDefaultProfile(userID int64, login string) Profile {
	name, _, _ := strings.Cut(login, "@")
	if strings.TrimSpace(name) == "" {
		name = DefaultProfileName
	}
	return Profile{
		UserID: userID,
		Name:   name,
		Bio:    DefaultProfileBio,
		Avatar: DefaultProfileAvatar,
	}
}

// WithDisplayFallbacks fills empty fields with display placeholders.
func (p Profile) WithDisplayFallbacks() Profile {
	if p.Name == "" {
		p.Name = DefaultProfileName
	}
	if p.Bio == "" {
		p.Bio = EmptyProfileBio
	}
	if p.Avatar == "" {
		p.Avatar = DefaultProfileAvatar
	}
	return p
}
