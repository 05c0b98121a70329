package models

import (
	"net/url"
	"time"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// User is a registered local account. Salt and Verifier hold the derived
// password check value; the password itself is never stored.
type User struct {
	ID          string
	Username    string
	Email       string
	DisplayName string
	PhotoURL    string
	Salt        []byte
	Verifier    []byte
	CreatedAt   time.Time
}

// Profile is the public part of a User. It is what the session slot holds
// and what the account operations hand back to callers.
type Profile struct {
	ID          string `json:"uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

// AvatarURL returns the generated avatar reference for username.
func AvatarURL(username string) string {
	return avatarBaseURL + url.QueryEscape(username)
}
