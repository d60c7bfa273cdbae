// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Defaults applied to profile fields omitted at sign-up.
const (
	DefaultUserName   = "Jacques Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://practicum-content.s3.us-west-1.amazonaws.com/resources/moved_avatar_1604080799.jpg"
)

// User represents a registered account together with its public profile.
type User struct {
	// ID is the UUID of the user. It is exposed under "_id" to stay
	// compatible with existing front-end clients.
	ID string `json:"_id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ApplyDefaults fills empty profile fields with their default values.
func (u *User) ApplyDefaults() {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.About == "" {
		u.About = DefaultUserAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultUserAvatar
	}
}

// ProfileUpdate is a partial update of a user's profile. Nil fields are kept.
type ProfileUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}
