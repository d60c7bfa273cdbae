// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignInRequest is the body of POST /signin. Keys other than email and
// password are rejected.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpRequest is the body of POST /signup. Unknown keys are tolerated and
// the optional profile fields fall back to the defaults from [User.ApplyDefaults].
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About    string `json:"about,omitempty" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// ToUser converts the request into a new (unsaved) user.
func (r SignUpRequest) ToUser() User {
	user := User{
		Email:  r.Email,
		Name:   r.Name,
		About:  r.About,
		Avatar: r.Avatar,
	}
	user.ApplyDefaults()

	return user
}

// UpdateProfileRequest is the body of PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest is the body of PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// CreateCardRequest is the body of POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}
