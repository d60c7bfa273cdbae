// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Card is a place photo published by a user.
type Card struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Link string `json:"link"`

	// Owner is the ID of the user who created the card.
	Owner string `json:"owner"`

	// Likes holds the IDs of the users who liked the card. It is never nil
	// so that clients always receive a JSON array.
	Likes []string `json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// IsOwnedBy reports whether userID created the card.
func (c Card) IsOwnedBy(userID string) bool {
	return c.Owner == userID
}

// LikedBy reports whether userID is among the card's likes.
func (c Card) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}
