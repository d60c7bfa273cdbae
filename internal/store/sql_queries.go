// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/around-api/models"
)

const (
	usersTable     = "users"
	cardsTable     = "cards"
	cardLikesTable = "card_likes"
)

var (
	userColumns = []string{"id", "email", "password_hash", "name", "about", "avatar", "created_at"}
	cardColumns = []string{"id", "name", "link", "owner_id", "created_at"}
	likeColumns = []string{"card_id", "user_id"}
)

var errEmptyUpdate = errors.New("no fields to update")

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.Name, user.About, user.Avatar, user.CreatedAt.UnixMilli()).
		ToSql())
}

// buildSelectUserQuery selects a single user matching where.
func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql())
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql())
}

// buildUpdateUserQuery sets only the non-nil fields of update.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID string, update models.ProfileUpdate) (string, []any, error) {
	query := b.Update(usersTable)
	fields := 0

	if update.Name != nil {
		query = query.Set("name", *update.Name)
		fields++
	}
	if update.About != nil {
		query = query.Set("about", *update.About)
		fields++
	}
	if update.Avatar != nil {
		query = query.Set("avatar", *update.Avatar)
		fields++
	}

	if fields == 0 {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errEmptyUpdate)
	}

	return wrapBuild(query.Where(sq.Eq{"id": userID}).ToSql())
}

func buildInsertCardQuery(b sq.StatementBuilderType, card models.Card) (string, []any, error) {
	return wrapBuild(b.Insert(cardsTable).
		Columns(cardColumns...).
		Values(card.ID, card.Name, card.Link, card.Owner, card.CreatedAt.UnixMilli()).
		ToSql())
}

func buildSelectCardQuery(b sq.StatementBuilderType, cardID string) (string, []any, error) {
	return wrapBuild(b.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"id": cardID}).
		Limit(1).
		ToSql())
}

// buildSelectCardsQuery returns the newest cards first.
func buildSelectCardsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuild(b.Select(cardColumns...).
		From(cardsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql())
}

func buildDeleteCardQuery(b sq.StatementBuilderType, cardID string) (string, []any, error) {
	return wrapBuild(b.Delete(cardsTable).
		Where(sq.Eq{"id": cardID}).
		ToSql())
}

// buildSelectLikesQuery selects the likes of the given cards; an empty
// cardIDs selects every like.
func buildSelectLikesQuery(b sq.StatementBuilderType, cardIDs []string) (string, []any, error) {
	query := b.Select(likeColumns...).From(cardLikesTable)
	if len(cardIDs) > 0 {
		query = query.Where(sq.Eq{"card_id": cardIDs})
	}

	return wrapBuild(query.OrderBy("card_id", "user_id").ToSql())
}

// buildInsertLikeQuery is idempotent: liking twice keeps a single like.
func buildInsertLikeQuery(b sq.StatementBuilderType, cardID, userID string) (string, []any, error) {
	return wrapBuild(b.Insert(cardLikesTable).
		Columns(likeColumns...).
		Values(cardID, userID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql())
}

func buildDeleteLikeQuery(b sq.StatementBuilderType, cardID, userID string) (string, []any, error) {
	return wrapBuild(b.Delete(cardLikesTable).
		Where(sq.Eq{"card_id": cardID, "user_id": userID}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
