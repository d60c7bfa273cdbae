// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/models"
)

// cardRepository is the SQL implementation of [CardRepository].
// Likes live in the "card_likes" join table and are attached to every
// card it returns.
type cardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCard persists a new card. A new card has no likes.
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCardQuery(r.db.builder(), card)
	if err != nil {
		return models.Card{}, err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("error inserting card")
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsForeignKeyViolation(err) {
			return models.Card{}, ErrUserNotFound
		}
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	card.Likes = []string{}
	return card, nil
}

// ListCards returns every card, newest first, with its likes.
func (r *cardRepository) ListCards(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardsQuery(r.db.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error selecting cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error scanning card")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cards = append(cards, card)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if len(cards) == 0 {
		return cards, nil
	}

	likes, err := r.selectLikes(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cardLikes, ok := likes[cards[i].ID]; ok {
			cards[i].Likes = cardLikes
		}
	}

	return cards, nil
}

// FindCardByID returns the card with its likes, or [ErrCardNotFound].
func (r *cardRepository) FindCardByID(ctx context.Context, cardID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardQuery(r.db.builder(), cardID)
	if err != nil {
		return models.Card{}, err
	}

	var card models.Card
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		card, scanErr = scanCard(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.FindCardByID").Msg("error selecting card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	likes, err := r.selectLikes(ctx, []string{cardID})
	if err != nil {
		return models.Card{}, err
	}
	if cardLikes, ok := likes[cardID]; ok {
		card.Likes = cardLikes
	}

	return card, nil
}

// DeleteCard removes the card and, through the foreign key, its likes.
func (r *cardRepository) DeleteCard(ctx context.Context, cardID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCardQuery(r.db.builder(), cardID)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Msg("error deleting card")
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// AddLike records userID's like on the card and returns the updated card.
// Liking a card twice is a no-op.
func (r *cardRepository) AddLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	if _, err := r.FindCardByID(ctx, cardID); err != nil {
		return models.Card{}, err
	}

	query, args, err := buildInsertLikeQuery(r.db.builder(), cardID, userID)
	if err != nil {
		return models.Card{}, err
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.AddLike").Msg("error inserting like")
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsForeignKeyViolation(err) {
			return models.Card{}, ErrCardNotFound
		}
		return models.Card{}, err
	}

	return r.FindCardByID(ctx, cardID)
}

// RemoveLike deletes userID's like from the card and returns the updated
// card. Removing a like that does not exist is a no-op.
func (r *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	if _, err := r.FindCardByID(ctx, cardID); err != nil {
		return models.Card{}, err
	}

	query, args, err := buildDeleteLikeQuery(r.db.builder(), cardID, userID)
	if err != nil {
		return models.Card{}, err
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.RemoveLike").Msg("error deleting like")
		return models.Card{}, err
	}

	return r.FindCardByID(ctx, cardID)
}

// selectLikes returns the likes of the given cards keyed by card ID.
func (r *cardRepository) selectLikes(ctx context.Context, cardIDs []string) (map[string][]string, error) {
	query, args, err := buildSelectLikesQuery(r.db.builder(), cardIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.selectLikes").Msg("error selecting likes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	likes := make(map[string][]string)
	for rows.Next() {
		var cardID, userID string
		if err := rows.Scan(&cardID, &userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		likes[cardID] = append(likes[cardID], userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return likes, nil
}

func (r *cardRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	var affected int64
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanCard(row rowScanner) (models.Card, error) {
	var (
		card      models.Card
		createdAt int64
	)

	if err := row.Scan(&card.ID, &card.Name, &card.Link, &card.Owner, &createdAt); err != nil {
		return models.Card{}, err
	}
	card.CreatedAt = time.UnixMilli(createdAt).UTC()
	card.Likes = []string{}

	return card, nil
}
