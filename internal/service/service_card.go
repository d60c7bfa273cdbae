// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/around-api/internal/app"
	"github.com/MKhiriev/around-api/internal/apperr"
	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/store"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
)

// cardService implements CardService on top of a CardRepository.
// Only the owner of a card may delete it; anyone may like it.
type cardService struct {
	cardRepository store.CardRepository
	idGenerator    *utils.UUIDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *cardService) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cardRepository.ListCards(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardService.ListCards").Msg("error listing cards")
		return nil, mapStoreError(err)
	}
	return cards, nil
}

func (s *cardService) CreateCard(ctx context.Context, ownerID string, req models.CreateCardRequest) (models.Card, error) {
	card := models.Card{
		ID:        s.idGenerator.Generate(),
		Name:      req.Name,
		Link:      req.Link,
		Owner:     ownerID,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.cardRepository.CreateCard(ctx, card)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardService.CreateCard").Str("owner", ownerID).Msg("error creating card")
		return models.Card{}, mapStoreError(err)
	}
	return created, nil
}

// DeleteCard removes the card if userID owns it and returns the removed card.
func (s *cardService) DeleteCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := s.cardRepository.FindCardByID(ctx, cardID)
	if err != nil {
		return models.Card{}, mapStoreError(err)
	}

	if !card.IsOwnedBy(userID) {
		log.Warn().Str("card_id", cardID).Str("owner", card.Owner).Str("user_id", userID).Msg("attempt to delete a card of another user")
		return models.Card{}, apperr.Authorization(app.MsgNotCardOwner)
	}

	if err = s.cardRepository.DeleteCard(ctx, cardID); err != nil {
		log.Err(err).Str("func", "*cardService.DeleteCard").Str("card_id", cardID).Msg("error deleting card")
		return models.Card{}, mapStoreError(err)
	}

	return card, nil
}

func (s *cardService) LikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	card, err := s.cardRepository.AddLike(ctx, cardID, userID)
	if err != nil {
		return models.Card{}, mapStoreError(err)
	}
	return card, nil
}

func (s *cardService) UnlikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	card, err := s.cardRepository.RemoveLike(ctx, cardID, userID)
	if err != nil {
		return models.Card{}, mapStoreError(err)
	}
	return card, nil
}
