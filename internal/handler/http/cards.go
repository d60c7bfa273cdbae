// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/around-api/internal/logger"
	"github.com/MKhiriev/around-api/internal/utils"
	"github.com/MKhiriev/around-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) error {
	cards, err := h.services.CardService.ListCards(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, cards, http.StatusOK)
	return err
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	req, err := decode[models.CreateCardRequest](r, true)
	if err != nil {
		return err
	}

	card, err := h.services.CardService.CreateCard(r.Context(), userID, req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Str("card_id", card.ID).Msg("card created")
	_, err = utils.WriteJSON(w, card, http.StatusCreated)
	return err
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.services.CardService.DeleteCard)
}

func (h *Handler) likeCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.services.CardService.LikeCard)
}

func (h *Handler) unlikeCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.services.CardService.UnlikeCard)
}

// cardAction runs action for the card in the path on behalf of the caller
// and writes the resulting card.
func (h *Handler) cardAction(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, cardID, userID string) (models.Card, error)) error {
	userID, err := callerID(r)
	if err != nil {
		return err
	}

	card, err := action(r.Context(), chi.URLParam(r, "cardId"), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, card, http.StatusOK)
	return err
}
