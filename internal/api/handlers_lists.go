// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/store"
)

// CreateListRequest is the body of POST /api/v1/users/{userID}/lists.
type CreateListRequest struct {
	Name          string   `json:"name" validate:"notblank,max=100"`
	RestaurantIDs []string `json:"restaurant_ids,omitempty" validate:"omitempty,dive,required"`
}

// Lists handles GET /api/v1/users/{userID}/lists.
func (h *Handler) Lists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	lists := h.store.GetLists(r.Context(), userID)
	respondList(w, lists, len(lists), start)
}

// CreateList handles POST /api/v1/users/{userID}/lists.
// Blank names are rejected and every restaurant id must exist in the catalog.
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req CreateListRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	for _, id := range req.RestaurantIDs {
		if _, err := h.catalog.Get(id); err != nil {
			respondError(w, http.StatusNotFound, codeNotFound, "Restaurant not found: "+id, nil)
			return
		}
	}

	saved, err := h.store.SaveList(r.Context(), userID, models.UserList{
		Name:          strings.TrimSpace(req.Name),
		RestaurantIDs: req.RestaurantIDs,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStorage, "Failed to save list", err)
		return
	}

	respondSuccess(w, http.StatusCreated, saved, start)
}

// List handles GET /api/v1/users/{userID}/lists/{listID} and resolves the
// list's restaurants from the catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	list, err := h.store.GetList(r.Context(), userID, chi.URLParam(r, "listID"))
	if err != nil {
		respondError(w, http.StatusNotFound, codeNotFound, "List not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, models.ListDetailResponse{
		UserList:    *list,
		Restaurants: h.catalog.Resolve(list.RestaurantIDs),
	}, start)
}

// DeleteList handles DELETE /api/v1/users/{userID}/lists/{listID}.
func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	listID := chi.URLParam(r, "listID")
	if err := h.store.DeleteList(r.Context(), userID, listID); err != nil {
		h.respondListError(w, err, "Failed to delete list")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"id":      listID,
		"deleted": true,
	}, start)
}

// AddToList handles PUT /api/v1/users/{userID}/lists/{listID}/restaurants/{restaurantID}.
// Adding a restaurant that is already on the list is a no-op.
func (h *Handler) AddToList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	restaurantID := chi.URLParam(r, "restaurantID")
	if _, err := h.catalog.Get(restaurantID); err != nil {
		respondError(w, http.StatusNotFound, codeNotFound, "Restaurant not found", nil)
		return
	}

	list, err := h.store.AddRestaurantToList(r.Context(), userID, chi.URLParam(r, "listID"), restaurantID)
	if err != nil {
		h.respondListError(w, err, "Failed to update list")
		return
	}

	respondSuccess(w, http.StatusOK, list, start)
}

// RemoveFromList handles DELETE /api/v1/users/{userID}/lists/{listID}/restaurants/{restaurantID}.
func (h *Handler) RemoveFromList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	list, err := h.store.RemoveRestaurantFromList(r.Context(), userID, chi.URLParam(r, "listID"), chi.URLParam(r, "restaurantID"))
	if err != nil {
		h.respondListError(w, err, "Failed to update list")
		return
	}

	respondSuccess(w, http.StatusOK, list, start)
}

// respondListError maps store errors from list writes to HTTP responses.
func (h *Handler) respondListError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, store.ErrListNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "List not found", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, codeStorage, message, err)
}
