// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-catalog/internal/app"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

// listProducts answers GET /produtos[?categoria=...] with a raw row array.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("categoria")

	rows, err := h.services.ProductService.ListProducts(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeRows(w, rows)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.CreateProduct(r.Context(), product); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductCreated}, http.StatusOK)
}

// updateProduct overwrites nome, qtde and id_categoria of /produtos/{id}.
// Fields missing from the body are cleared.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.UpdateProduct(r.Context(), id, product); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductUpdated}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.ProductService.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductDeleted}, http.StatusOK)
}
