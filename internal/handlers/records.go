package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rankedlab/forecast-api/internal/logic"
	"github.com/rankedlab/forecast-api/internal/models"
)

// CreateRecord stores a new match record
// @Summary Create Match Record
// @Tags Records
// @Accept json
// @Produce json
// @Param record body models.CreateRecordRequest true "Match record"
// @Success 201 {object} models.MatchRecord
// @Failure 400 {object} map[string]string
// @Router /records [post]
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if !models.ValidMode(req.Mode) {
		h.errorResponse(w, http.StatusBadRequest, "Unknown mode: "+req.Mode)
		return
	}
	if !models.KnownWeapon(req.Weapon) {
		// Weapon labels are free-form; log for catalog maintenance only.
		h.logger.Infow("Record uses weapon outside the catalog", "weapon", req.Weapon)
	}

	playedAt := req.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now().UTC()
	}

	record := &models.MatchRecord{
		UserID:        req.UserID,
		PlayedAt:      playedAt,
		Mode:          req.Mode,
		MapOne:        req.MapOne,
		MapTwo:        req.MapTwo,
		Weapon:        req.Weapon,
		Wins:          req.Wins,
		Losses:        req.Losses,
		Fatigue:       req.Fatigue,
		Irritability:  req.Irritability,
		Concentration: req.Concentration,
		StartXP:       req.StartXP,
		EndXP:         req.EndXP,
		Note:          req.Note,
	}

	if err := h.records.CreateRecord(r.Context(), record); err != nil {
		h.logger.Errorw("Failed to create record", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to create record")
		return
	}

	h.jsonResponse(w, http.StatusCreated, record)
}

// ListRecords returns stored match records, optionally filtered by user
// @Summary List Match Records
// @Tags Records
// @Produce json
// @Param user_id query int false "Filter by owning user"
// @Success 200 {array} models.MatchRecord
// @Router /records [get]
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		records, err := h.records.ListUserRecords(ctx, userID)
		if err != nil {
			h.logger.Errorw("Failed to list user records", "error", err, "userID", userID)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to list records")
			return
		}
		h.jsonResponse(w, http.StatusOK, records)
		return
	}

	records, err := h.records.ListRecords(ctx)
	if err != nil {
		h.logger.Errorw("Failed to list records", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list records")
		return
	}

	h.jsonResponse(w, http.StatusOK, records)
}

// DeleteRecord removes a match record
// @Summary Delete Match Record
// @Tags Records
// @Produce json
// @Param id path int true "Record ID"
// @Param user_id query int false "Owner scoping the delete"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /records/{id} [delete]
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	var ownerID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		ownerID = &parsed
	}

	if err := h.records.DeleteRecord(r.Context(), id, ownerID); err != nil {
		if errors.Is(err, logic.ErrRecordNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.Errorw("Failed to delete record", "error", err, "id", id)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCatalog returns the mode, weapon, and map catalogs for dropdowns
// @Summary Get Catalogs
// @Tags Records
// @Produce json
// @Success 200 {object} models.CatalogResponse
// @Router /catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, models.CatalogResponse{
		Modes:   models.Modes,
		Weapons: models.WeaponCatalog,
		Maps:    models.MapCatalog,
	})
}
