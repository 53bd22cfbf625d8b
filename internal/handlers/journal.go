package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dailyjournal-app/daily-journal/internal/middleware"
	"github.com/dailyjournal-app/daily-journal/internal/services"
	"github.com/dailyjournal-app/daily-journal/internal/storage"
	"github.com/dailyjournal-app/daily-journal/pkg/utils"
)

const storeTimeout = 5 * time.Second

type JournalHandler struct {
	journals *services.JournalService
}

func NewJournalHandler(journals *services.JournalService) *JournalHandler {
	return &JournalHandler{journals: journals}
}

type entryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

// Create handles POST /api/journals. The owner is always the authenticated
// user; any owner field in the body is ignored.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	entry, err := h.journals.Create(ctx, userID, req.Content, req.Mood)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		log.Printf("create entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /api/journals, most recent entries first.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	entries, err := h.journals.List(ctx, userID)
	if err != nil {
		log.Printf("list entries failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Update handles PUT /api/journals/{id}. A missing entry and an entry owned
// by another user get the same not-found answer.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	entry, err := h.journals.Update(ctx, userID, chi.URLParam(r, "id"), req.Content, req.Mood)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		log.Printf("update entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/journals/{id}. Deleting an already-deleted
// entry reports the same not-found answer.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := h.journals.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		log.Printf("delete entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
}
