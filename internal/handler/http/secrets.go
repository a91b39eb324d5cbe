package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/models"
)

const maxRequestBodySize = 1 << 20

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSecretNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "createSecret", err)
		return
	}

	view, err := h.services.SecretNoteService.Create(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, "createSecret", err)
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.URL.Query().Get("workspaceId")

	views, err := h.services.SecretNoteService.List(r.Context(), userID(r), workspaceID)
	if err != nil {
		writeError(w, r, "listSecrets", err)
		return
	}
	if views == nil {
		views = []models.SecretNoteView{}
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.SecretNoteService.Get(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "getSecret", err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) decideAccess(w http.ResponseWriter, r *http.Request) {
	decision, err := h.services.SecretNoteService.Decide(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "decideAccess", err)
		return
	}

	utils.WriteJSON(w, decision, http.StatusOK)
}

func (h *Handler) revealSecret(w http.ResponseWriter, r *http.Request) {
	var req models.RevealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "revealSecret", err)
		return
	}

	variable, err := h.services.SecretNoteService.Reveal(r.Context(), userID(r), chi.URLParam(r, "id"), req.Key)
	if err != nil {
		writeError(w, r, "revealSecret", err)
		return
	}

	utils.WriteJSON(w, variable, http.StatusOK)
}

// copySecret returns one variable, or all of them when the request sets All.
func (h *Handler) copySecret(w http.ResponseWriter, r *http.Request) {
	var req models.CopyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "copySecret", err)
		return
	}

	ctx := r.Context()
	noteID := chi.URLParam(r, "id")

	if req.All {
		variables, err := h.services.SecretNoteService.CopyAll(ctx, userID(r), noteID)
		if err != nil {
			writeError(w, r, "copySecret", err)
			return
		}
		utils.WriteJSON(w, variables, http.StatusOK)
		return
	}

	variable, err := h.services.SecretNoteService.Copy(ctx, userID(r), noteID, req.Key)
	if err != nil {
		writeError(w, r, "copySecret", err)
		return
	}

	utils.WriteJSON(w, variable, http.StatusOK)
}

func (h *Handler) exportSecret(w http.ResponseWriter, r *http.Request) {
	content, err := h.services.SecretNoteService.Export(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "exportSecret", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}

func (h *Handler) updateSecret(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSecretNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "updateSecret", err)
		return
	}

	view, err := h.services.SecretNoteService.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "updateSecret", err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SecretNoteService.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "deleteSecret", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shareSecret(w http.ResponseWriter, r *http.Request) {
	var req models.ShareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "shareSecret", err)
		return
	}

	if err := h.services.SecretNoteService.Share(r.Context(), userID(r), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, "shareSecret", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unshareSecret(w http.ResponseWriter, r *http.Request) {
	err := h.services.SecretNoteService.Unshare(r.Context(), userID(r), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, "unshareSecret", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, "auditLog", ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	entries, err := h.services.SecretNoteService.AuditLog(r.Context(), userID(r), chi.URLParam(r, "id"), limit)
	if err != nil {
		writeError(w, r, "auditLog", err)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// userID returns the authenticated caller. An empty id is rejected by the
// service layer.
func userID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

