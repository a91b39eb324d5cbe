package http

import (
	"net/http"

	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health always answers 200 while the process is up. SecretsConfigured is
// false when the master secret is missing, in which case every secret
// operation fails with 503.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:            "ok",
		SecretsConfigured: h.services.SecretNoteService.Healthy(),
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
