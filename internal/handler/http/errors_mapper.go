package http

import (
	"errors"
	"net/http"

	"github.com/Art-of-Technology/collab-sub012/internal/crypto"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidLimit: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNotSecretNote:           http.StatusBadRequest,
	service.ErrValidationNoUserID:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,
	service.ErrVariableNotFound:        http.StatusNotFound,

	store.ErrNoteNotFound:      http.StatusNotFound,
	store.ErrShareNotFound:     http.StatusNotFound,
	store.ErrNoteAlreadyExists: http.StatusConflict,

	crypto.ErrConfiguration:      http.StatusServiceUnavailable,
	crypto.ErrAuthentication:     http.StatusInternalServerError,
	crypto.ErrMalformedBlob:      http.StatusInternalServerError,
	crypto.ErrUnsupportedVersion: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingColumn:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// only expose the status text; a refused access carries its decision.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		response.Error = http.StatusText(status)
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if denied, ok := service.IsAccessDenied(err); ok {
		response.Error = denied.Reason
		response.Access = &denied.Decision
	}

	utils.WriteJSON(w, response, status)
}
