package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindSlotUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a service error to its HTTP status. Store failures are
// logged and never echoed back.
func writeError(c *gin.Context, log *zerolog.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	msg := "internal server error"
	var de *domain.Error
	if kind != domain.KindStoreFailure && errors.As(err, &de) {
		msg = de.Msg
	}

	if kind == domain.KindStoreFailure {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func writeBadRequest(c *gin.Context, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
