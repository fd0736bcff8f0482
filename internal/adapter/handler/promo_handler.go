package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srgjo27/experience_booking/internal/core/services"
)

type PromoHandler struct {
	svc *services.PromoService
	log *zerolog.Logger
}

func NewPromoHandler(svc *services.PromoService, log *zerolog.Logger) *PromoHandler {
	return &PromoHandler{svc: svc, log: log}
}

type validatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// POST /promo/validate
func (h *PromoHandler) Validate(c *gin.Context) {
	var req validatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request", err)
		return
	}

	promo, err := h.svc.LookupPromo(c.Request.Context(), req.Code)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, promo)
}
