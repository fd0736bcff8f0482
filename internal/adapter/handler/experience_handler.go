package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srgjo27/experience_booking/internal/core/services"
)

type ExperienceHandler struct {
	catalog *services.CatalogService
	promos  *services.PromoService
	log     *zerolog.Logger
}

func NewExperienceHandler(catalog *services.CatalogService, promos *services.PromoService, log *zerolog.Logger) *ExperienceHandler {
	return &ExperienceHandler{catalog: catalog, promos: promos, log: log}
}

// GET /experiences?search=
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.catalog.ListExperiences(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, experiences)
}

// GET /experiences/:id
func (h *ExperienceHandler) Get(c *gin.Context) {
	exp, err := h.catalog.GetExperienceWithAvailableSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, exp)
}

// GET /experiences/:id/quote?promo=
func (h *ExperienceHandler) Quote(c *gin.Context) {
	quote, err := h.promos.Quote(c.Request.Context(), c.Param("id"), c.Query("promo"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
