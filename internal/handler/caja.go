package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davielsant/santalla-core/internal/service"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

func (h *CajaHandler) Estadisticas(c *gin.Context) {
	stats, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *CajaHandler) RepartirPropinas(c *gin.Context) {
	stats, err := h.svc.RepartirPropinas(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Resetear zeroes the register counters and wipes the sales history in the
// same operation.
func (h *CajaHandler) Resetear(c *gin.Context) {
	stats, err := h.svc.ResetearCaja(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
