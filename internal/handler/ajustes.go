package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/service"
)

type AjustesHandler struct{ svc service.AjustesService }

func NewAjustesHandler(svc service.AjustesService) *AjustesHandler {
	return &AjustesHandler{svc: svc}
}

func (h *AjustesHandler) Obtener(c *gin.Context) {
	ajustes, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ajustes)
}

func (h *AjustesHandler) Guardar(c *gin.Context) {
	var req dto.GuardarAjustesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ajustes, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ajustes)
}
