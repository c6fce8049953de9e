package handler

import (
	"net/http"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type TasaCambioHandler struct{ svc service.TasaCambioService }

func NewTasaCambioHandler(svc service.TasaCambioService) *TasaCambioHandler {
	return &TasaCambioHandler{svc: svc}
}

func (h *TasaCambioHandler) Crear(c *gin.Context) {
	var req dto.CrearTasaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Ultima returns the current Bs/USD rate, served from cache when fresh.
func (h *TasaCambioHandler) Ultima(c *gin.Context) {
	resp, err := h.svc.Ultima(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
