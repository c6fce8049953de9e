package handler

import (
	"net/http"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Crear godoc
// @Summary Registrar transacción de caja
// @Description El saldo se calcula en el servidor: saldo anterior + entrada - salida.
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.CrearTransaccionRequest true "Transacción"
// @Success 201 {object} model.TransaccionCaja
// @Router /caja [post]
func (h *CajaHandler) Crear(c *gin.Context) {
	var req dto.CrearTransaccionRequest
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

func (h *CajaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar transacciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CajaHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
