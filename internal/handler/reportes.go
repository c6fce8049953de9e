package handler

import (
	"net/http"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// VentasDiarias godoc
// @Summary Ventas agrupadas por día
// @Tags reportes
// @Produce json
// @Param desde query string false "YYYY-MM-DD (default: hace 30 días)"
// @Param hasta query string false "YYYY-MM-DD (default: hoy)"
// @Success 200 {array} dto.VentaDiaria
// @Router /reportes/ventas-diarias [get]
func (h *ReportesHandler) VentasDiarias(c *gin.Context) {
	var filter dto.RangoFechasFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.VentasDiarias(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) StockBajo(c *gin.Context) {
	resp, err := h.svc.StockBajo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) TopProductos(c *gin.Context) {
	resp, err := h.svc.TopProductos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) ResumenCaja(c *gin.Context) {
	resp, err := h.svc.ResumenCaja(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
