package handler

import (
	"fmt"
	"net/http"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/config"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/infra"
	"github.com/salva920/AlmacenRepuestos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc    service.VentaService
	mailer *infra.Mailer
	cfg    *config.Config
}

func NewVentasHandler(svc service.VentaService, mailer *infra.Mailer, cfg *config.Config) *VentasHandler {
	return &VentasHandler{svc: svc, mailer: mailer, cfg: cfg}
}

// Crear godoc
// @Summary Registrar venta
// @Description Asigna lotes FIFO, descuenta stock y calcula la ganancia en una sola transacción.
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.CrearVentaRequest true "Venta"
// @Success 201 {object} model.Venta
// @Failure 409 {object} apierror.APIError "Stock insuficiente"
// @Router /sales [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVenta(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarVentas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVenta(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.EliminarVenta(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Factura godoc
// @Summary Descargar la factura de una venta en PDF
// @Tags ventas
// @Produce application/pdf
// @Param id path string true "ID de la venta"
// @Success 200 {file} binary
// @Router /sales/{id}/factura [get]
func (h *VentasHandler) Factura(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	venta, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateFacturaPDF(venta, h.cfg.NombreNegocio, h.cfg.PDFStoragePath)
	if err != nil {
		respondError(c, apierror.Interno("error generando factura: %v", err))
		return
	}
	c.FileAttachment(path, fmt.Sprintf("factura_%s.pdf", venta.InvoiceNumber))
}

// EnviarFactura generates the invoice PDF and mails it to the requested
// address, falling back to the customer's stored email.
func (h *VentasHandler) EnviarFactura(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.EnviarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	venta, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	destino := req.Email
	if destino == "" && venta.Cliente != nil && venta.Cliente.Email != nil {
		destino = *venta.Cliente.Email
	}
	if destino == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El cliente no tiene email registrado"))
		return
	}

	path, err := infra.GenerateFacturaPDF(venta, h.cfg.NombreNegocio, h.cfg.PDFStoragePath)
	if err != nil {
		respondError(c, apierror.Interno("error generando factura: %v", err))
		return
	}

	subject := fmt.Sprintf("Factura %s - %s", venta.InvoiceNumber, h.cfg.NombreNegocio)
	body := fmt.Sprintf("Adjuntamos la factura %s por un total de $%s. Gracias por su compra.",
		venta.InvoiceNumber, venta.Total.StringFixed(2))
	if err := h.mailer.SendFactura(destino, subject, body, path); err != nil {
		respondError(c, apierror.Interno("error enviando factura: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true, "to": destino})
}
