package handler

import (
	"net/http"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/middleware"
	"github.com/salva920/AlmacenRepuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}

	// Browser clients ride on the cookie; API clients use the token field.
	c.SetCookie(middleware.TokenCookie, resp.Token, resp.ExpiresIn, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the current token and clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie(middleware.TokenCookie); err == nil {
		token = cookie
	}
	if token == "" {
		header := c.GetHeader("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			token = header[7:]
		}
	}
	if token != "" {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Init creates the admin user from configuration if none exists yet.
func (h *AuthHandler) Init(c *gin.Context) {
	usuario, err := h.svc.Init(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuario)
}
