package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kedza01/Test-AI/internal/models"
	"github.com/Kedza01/Test-AI/internal/services"
)

// AuthController exposes login and logout for the presentation layer.
type AuthController struct {
	auth  services.AuthService
	audit services.AuditService
}

func NewAuthController(auth services.AuthService, audit services.AuditService) *AuthController {
	return &AuthController{auth: auth, audit: audit}
}

func (ctr *AuthController) Register(g *echo.Group) {
	g.POST("/auth/login", ctr.Login)
	g.POST("/auth/logout", ctr.Logout)
}

func (ctr *AuthController) Login(c echo.Context) error {
	req := new(models.LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
	}

	ctx := c.Request().Context()
	user, err := ctr.auth.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	session, err := ctr.auth.CreateSession(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// audit append is best-effort
	if err := ctr.audit.Append(ctx, user.ID, user.Username, "LOGIN", "user logged in"); err != nil {
		c.Logger().Warnf("audit append failed: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":  user,
		"token": session.Token,
	})
}

func (ctr *AuthController) Logout(c echo.Context) error {
	req := new(models.LogoutRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "token is required"})
	}

	if err := ctr.auth.CloseSession(c.Request().Context(), req.Token); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
