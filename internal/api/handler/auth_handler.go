package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tarefalabs/tarefas-api/internal/api/metrics"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NivelAcesso string `json:"nivelAcesso"`
}

// loginRequest is deliberately not schema-validated: absent or malformed
// fields fail the credential checks and surface as 401, never as a 400 that
// would hint at which part was wrong.
type loginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Token2FA string `json:"token2FA"`
}

// userResponse is the outward representation of a user. Credential material
// never appears here.
type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	NivelAcesso string `json:"nivelAcesso"`
}

type registerResponse struct {
	Msg       string       `json:"msg"`
	Usuario   userResponse `json:"usuario"`
	Secret2FA string       `json:"secret2FA"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, NivelAcesso: string(u.Role)}
}

// Register creates a new user account and returns the 2FA provisioning
// secret. The secret is shown here and never again.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), req.Username, req.Senha, req.NivelAcesso)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(result.User.Role)).Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Msg:       "Usuário criado com sucesso",
		Usuario:   toUserResponse(result.User),
		Secret2FA: result.RawSecret,
	})
}

// Login verifies password and TOTP code, returning a session token.
//
// @Summary      Login with password and 2FA code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Senha, req.Token2FA)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrInvalidSecondFactor):
			metrics.LoginsTotal.WithLabelValues("invalid_2fa").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("locked_out").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
