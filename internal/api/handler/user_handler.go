package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tarefalabs/tarefas-api/internal/api/middleware"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Username    *string `json:"username"`
	Senha       *string `json:"senha"`
	NivelAcesso *string `json:"nivelAcesso"`
}

// List returns every registered user. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one user profile: own profile for any role, any for Admin.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update mutates a user profile. Self may change username and password;
// Admin may change anything, including the role.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.userService.Update(c.Request().Context(), claims, c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Senha,
		Role:     req.NivelAcesso,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Usuário deletado com sucesso"})
}
